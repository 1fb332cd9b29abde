// Command preamble parses, lexes and serves HTTP/1.1 preambles.
//
//	preamble parse [-response] [-json] [-max-header-bytes N] [file]
//	preamble lex [file]
//	preamble serve [-addr :8080] [-max-header-bytes N] [-log-level info]
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

const usage = `usage: preamble <command> [flags] [file]

commands:
  parse   parse the first preamble of a file or stdin
  lex     print the lexical tokens of a file or stdin
  serve   run the demo server
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, waitForSignal))
}

// run dispatches a subcommand and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer, wait func()) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "parse":
		err = parseCmd(args[1:], stdin, stdout, stderr)
	case "lex":
		err = lexCmd(args[1:], stdin, stdout, stderr)
	case "serve":
		err = serveCmd(args[1:], stderr, wait)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "preamble: unknown command %q\n\n%s", args[0], usage)
		return 2
	}

	if err != nil {
		fmt.Fprintf(stderr, "preamble: %v\n", err)
		return 1
	}
	return 0
}

func waitForSignal() {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt
}

// openInput returns the named file, or stdin when no name is given.
func openInput(args []string, stdin io.Reader) (io.ReadCloser, error) {
	switch len(args) {
	case 0:
		return io.NopCloser(stdin), nil
	case 1:
		if args[0] == "-" {
			return io.NopCloser(stdin), nil
		}
		return os.Open(args[0])
	default:
		return nil, fmt.Errorf("expected at most one input file, got %d", len(args))
	}
}

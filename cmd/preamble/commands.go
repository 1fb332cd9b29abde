package main

import (
	"flag"
	"fmt"
	"io"

	json "github.com/json-iterator/go"
	"github.com/lesismal/nbio/logging"
	"github.com/shapestone/shape-preamble/internal/config"
	"github.com/shapestone/shape-preamble/internal/server"
	preamble "github.com/shapestone/shape-preamble/pkg/http"
)

func parseCmd(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.SetOutput(stderr)
	response := fs.Bool("response", false, "parse a status-line instead of a request-line")
	asJSON := fs.Bool("json", false, "print the result as JSON")
	maxHeaderBytes := fs.Int("max-header-bytes", preamble.DefaultMaxHeaderBytes, "largest preamble accepted")
	if err := fs.Parse(args); err != nil {
		return err
	}

	in, err := openInput(fs.Args(), stdin)
	if err != nil {
		return err
	}
	defer in.Close()

	dec := preamble.NewDecoder(in)
	dec.MaxHeaderBytes = *maxHeaderBytes

	var msg interface{}
	if *response {
		var resp preamble.OwnedResponse
		err = dec.Decode(&resp)
		msg = &resp
	} else {
		var req preamble.OwnedRequest
		err = dec.Decode(&req)
		msg = &req
	}
	if err != nil {
		return err
	}

	if *asJSON {
		out, err := json.MarshalIndent(msg, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(stdout, "%s\n", out)
		return err
	}

	return preamble.NewEncoder(stdout).Encode(msg)
}

func lexCmd(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("lex", flag.ContinueOnError)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	in, err := openInput(fs.Args(), stdin)
	if err != nil {
		return err
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	tokens, ok := preamble.Lex(string(data))
	for _, tok := range tokens {
		fmt.Fprintf(stdout, "%-8s %q\n", tok.Kind, tok.Value)
	}
	if !ok {
		return fmt.Errorf("lex: input not fully consumed")
	}
	return nil
}

func serveCmd(args []string, stderr io.Writer, wait func()) error {
	cfg := config.Default()

	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Server.Addr, "addr", cfg.Server.Addr, "listen address")
	fs.IntVar(&cfg.Server.Pollers, "pollers", cfg.Server.Pollers, "event loops (0 = one per CPU)")
	fs.IntVar(&cfg.Buffer.Size.Maximal, "max-header-bytes", cfg.Buffer.Size.Maximal, "largest preamble accepted per request")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "debug, info, warn, error or none")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("serve: unexpected arguments %v", fs.Args())
	}

	if cfg.Buffer.Size.Default > cfg.Buffer.Size.Maximal {
		cfg.Buffer.Size.Default = cfg.Buffer.Size.Maximal
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	lvl, _ := cfg.LogLevel()
	logging.SetLevel(lvl)

	srv := server.New(cfg, nil)
	if err := srv.Start(); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	logging.Info("preamble: serving on %s", cfg.Server.Addr)

	wait()
	srv.Stop()
	logging.Info("preamble: stopped")
	return nil
}

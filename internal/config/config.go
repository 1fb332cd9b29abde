package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lesismal/nbio/logging"
)

type (
	BufferSize struct {
		Default, Maximal int
	}
)

type (
	Server struct {
		// Network is passed to the nbio engine, usually "tcp".
		Network string
		// Addr is the listen address of the demo server.
		Addr string
		// Pollers is the number of nbio event loops. Zero lets nbio pick one per CPU.
		Pollers int `test:"nullable"`
		// ReadBufferSize is the size of the socket read buffer nbio hands to OnData.
		ReadBufferSize int
	}

	Buffer struct {
		// Size bounds the per-connection preamble buffer. Default is the initial
		// allocation, Maximal the point at which an unfinished preamble is refused
		// with 431.
		Size BufferSize
		// HeadersPrealloc is the initial capacity of the header container.
		HeadersPrealloc int
	}

	Log struct {
		// Level is one of debug, info, warn, error or none.
		Level string
	}
)

// Config holds the settings of the preamble CLI and its demo server.
//
// Start from Default() and override fields; a zero Config is not valid.
type Config struct {
	Server Server
	Buffer Buffer
	Log    Log
}

// Default returns the default config.
func Default() *Config {
	return &Config{
		Server: Server{
			Network:        "tcp",
			Addr:           ":8080",
			ReadBufferSize: 4 * 1024,
		},
		Buffer: Buffer{
			Size: BufferSize{
				Default: 1 * 1024,
				// matches the 64kb most proxies allow for a whole header section
				Maximal: 64 * 1024,
			},
			HeadersPrealloc: 16,
		},
		Log: Log{
			Level: "info",
		},
	}
}

var levels = map[string]int{
	"debug": logging.LevelDebug,
	"info":  logging.LevelInfo,
	"warn":  logging.LevelWarn,
	"error": logging.LevelError,
	"none":  logging.LevelNone,
}

// LogLevel maps the configured level name to an nbio logging level.
func (c *Config) LogLevel() (int, error) {
	lvl, ok := levels[strings.ToLower(c.Log.Level)]
	if !ok {
		return 0, fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	return lvl, nil
}

// Validate reports every inconsistent setting at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Addr == "" {
		errs = append(errs, errors.New("config: server address is empty"))
	}
	if c.Server.Network == "" {
		errs = append(errs, errors.New("config: server network is empty"))
	}
	if c.Server.Pollers < 0 {
		errs = append(errs, fmt.Errorf("config: negative poller count %d", c.Server.Pollers))
	}
	if c.Server.ReadBufferSize <= 0 {
		errs = append(errs, fmt.Errorf("config: read buffer size must be positive, got %d", c.Server.ReadBufferSize))
	}
	if c.Buffer.Size.Default <= 0 {
		errs = append(errs, fmt.Errorf("config: default buffer size must be positive, got %d", c.Buffer.Size.Default))
	}
	if c.Buffer.Size.Maximal < c.Buffer.Size.Default {
		errs = append(errs, fmt.Errorf("config: maximal buffer size %d is below default %d",
			c.Buffer.Size.Maximal, c.Buffer.Size.Default))
	}
	if c.Buffer.HeadersPrealloc < 0 {
		errs = append(errs, fmt.Errorf("config: negative headers prealloc %d", c.Buffer.HeadersPrealloc))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

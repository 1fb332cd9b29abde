// Package server is a small HTTP/1.1 front end on the nbio event loop. It
// parses request preambles as bytes arrive, answers from an httprouter route
// table and never reads request bodies beyond skipping them.
package server

import (
	"github.com/julienschmidt/httprouter"
	"github.com/lesismal/nbio"
	"github.com/lesismal/nbio/logging"
	"github.com/shapestone/shape-preamble/internal/config"
)

// Server owns the nbio engine and the route table shared by all connections.
type Server struct {
	cfg    *config.Config
	router *httprouter.Router
	engine *nbio.Engine
}

// New creates a server. A nil router means NewRouter().
func New(cfg *config.Config, router *httprouter.Router) *Server {
	if router == nil {
		router = NewRouter()
	}

	s := &Server{cfg: cfg, router: router}
	s.engine = nbio.NewEngine(nbio.Config{
		Name:           "preamble",
		Network:        cfg.Server.Network,
		Addrs:          []string{cfg.Server.Addr},
		NPoller:        cfg.Server.Pollers,
		ReadBufferSize: cfg.Server.ReadBufferSize,
	})
	s.engine.OnOpen(s.onOpen)
	s.engine.OnData(s.onData)
	s.engine.OnClose(s.onClose)
	return s
}

// Start begins listening. It returns once the listeners are up.
func (s *Server) Start() error {
	return s.engine.Start()
}

// Stop closes the listeners and every open connection.
func (s *Server) Stop() {
	s.engine.Stop()
}

func (s *Server) onOpen(c *nbio.Conn) {
	sess := NewSession(s.cfg, s.router)
	c.SetSession(sess)
	logging.Debug("conn %s: open from %v", sess.ID(), c.RemoteAddr())
}

func (s *Server) onData(c *nbio.Conn, data []byte) {
	sess, ok := c.Session().(*Session)
	if !ok {
		c.Close()
		return
	}

	out, closeConn := sess.Feed(data)
	if len(out) > 0 {
		if _, err := c.Write(out); err != nil {
			logging.Warn("conn %s: write: %v", sess.ID(), err)
			c.Close()
			return
		}
	}
	if closeConn {
		c.Close()
	}
}

func (s *Server) onClose(c *nbio.Conn, err error) {
	if sess, ok := c.Session().(*Session); ok {
		logging.Debug("conn %s: closed: %v", sess.ID(), err)
	}
}

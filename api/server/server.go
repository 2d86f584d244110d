// Package server contains the main server struct and methods
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/overcast302/activationd/api/server/routes"
)

// Config is the server config
type Config struct {
	Host       string
	Port       int
	Socket     string
	AssetsRoot string
	Debug      bool
}

// Server is the main server struct
type Server struct {
	router *gin.Engine
	srv    *http.Server
	conf   *Config
}

// NewServer creates a new server
func NewServer(conf *Config) *Server {
	router := gin.Default()
	routes.Add(&router.RouterGroup, conf.AssetsRoot)
	return &Server{
		router: router,
		conf:   conf,
	}
}

// Start starts the server and blocks until Stop is called or the
// listener fails.
func (s *Server) Start() error {
	s.srv = &http.Server{Handler: s.router}
	if s.conf.Socket != "" {
		l, err := net.Listen("unix", s.conf.Socket)
		if err != nil {
			return fmt.Errorf("server: failed to listen on socket %s: %v", s.conf.Socket, err)
		}
		return s.srv.Serve(l)
	}
	s.srv.Addr = fmt.Sprintf("%s:%d", s.conf.Host, s.conf.Port)
	return s.srv.ListenAndServe()
}

// Stop stops the server, waiting for in-flight requests to finish.
func (s *Server) Stop() error {
	if s.srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}

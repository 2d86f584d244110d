// Package daemon provides the daemon interface and implementation.
package daemon

import (
	"github.com/gin-gonic/gin"

	"github.com/overcast302/activationd/api/server"
)

// Daemon is the interface that describes an activationd daemon.
type Daemon interface {
	// Start starts the daemon.
	Start() error
	// Stop stops the daemon.
	Stop() error
}

// Config is the daemon config.
type Config struct {
	Host       string
	Port       int
	Socket     string
	AssetsRoot string
	Debug      bool
}

type daemon struct {
	server *server.Server
	conf   *Config
}

// NewDaemon creates a new daemon.
func NewDaemon(conf *Config) Daemon {
	return &daemon{conf: conf}
}

func (d *daemon) Start() error {
	if d.conf.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	d.server = server.NewServer(&server.Config{
		Host:       d.conf.Host,
		Port:       d.conf.Port,
		Socket:     d.conf.Socket,
		AssetsRoot: d.conf.AssetsRoot,
		Debug:      d.conf.Debug,
	})
	return d.server.Start()
}

func (d *daemon) Stop() error {
	return d.server.Stop()
}

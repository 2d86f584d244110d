/*
Copyright © 2025 overcast302

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/apex/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/overcast302/activationd/internal/config"
	"github.com/overcast302/activationd/internal/daemon"
)

func init() {
	rootCmd.AddCommand(startCmd)

	startCmd.Flags().BoolP("debug", "d", false, "enable debug logging")
	viper.BindPFlag("daemon.debug", startCmd.Flags().Lookup("debug"))
}

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the activation provisioning daemon",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.LoadConfig()
		if err != nil {
			return err
		}

		if conf.Daemon.Debug {
			log.SetLevel(log.DebugLevel)
		}

		d := daemon.NewDaemon(&daemon.Config{
			Host:       conf.Daemon.Host,
			Port:       conf.Daemon.Port,
			Socket:     conf.Daemon.Socket,
			AssetsRoot: conf.Assets.Root,
			Debug:      conf.Daemon.Debug,
		})

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

		errs := make(chan error, 1)
		go func() {
			errs <- d.Start()
		}()

		log.WithFields(log.Fields{
			"host":   conf.Daemon.Host,
			"port":   conf.Daemon.Port,
			"socket": conf.Daemon.Socket,
			"assets": conf.Assets.Root,
		}).Info("starting daemon")

		select {
		case sig := <-sigs:
			log.WithField("signal", sig.String()).Info("shutting down")
			return d.Stop()
		case err := <-errs:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		}
	},
}

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
	"fmt"

	"github.com/apex/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/overcast302/activationd/internal/commands/assets"
	"github.com/overcast302/activationd/internal/config"
)

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringP("assets", "a", "", "asset tree root (overrides config)")
	viper.BindPFlag("assets.root", verifyCmd.Flags().Lookup("assets"))
}

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify every artifact in the asset tree",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.LoadConfig()
		if err != nil {
			return err
		}

		artifacts, err := assets.Scan(conf.Assets.Root)
		if err != nil {
			return err
		}

		var invalid int
		for _, art := range artifacts {
			if art.Valid {
				entry := log.WithFields(log.Fields{
					"model": art.Model,
					"build": art.Build,
					"size":  art.Size,
				})
				if art.Supported {
					entry.Info("OK")
				} else {
					entry.Warn("outside the supported device matrix")
				}
				continue
			}
			invalid++
			log.WithFields(log.Fields{
				"model": art.Model,
				"build": art.Build,
			}).Error(art.Error)
		}

		if invalid > 0 {
			return fmt.Errorf("%d of %d artifacts failed verification", invalid, len(artifacts))
		}

		log.WithField("count", len(artifacts)).Info("all artifacts verified")
		return nil
	},
}

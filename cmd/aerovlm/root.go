package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	log = logrus.New()

	logLevel string
	logJSON  bool
)

var rootCmd = &cobra.Command{
	Use:   "aerovlm",
	Short: "Vortex-lattice lift and induced-drag estimation",
	Long: `aerovlm estimates lift and induced drag of a single lifting surface
with a Weissinger horseshoe-vortex strip model, optionally perturbed by
propeller slipstreams.

Cases are INI files:

  [wing]
  name           = demo
  span           = 10
  root_chord     = 2
  tip_chord      = 1
  reference_area = 15

  [flow]
  angle_of_attack_deg = 5
  density             = 1.225
  velocity            = 60`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
		log.SetLevel(lvl)
		log.SetOutput(cmd.ErrOrStderr())
		if logJSON {
			log.SetFormatter(&logrus.JSONFormatter{})
		} else {
			log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "log as JSON")
}

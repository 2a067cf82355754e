package cmd

import (
	"encoding/json"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"orthos/config"
)

var (
	cfgPath string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "orthos",
	Short: "Closed-form plate deflection and hole stress fields",
	Long: `orthos computes scalar fields over a 2D grid for visualization:

  plate   - deflection of a simply supported rectangular plate under uniform
            load (first Navier term)
  hole    - stress concentration around a circular hole in a plate under
            uniaxial tension (Kirsch approximation)
  psc     - notched strength by the Point Stress Criterion
  micro   - lamina moduli by the rule of mixtures and Halpin-Tsai
  fatigue - life and strength from an S-N curve
  serve   - websocket server pushing the fields to a browser renderer

Settings are read from conf/config.ini and ORTHOS_* environment variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		return cfg.SetupLogger()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath, "path of the ini config file")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	return enc.Encode(v)
}

package cmd

import (
	"github.com/spf13/cobra"
	"orthos/calculator"
	"orthos/model"
)

var pscCmd = &cobra.Command{
	Use:   "psc",
	Short: "Predict notched strength with the Point Stress Criterion",
	Long: `Predict the strength of a plate with a circular hole with the Point Stress
Criterion (Whitney-Nuismer).

Unset flags fall back to the [psc] section of the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var req model.NotchedStrengthRequest
		flags := cmd.Flags()
		if flags.Changed("strength") {
			v, _ := flags.GetFloat64("strength")
			req.UnnotchedStrength = &v
		}
		if flags.Changed("radius") {
			v, _ := flags.GetFloat64("radius")
			req.HoleRadius = &v
		}
		if flags.Changed("d0") {
			v, _ := flags.GetFloat64("d0")
			req.CharacteristicDistance = &v
		}

		s, err := calculator.NotchedStrength(cfg.NotchedStrengthParameters(req))
		if err != nil {
			return err
		}
		return writeJSON(cmd, model.StrengthResult{PredictedStrength: s})
	},
}

func init() {
	pscCmd.Flags().Float64("strength", 1000e6, "unnotched strength")
	pscCmd.Flags().Float64("radius", 0.005, "hole radius")
	pscCmd.Flags().Float64("d0", 0.001, "characteristic distance")
	rootCmd.AddCommand(pscCmd)
}

package cmd

import (
	"github.com/spf13/cobra"
	"orthos/calculator"
	"orthos/model"
)

var holeCmd = &cobra.Command{
	Use:   "hole",
	Short: "Compute the stress concentration field around a hole and print it as JSON",
	Long: `Compute the stress concentration factor around a circular hole in a plate
under uniaxial tension along x. Points inside the hole are printed as null.

Unset flags fall back to the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var req model.HoleRequest
		flags := cmd.Flags()
		if flags.Changed("n") {
			v, _ := flags.GetInt("n")
			req.GridResolution = &v
		}
		if flags.Changed("extent") {
			v, _ := flags.GetFloat64("extent")
			req.DomainExtentRatio = &v
		}
		if flags.Changed("radius") {
			v, _ := flags.GetFloat64("radius")
			req.HoleRadius = &v
		}

		field, err := calculator.NewHoleCalculator(cfg.HoleParameters(req), cfg.CalculatorOptions()).Calculate()
		if err != nil {
			return err
		}
		return writeJSON(cmd, field)
	},
}

func init() {
	holeCmd.Flags().Int("n", 100, "grid points per axis")
	holeCmd.Flags().Float64("extent", 3, "half width of the domain in hole radii")
	holeCmd.Flags().Float64("radius", 1, "hole radius")
	rootCmd.AddCommand(holeCmd)
}

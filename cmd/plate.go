package cmd

import (
	"github.com/spf13/cobra"
	"orthos/calculator"
	"orthos/model"
)

var plateCmd = &cobra.Command{
	Use:   "plate",
	Short: "Compute the plate deflection field and print it as JSON",
	Long: `Compute the deflection of a simply supported rectangular plate under a
uniform load, using the first (m=1, n=1) term of the Navier series.

Unset flags fall back to the config file; an unset load uses DefaultLoad.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var req model.PlateRequest
		flags := cmd.Flags()
		if flags.Changed("a") {
			v, _ := flags.GetFloat64("a")
			req.LengthA = &v
		}
		if flags.Changed("b") {
			v, _ := flags.GetFloat64("b")
			req.WidthB = &v
		}
		if flags.Changed("load") {
			v, _ := flags.GetFloat64("load")
			req.Load = &v
		}
		if flags.Changed("steps") {
			v, _ := flags.GetInt("steps")
			req.ResolutionSteps = &v
		}

		field, err := calculator.NewPlateCalculator(cfg.PlateParameters(req), cfg.CalculatorOptions()).Calculate()
		if err != nil {
			return err
		}
		summary, err := calculator.SummarizePlate(field)
		if err != nil {
			return err
		}
		return writeJSON(cmd, model.PlateResult{Field: field, Summary: summary})
	},
}

func init() {
	plateCmd.Flags().Float64("a", 1, "plate length along x")
	plateCmd.Flags().Float64("b", 1, "plate width along y")
	plateCmd.Flags().Float64("load", 1000, "uniform load")
	plateCmd.Flags().Int("steps", 50, "grid steps per axis")
	rootCmd.AddCommand(plateCmd)
}

package cmd

import (
	"github.com/spf13/cobra"
	"orthos/calculator"
	"orthos/model"
)

var fatigueCmd = &cobra.Command{
	Use:   "fatigue",
	Short: "Evaluate an S-N curve: life at a stress amplitude, strength at a cycle count",
	Long: `Evaluate the S-N curve sigma = A - B*log10(N).

  --stress  prints the cycles to failure at that stress amplitude
  --cycles  prints the fatigue strength after that many cycles

At least one of them is required. Curve data always comes from the flags; the
config file has no fatigue section.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var req model.FatigueRequest
		flags := cmd.Flags()
		req.A, _ = flags.GetFloat64("a")
		req.B, _ = flags.GetFloat64("b")
		if flags.Changed("stress") {
			v, _ := flags.GetFloat64("stress")
			req.StressAmplitude = &v
		}
		if flags.Changed("cycles") {
			v, _ := flags.GetFloat64("cycles")
			req.Cycles = &v
		}

		res, err := calculator.Fatigue(req)
		if err != nil {
			return err
		}
		return writeJSON(cmd, res)
	},
}

func init() {
	fatigueCmd.Flags().Float64("a", 0, "S-N curve intercept A")
	fatigueCmd.Flags().Float64("b", 0, "S-N curve slope B per decade")
	fatigueCmd.Flags().Float64("stress", 0, "stress amplitude")
	fatigueCmd.Flags().Float64("cycles", 0, "number of cycles")
	for _, name := range []string{"a", "b"} {
		if err := fatigueCmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
	rootCmd.AddCommand(fatigueCmd)
}

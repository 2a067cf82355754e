package cmd

import (
	"github.com/spf13/cobra"
	"orthos/calculator"
	"orthos/model"
)

var microCmd = &cobra.Command{
	Use:   "micro",
	Short: "Estimate lamina moduli from fiber and matrix moduli",
	Long: `Estimate the moduli of a unidirectional lamina: E1 by the rule of mixtures,
E2 by Halpin-Tsai and by the inverse rule of mixtures.

Material data always comes from the flags; the config file has no
micromechanics section.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var p model.MicromechanicsParameters
		p.FiberModulus, _ = cmd.Flags().GetFloat64("ef")
		p.MatrixModulus, _ = cmd.Flags().GetFloat64("em")
		p.VolumeFraction, _ = cmd.Flags().GetFloat64("vf")
		p.Xi, _ = cmd.Flags().GetFloat64("xi")

		res, err := calculator.Micromechanics(p)
		if err != nil {
			return err
		}
		return writeJSON(cmd, res)
	},
}

func init() {
	microCmd.Flags().Float64("ef", 0, "fiber modulus")
	microCmd.Flags().Float64("em", 0, "matrix modulus")
	microCmd.Flags().Float64("vf", 0, "fiber volume fraction, 0..1")
	microCmd.Flags().Float64("xi", calculator.DefaultHalpinTsaiXi, "Halpin-Tsai shape parameter")
	for _, name := range []string{"ef", "em", "vf"} {
		if err := microCmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
	rootCmd.AddCommand(microCmd)
}

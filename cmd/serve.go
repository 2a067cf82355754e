package cmd

import (
	"github.com/spf13/cobra"
	"orthos/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the websocket server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if addr, _ := cmd.Flags().GetString("addr"); cmd.Flags().Changed("addr") {
			cfg.Addr = addr
		}
		return server.NewServer(cfg).Serve()
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address, overrides the config file")
	rootCmd.AddCommand(serveCmd)
}

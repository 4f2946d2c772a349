package main

import (
	"os"

	"github.com/spf13/cobra"

	appconfig "github.com/ar2rodelvalle/manual-splitter-backend/config"
	srv "github.com/ar2rodelvalle/manual-splitter-backend/internal/server"
)

func main() {
	var root = &cobra.Command{Use: "splitter"}

	var serveAddr string
	var configPath string
	var serve = &cobra.Command{
		Use:   "serve",
		Short: "Run HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if serveAddr == "" {
				serveAddr = os.Getenv("PORT")
			}
			cfg := appconfig.LoadConfig(configPath)
			return srv.Run(serveAddr, cfg)
		},
	}
	serve.Flags().StringVar(&serveAddr, "addr", "", "listen address (host:port or a bare port)")
	serve.Flags().StringVar(&configPath, "config", "", "path to config.json (defaults searched when empty)")

	root.AddCommand(serve)
	_ = root.Execute()
}

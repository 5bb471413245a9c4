package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/askq-ai/askq-sidecar/sidecarserver"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath   string
		projectRoot  string
		skillsDir    string
		bridgeListen string
		logLevel     string
	)

	cmd := &cobra.Command{
		Use:   "askq-sidecar [project-root]",
		Short: "AskQ sidecar: sandboxed filesystem tools and a UE4 editor bridge over MCP",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sidecarserver.LoadConfig(configPath)
			if err != nil {
				return err
			}

			// Flags and the positional root override the config file.
			if len(args) == 1 {
				cfg.ProjectRoot = args[0]
			}
			if projectRoot != "" {
				cfg.ProjectRoot = projectRoot
			}
			if skillsDir != "" {
				cfg.SkillsDir = skillsDir
			}
			if bridgeListen != "" {
				cfg.Bridge.Enabled = true
				cfg.Bridge.ListenAddr = bridgeListen
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}

			// Stdout carries the MCP transport; logs go to stderr.
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: cfg.Log.SlogLevel(),
			}))

			sidecar, err := sidecarserver.New(cfg, logger)
			if err != nil {
				return err
			}

			if cfg.Bridge.Enabled {
				mux := http.NewServeMux()
				mux.Handle("/ue4", sidecar.Bridge.Handler())
				go func() {
					logger.Info("UE4 bridge listening", "addr", cfg.Bridge.ListenAddr)
					if err := http.ListenAndServe(cfg.Bridge.ListenAddr, mux); err != nil {
						logger.Error("UE4 bridge listener failed", "error", err)
					}
				}()
			}

			logger.Info("serving MCP on stdio", "project_root", cfg.ProjectRoot)
			return server.ServeStdio(sidecar.MCP)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	cmd.Flags().StringVar(&projectRoot, "project-root", "", "directory all file access is confined to")
	cmd.Flags().StringVar(&skillsDir, "skills-dir", "", "directory containing skill packages")
	cmd.Flags().StringVar(&bridgeListen, "bridge-listen", "", "enable the UE4 bridge listener on this address")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	return cmd
}

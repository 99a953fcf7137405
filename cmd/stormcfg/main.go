package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-stormpath-config/internal/config"
	"github.com/MKhiriev/go-stormpath-config/internal/logger"
	"github.com/MKhiriev/go-stormpath-config/internal/service"
	"github.com/MKhiriev/go-stormpath-config/models"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "stormcfg",
		Short:         "Resolve Stormpath client configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newResolveCommand(), newVersionCommand())
	return root
}

func newResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the configuration resolved from files, environment and the Stormpath API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.GetStructuredConfig(cmd.Flags())
			if err != nil {
				return err
			}

			log, err := logger.New("stormcfg", cfg.Log.Level, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			log.Debug().Any("config", cfg).Msg("received configs")

			services, err := service.NewServices(*cfg, buildInfo(), log)
			if err != nil {
				return fmt.Errorf("create services: %w", err)
			}

			resolved, err := services.ResolverService.Resolve(cmd.Context(), nil)
			if err != nil {
				return err
			}
			return writeConfig(cmd.OutOrStdout(), resolved, cfg.Output.Format)
		},
	}
	config.BindFlags(cmd.Flags())
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			appInfo, err := service.NewAppInfoService(buildInfo(), logger.Nop())
			if err != nil {
				return err
			}
			printBuildInfo(cmd.OutOrStdout(), appInfo.GetBuildInfo(cmd.Context()))
			return nil
		},
	}
}

func buildInfo() models.AppBuildInfo {
	orNA := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}
	return models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
}

func printBuildInfo(w io.Writer, info models.AppBuildInfo) {
	fmt.Fprint(w, info.String())
}

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-restviews/internal/handler"
	"github.com/MKhiriev/go-restviews/internal/logger"
	"github.com/MKhiriev/go-restviews/internal/server"
	"github.com/MKhiriev/go-restviews/models"
)

func newServeCommand(info models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printBuildInfo(cmd.OutOrStdout(), info)

			a, err := bootstrap(cmd, info, logger.NewLogger("restviews-server"))
			if err != nil {
				return err
			}

			handlers, err := handler.NewHandlers(a.services, a.pages, a.cfg.Server, a.logger)
			if err != nil {
				return fmt.Errorf("error creating handlers: %w", err)
			}

			srv, err := server.NewServer(handlers, a.cfg.Server, a.logger)
			if err != nil {
				return fmt.Errorf("error creating server: %w", err)
			}

			if err := srv.RunServer(); err != nil {
				return fmt.Errorf("error running server: %w", err)
			}
			return nil
		},
	}
}

func printBuildInfo(w io.Writer, info models.AppBuildInfo) {
	fmt.Fprintf(w, "Build version: %s\n", orNotAvailable(info.BuildVersion()))
	fmt.Fprintf(w, "Build date: %s\n", orNotAvailable(info.BuildDate()))
	fmt.Fprintf(w, "Build commit: %s\n", orNotAvailable(info.BuildCommit()))
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-restviews/models"
)

func newVersionCommand(info models.AppBuildInfo) *cobra.Command {
	var (
		short  bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			version := orNotAvailable(info.BuildVersion())

			if short {
				_, err := fmt.Fprintln(out, version)
				return err
			}

			if asJSON {
				data, err := json.MarshalIndent(map[string]string{
					"version": version,
					"commit":  orNotAvailable(info.BuildCommit()),
					"date":    orNotAvailable(info.BuildDate()),
				}, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling version info: %w", err)
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			}

			printBuildInfo(out, info)
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print version number only")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print version info as JSON")

	return cmd
}

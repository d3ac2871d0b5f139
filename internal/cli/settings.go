package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-restviews/internal/logger"
	"github.com/MKhiriev/go-restviews/models"
)

func newSettingsCommand(info models.AppBuildInfo) *cobra.Command {
	var (
		withDefaults bool
		asJSON       bool
		key          string
	)

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Print the effective site settings",
		Long: `Load the site settings, inject the component defaults and print the
result. With --defaults the registry of injected defaults is printed too.
With --key only the value at a dotted path such as RESTVIEWS_GRID.itemsPerPage
is printed, taken from the registry when --defaults is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(cmd, info, logger.NewConsoleLogger("restviews-cli"))
			if err != nil {
				return err
			}

			var value any
			if key != "" {
				value, err = a.services.SettingsService.Value(cmd.Context(), key, withDefaults)
			} else {
				value, err = a.services.SettingsService.Dump(cmd.Context(), withDefaults)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.MarshalIndent(value, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling settings: %w", err)
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			}

			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(value); err != nil {
				return fmt.Errorf("encoding settings: %w", err)
			}
			return enc.Close()
		},
	}

	cmd.Flags().BoolVar(&withDefaults, "defaults", false, "Also print the injected defaults registry")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON instead of YAML")
	cmd.Flags().StringVarP(&key, "key", "k", "", "Print only the setting at this dotted path")

	return cmd
}

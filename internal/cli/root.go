package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-restviews/internal/config"
	"github.com/MKhiriev/go-restviews/models"
)

const notAvailable = "N/A"

// Execute runs the root command with build info injected via ldflags.
func Execute(version, date, commit string) error {
	return NewRootCommand(models.NewAppBuildInfo(version, date, commit)).Execute()
}

// NewRootCommand assembles the command tree.
func NewRootCommand(info models.AppBuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:   "restviews",
		Short: "Demo site for knockout grids over REST endpoints",
		Long: `restviews serves pages whose grids are configured through site settings
and the defaults injected by the restviews component.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		newServeCommand(info),
		newSettingsCommand(info),
		newVersionCommand(info),
	)

	return root
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"scanenv/internal/app"
)

func newProfilesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the available build profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service := app.NewService()
			result := service.ListProfiles(currentPlatform())
			for _, profile := range result.Profiles {
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %2d deps  %s\n",
					profile.ID, profile.Dependencies, profile.Description)
			}
			return nil
		},
	}
	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"scanenv/internal/app"
	"scanenv/internal/types"
)

type envOptions struct {
	Profile string
	Catalog string
	Quiet   bool
}

func newEnvCommand() *cobra.Command {
	opts := envOptions{}
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Materialize a profile and print shell export lines",
		Long: "Materialize a build profile and print export lines for the " +
			"current shell to eval, followed by a resolution summary on stderr.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEnv(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Profile, "profile", string(types.ProfileDefault), "Build profile")
	cmd.Flags().StringVar(&opts.Catalog, "catalog", "", "Catalog overlay file")
	cmd.Flags().BoolVar(&opts.Quiet, "quiet", false, "Suppress the summary")

	_ = viper.BindPFlag("profile", cmd.Flags().Lookup("profile"))
	_ = viper.BindPFlag("catalog", cmd.Flags().Lookup("catalog"))

	return cmd
}

func runEnv(cmd *cobra.Command, opts envOptions) error {
	service := app.NewService()
	result, err := service.Activate(app.ActivateRequest{
		Profile:     types.ProfileID(resolveString(cmd, opts.Profile, "profile", "profile")),
		Platform:    currentPlatform(),
		CatalogPath: resolveString(cmd, opts.Catalog, "catalog", "catalog"),
	})
	if err != nil {
		return err
	}
	for _, line := range result.ExportLines {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	if !opts.Quiet {
		fmt.Fprint(cmd.ErrOrStderr(), result.Summary)
	}
	return nil
}

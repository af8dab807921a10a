package cli

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"scanenv/internal/app"
	"scanenv/internal/types"
)

type runOptions struct {
	Profile string
	Catalog string
	WorkDir string
}

var knownApps = map[string]types.AppName{
	string(types.AppScanner):   types.AppScanner,
	string(types.AppConfigure): types.AppConfigure,
	string(types.AppBuild):     types.AppBuild,
}

func newRunCommand() *cobra.Command {
	opts := runOptions{}
	cmd := &cobra.Command{
		Use:   "run <scanner|configure|build> [args...]",
		Short: "Run the packaged scanner or a generated wrapper script",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.Profile, "profile", string(types.ProfileDefault), "Build profile")
	cmd.Flags().StringVar(&opts.Catalog, "catalog", "", "Catalog overlay file")
	cmd.Flags().StringVar(&opts.WorkDir, "workdir", "", "Directory holding the scanner source tree")

	_ = viper.BindPFlag("run_profile", cmd.Flags().Lookup("profile"))
	_ = viper.BindPFlag("run_catalog", cmd.Flags().Lookup("catalog"))
	_ = viper.BindPFlag("run_workdir", cmd.Flags().Lookup("workdir"))

	return cmd
}

func runRun(cmd *cobra.Command, opts runOptions, args []string) error {
	appName, ok := knownApps[args[0]]
	if !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown app %q (expected scanner, configure, or build)", args[0]))
	}

	profile := types.ProfileID(resolveString(cmd, opts.Profile, "run_profile", "profile"))
	if appName == types.AppScanner {
		profile = scannerProfile(profile, flagChanged(cmd, "profile"))
	}

	service := app.NewService()
	_, err := service.Run(cmd.Context(), app.RunRequest{
		App:         appName,
		Profile:     profile,
		Platform:    currentPlatform(),
		CatalogPath: resolveString(cmd, opts.Catalog, "run_catalog", "catalog"),
		Args:        args[1:],
		WorkDir:     resolveString(cmd, opts.WorkDir, "run_workdir", "workdir"),
	})
	return err
}

// scannerProfile pins scanner invocations to the release profile, since the
// packaged binary lives under the release install prefix.  An explicitly
// requested different profile is overridden loudly rather than silently.
func scannerProfile(requested types.ProfileID, explicit bool) types.ProfileID {
	if explicit && requested != types.ProfileRelease {
		log.Warn().
			Str("requested", string(requested)).
			Msg("run scanner always uses the release profile; ignoring --profile")
	}
	return types.ProfileRelease
}

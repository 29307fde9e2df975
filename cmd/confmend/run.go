package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/confmend/confmend/pkg/config"
	"github.com/confmend/confmend/pkg/discovery"
	"github.com/confmend/confmend/pkg/filesystem"
	"github.com/confmend/confmend/pkg/logging"
	"github.com/confmend/confmend/pkg/resolve"
	"github.com/confmend/confmend/pkg/types"
	"github.com/confmend/confmend/pkg/ui"
)

func newRunCmd() *cobra.Command {
	var (
		unattended string
		frontend   string
		configPath string
		assumeYes  bool
		assumeNo   bool
		packages   []string
		noSummary  bool
	)

	cmd := &cobra.Command{
		Use:   "run [dir...]",
		Short: MsgRunShort,
		Long:  MsgRunLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.run")

			cfg, err := config.LoadConfiguration(configPath)
			if err != nil {
				return err
			}

			// CLI flags take precedence over file and environment
			if cmd.Flags().Changed("unattended") {
				cfg.Main.Unattended = unattended
			}
			if cmd.Flags().Changed("frontend") {
				cfg.Main.Frontend = frontend
			}
			if len(args) > 0 {
				cfg.Main.ScanPaths = args
			}

			for _, pkg := range packages {
				logger.Debug().Str("package", pkg).Msg("Adding package to review list")
			}

			flags := config.HostFlags{AssumeYes: assumeYes, AssumeNo: assumeNo}
			sessionCfg := config.NewSessionConfig(cfg, flags, packages)

			fsys := filesystem.NewOS()
			lister := discovery.NewDirScanner(fsys, sessionCfg.ScanPaths)
			differ := ui.NewDiffer(fsys, cmd.OutOrStdout())

			var merger resolve.Merger
			switch sessionCfg.Frontend {
			case "", "env":
				merger = ui.NewEnvMerger(fsys)
			default:
				logger.Debug().Str("frontend", sessionCfg.Frontend).Msg("Unknown frontend, merge prompts will stop the run")
			}

			session := resolve.NewSession(sessionCfg, fsys, lister, ui.NewPrompter(), differ, merger)
			result, err := session.Run()
			if err != nil {
				return err
			}

			switch result.Status {
			case types.RunSkipped:
				logger.Debug().Msg("Session skipped")
				return nil
			case types.RunBenignStop:
				logger.Debug().Str("reason", string(result.Reason)).Msg("Session stopped early")
			}

			if !noSummary {
				if err := ui.RenderSummary(cmd.OutOrStdout(), result); err != nil {
					fmt.Fprintf(os.Stderr, "failed to render summary: %v\n", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&unattended, "unattended", "", MsgFlagUnattended)
	cmd.Flags().StringVar(&frontend, "frontend", "", MsgFlagFrontend)
	cmd.Flags().StringVar(&configPath, "config", "", MsgFlagConfig)
	cmd.Flags().BoolVar(&assumeYes, "assume-yes", false, MsgFlagAssumeYes)
	cmd.Flags().BoolVar(&assumeNo, "assume-no", false, MsgFlagAssumeNo)
	cmd.Flags().StringSliceVar(&packages, "packages", nil, MsgFlagPackages)
	cmd.Flags().BoolVar(&noSummary, "no-summary", false, MsgFlagNoSummary)

	return cmd
}

func newGenconfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenconfigShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := config.DefaultTOML()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/conn-castle/ext-installer/internal/config"
	"github.com/conn-castle/ext-installer/internal/install"
	"github.com/conn-castle/ext-installer/internal/messages"
	"github.com/conn-castle/ext-installer/internal/prompt"
	"github.com/conn-castle/ext-installer/internal/toolchain"
)

var (
	lookupEnv                        = os.LookupEnv
	lookPath  toolchain.LookPathFunc = exec.LookPath
	newUI                            = prompt.New
)

func newRootCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := getwd()
			if err != nil {
				return err
			}
			loaded, err := config.Load(root, lookupEnv)
			if err != nil {
				return err
			}
			paths, err := config.ResolvePaths(root, loaded.Config)
			if err != nil {
				return err
			}
			log := newLogger(cmd.ErrOrStderr(), verbose || loaded.Verbose)
			log.V(1).Info("config", "source", loaded.Source, "manifest", paths.Manifest, "link", paths.Link)

			ui := newUI(cmd.InOrStdin(), cmd.OutOrStdout())
			_, err = install.Run(cmd.Context(), install.Options{
				Paths:        paths,
				Capabilities: toolchain.Detect(lookPath, loaded.Tools),
				System:       install.RealSystem{},
				Runner:       toolchain.NewExecRunner(cmd.OutOrStdout(), cmd.ErrOrStderr(), log),
				Prompter:     uiPrompter(ui),
				Stdout:       cmd.OutOrStdout(),
				Stderr:       cmd.ErrOrStderr(),
				Log:          log,
			})
			return err
		},
	}
	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, messages.FlagVerboseUsage)
	cmd.AddCommand(newDoctorCmd())
	return cmd
}

// newLogger returns a logr.Logger over a slog text handler; V(1) lines are
// only emitted when verbose is set.
func newLogger(w io.Writer, verbose bool) logr.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return logr.FromSlogHandler(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// uiPrompter adapts a prompt.UI to the installer's questions.
func uiPrompter(ui prompt.UI) install.PromptFuncs {
	return install.PromptFuncs{
		VersionFunc: func() (string, error) {
			var version string
			err := ui.Input(messages.PromptVersionTitle, messages.PromptVersionDescription, &version)
			return version, err
		},
		BinaryPathFunc: func() (string, error) {
			var path string
			err := ui.Input(messages.PromptBinaryTitle, messages.PromptBinaryDescription, &path)
			return path, err
		},
		ConfirmChmodFunc: func(path string) (bool, error) {
			ok := true
			err := ui.Confirm(fmt.Sprintf(messages.PromptChmodFmt, path), &ok)
			return ok, err
		},
	}
}

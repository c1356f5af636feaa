package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/ext-installer/internal/config"
	"github.com/conn-castle/ext-installer/internal/doctor"
	"github.com/conn-castle/ext-installer/internal/install"
	"github.com/conn-castle/ext-installer/internal/messages"
	"github.com/conn-castle/ext-installer/internal/toolchain"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			root, err := getwd()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, root)

			loaded, err := config.Load(root, lookupEnv)
			results := []doctor.Result{doctor.CheckConfig(loaded, err)}
			cfg := config.Default()
			if err == nil {
				cfg = loaded.Config
			}

			results = append(results, doctor.CheckTools(toolchain.Detect(lookPath, cfg.Tools))...)
			paths, err := config.ResolvePaths(root, cfg)
			if err != nil {
				return err
			}
			sys := install.RealSystem{}
			results = append(results,
				doctor.CheckManifest(sys, paths.Manifest),
				doctor.CheckLink(sys, paths.Link),
			)

			for _, r := range results {
				printResult(out, r)
			}
			if doctor.HasFailure(results) {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return &SilentExitError{Code: 1}
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, r.Recommendation)
	}
}

package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/uvroot/foundation/core/error"
	"github.com/msto63/uvroot/internal/report"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every analysis in sequence",
	Long: `Runs every analysis in order. A failing analysis is reported and the
run continues with the next one; the command fails if any analysis failed.`,
	Args: cobra.NoArgs,
	RunE: runAll,
}

func init() {
	rootCmd.AddCommand(allCmd)
}

func runAll(cmd *cobra.Command, args []string) error {
	s := current
	var failed []string

	for _, a := range analyses {
		if err := cmd.Context().Err(); err != nil {
			return mdwerror.Wrap(err, "run interrupted").
				WithCode(mdwerror.CodeTimeout).
				WithOperation("cmd.all")
		}

		data, err := a.exec(cmd.Context(), s)
		if err == nil {
			err = emit(cmd, s, a.name, data)
		}
		if err != nil {
			s.logger.Error("analysis failed", "analysis", a.name, "error", err)
			failed = append(failed, a.name)
		}
	}

	if s.format == report.FormatText {
		p := report.NewPrinter(cmd.OutOrStdout())
		p.Section("Run Summary")
		p.Line("Analyses: %d, failed: %d", len(analyses), len(failed))
		if len(failed) == 0 {
			p.Done("All analyses complete")
		} else {
			p.Failed("Failed: %s", strings.Join(failed, ", "))
		}
		if err := p.Err(); err != nil {
			return err
		}
	}

	if len(failed) > 0 {
		return mdwerror.Newf("%d of %d analyses failed: %s", len(failed), len(analyses), strings.Join(failed, ", ")).
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("cmd.all").
			WithDetail("failed", failed)
	}
	return nil
}

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/uvroot/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	// No configuration needed
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "uvroot v%s\n", version.Toolkit)
		fmt.Fprintf(out, "  Commit:        %s\n", version.Commit)
		fmt.Fprintf(out, "  Build Date:    %s\n", version.BuildDate)
		fmt.Fprintf(out, "  Report Schema: %s\n", version.ReportSchema)
		fmt.Fprintf(out, "  Go Version:    %s\n", runtime.Version())
		fmt.Fprintf(out, "  OS/Arch:       %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

package cmd

import (
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/uvroot/foundation/core/error"
	"github.com/msto63/uvroot/internal/history"
	"github.com/msto63/uvroot/internal/report"
)

var (
	historyLimit     int
	historyOlderThan time.Duration
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect stored runs",
	Long: `Lists, shows and prunes runs stored with --save or history.enabled.

Examples:
  uvroot history list --limit 5
  uvroot history show <run-id> -o json
  uvroot history prune --older-than 168h`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored runs, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Render a stored run again",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete runs older than the retention period",
	Args:  cobra.NoArgs,
	RunE:  runHistoryPrune,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyPruneCmd)

	historyListCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of runs (0: all)")
	historyPruneCmd.Flags().DurationVar(&historyOlderThan, "older-than", 0, "age cutoff (default: history.retention)")
}

func openHistory(s *session) (history.Store, error) {
	return history.Open(history.Config{Path: s.cfg.History.Path})
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := openHistory(current)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}
	return render(cmd, current, "history list", &history.Listing{Entries: entries})
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	store, err := openHistory(current)
	if err != nil {
		return err
	}
	defer store.Close()

	entry, err := store.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	env, err := entry.Envelope()
	if err != nil {
		return err
	}
	if current.format == report.FormatText {
		if a, ok := lookupAnalysis(entry.Command); ok {
			typed := a.result()
			if err := json.Unmarshal(entry.Payload, typed); err != nil {
				return mdwerror.Wrap(err, "stored run does not match its report type").
					WithCode(mdwerror.CodeDatabaseError).
					WithOperation("cmd.history.show").
					WithDetail("run_id", entry.RunID)
			}
			env.Data = typed
		}
	}
	return current.out.Render(env)
}

func runHistoryPrune(cmd *cobra.Command, args []string) error {
	olderThan := historyOlderThan
	if olderThan == 0 {
		olderThan = current.cfg.History.Retention.Duration
	}
	if olderThan <= 0 {
		return mdwerror.New("prune age must be positive").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.history.prune").
			WithDetail("older_than", olderThan.String())
	}

	store, err := openHistory(current)
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Prune(cmd.Context(), olderThan)
	if err != nil {
		return err
	}
	current.logger.Info("history pruned", "removed", n, "older_than", olderThan.String())
	return render(cmd, current, "history prune", &history.PruneResult{OlderThan: olderThan.String(), Removed: n})
}

// render writes data without saving it to the history
func render(cmd *cobra.Command, s *session, command string, data interface{}) error {
	return s.out.Render(report.NewEnvelope(command, data))
}

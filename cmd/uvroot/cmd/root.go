package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/uvroot/foundation/core/error"
	"github.com/msto63/uvroot/internal/history"
	"github.com/msto63/uvroot/internal/report"
	"github.com/msto63/uvroot/pkg/core/config"
	"github.com/msto63/uvroot/pkg/core/logging"
)

var (
	cfgFile      string
	verbose      bool
	outputFormat string
	saveRun      bool
	seedFlag     int64
)

var rootCmd = &cobra.Command{
	Use:   "uvroot",
	Short: "uvroot - analysis toolkit",
	Long: `uvroot runs a set of small analyses and prints their reports.

Analyses:
  api       - probe HTTP endpoints and compute value metrics
  matrix    - random matrix statistics and products
  datasets  - sort, filter and aggregate integer datasets
  text      - extract numbers and emails, replace patterns, validate formats
  simulate  - seeded random simulations and sampling
  scan      - runtime, environment and directory scan
  dates     - timestamp parsing, spans and business days
  urls      - domain extraction and IDNA encoding
  all       - run every analysis in sequence

Results can be stored with --save and inspected with "uvroot history".`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: prepare,
}

// session is the per-invocation state built from flags and configuration
type session struct {
	cfg     *config.Config
	cfgPath string
	logger  *logging.Logger
	format  report.Format
	out     *report.Renderer
	save    bool
}

var current *session

// ExecuteContext runs the root command with ctx
func ExecuteContext(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		printError(rootCmd, err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $"+config.EnvConfigPath+" or ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: text, json or yaml")
	rootCmd.PersistentFlags().BoolVar(&saveRun, "save", false, "store results in the history database")
	rootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", 0, "random seed for matrix and simulate (0: use config)")
}

func prepare(cmd *cobra.Command, args []string) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}

	level := cfg.General.LogLevel
	if verbose {
		level = "debug"
	}
	logCfg := logging.DefaultLoggerConfig(cfg.General.Name)
	logCfg.Level = level
	logCfg.Format = cfg.General.LogFormat
	logCfg.Output = cmd.ErrOrStderr()
	base := logging.NewLogger(logCfg)

	name := outputFormat
	if name == "" {
		name = cfg.General.Output
	}
	format, err := report.ParseFormat(name)
	if err != nil {
		return err
	}

	current = &session{
		cfg:     cfg,
		cfgPath: path,
		logger:  logging.Wrap(base, cfg.General.Name),
		format:  format,
		out:     report.NewRenderer(cmd.OutOrStdout(), format),
		save:    saveRun || cfg.History.Enabled,
	}
	current.logger.Debug("configuration loaded", "path", path, "format", format.String())
	return nil
}

func loadConfig() (*config.Config, string, error) {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		return cfg, cfgFile, err
	}
	return config.LoadFromEnv()
}

// emit renders data and, when saving is on, stores it in the history
func emit(cmd *cobra.Command, s *session, command string, data interface{}) error {
	env := report.NewEnvelope(command, data)
	if err := s.out.Render(env); err != nil {
		return err
	}
	if !s.save {
		return nil
	}
	return saveEnvelope(cmd.Context(), s, env)
}

func saveEnvelope(ctx context.Context, s *session, env report.Envelope) error {
	store, err := history.Open(history.Config{Path: s.cfg.History.Path})
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Save(ctx, env); err != nil {
		return err
	}
	s.logger.Debug("run saved", "run_id", env.RunID, "command", env.Command)
	return nil
}

func printError(cmd *cobra.Command, err error) {
	msg := err.Error()
	if code := mdwerror.GetCode(err); code != mdwerror.CodeUnknown {
		msg = fmt.Sprintf("[%s] %s", code, msg)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", msg)
}

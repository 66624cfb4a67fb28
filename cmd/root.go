package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/abhisek/ptrdojo/internal/app"
	"github.com/abhisek/ptrdojo/internal/config"
	"github.com/abhisek/ptrdojo/internal/exam"
)

var rootCmd = &cobra.Command{
	Use:   "ptrdojo",
	Short: "Terminal dojo for C++ pointers and memory",
	Long:  "ptrdojo — a terminal tutor for C++ pointers and memory management, ending in the Master's Final Examination.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides ~/.ptrdojo/config.yaml)")
	rootCmd.Flags().Bool("debug", false, "Write structured logs to ptrdojo.log in the working directory")

	rootCmd.AddCommand(challengesCmd)
	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(versionCmd)
}

// runApp wires the config, logger and exam engine, then starts the TUI.
func runApp(cmd *cobra.Command) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	policy, ok := exam.ParsePolicy(cfg.Exam.TimeoutPolicy)
	if !ok {
		return fmt.Errorf("unknown exam timeout policy %q (want freeze or relock)", cfg.Exam.TimeoutPolicy)
	}

	logger, closeLog, err := buildLogger(cmd, cfg)
	if err != nil {
		return err
	}
	if closeLog != nil {
		defer closeLog()
	}

	catalog, err := exam.NewCatalog(exam.FinalExamChallenges())
	if err != nil {
		// The seed is compiled in; this only fires on a build defect.
		return fmt.Errorf("exam catalog: %w", err)
	}

	eng := exam.NewEngine(catalog, policy, logger)
	return app.Run(eng)
}

// buildLogger opens the log sink. The TUI owns the terminal, so logs only
// go to a file: --debug forces ./ptrdojo.log, otherwise config decides.
func buildLogger(cmd *cobra.Command, cfg config.Config) (*log.Logger, func(), error) {
	path := cfg.Debug.LogFile
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		path = "ptrdojo.log"
	}
	if path == "" {
		return nil, nil, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})
	return logger, func() { _ = f.Close() }, nil
}

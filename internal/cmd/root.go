package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/quickreplace/internal/config"
	"github.com/harrison/quickreplace/internal/display"
	"github.com/harrison/quickreplace/internal/executor"
	"github.com/harrison/quickreplace/internal/fileutil"
	"github.com/harrison/quickreplace/internal/logger"
	"github.com/harrison/quickreplace/internal/models"
	"github.com/harrison/quickreplace/internal/pattern"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// runState carries what the reporter needs to know after cobra returns.
type runState struct {
	colorMode string
}

// Execute runs quickreplace with args (program name excluded), reports any
// failure to stderr and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	state := &runState{colorMode: display.ColorAuto}
	cmd := newRootCommand(state)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()

	reporter := display.NewReporter(stderr, display.ShouldColor(state.colorMode, stderr))
	return reporter.Report(err)
}

// newRootCommand creates the root cobra command; state receives the resolved color mode.
func newRootCommand(state *runState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quickreplace [flags] [--] <target> <replacement> <INPUT> <OUTPUT>",
		Short: "Change occurrences of one string into another",
		Long: `quickreplace reads INPUT, replaces every match of the regular expression
<target> with <replacement>, and writes the result to OUTPUT.

The replacement may refer to capture groups as $1, ${1} or ${name}.
OUTPUT is created or overwritten in one step; on any failure it is left
untouched. A successful run prints nothing.

Flags must come before <target>. Everything from <target> on is taken
literally, so <replacement>, INPUT and OUTPUT may start with a dash or be
"--". Use -- before <target> when it starts with a dash.`,
		Example: `  quickreplace foo bar in.txt out.txt
  quickreplace '(\d+)' '[$1]' in.txt out.txt
  quickreplace --literal 'a.b' 'a_b' in.txt in.txt
  quickreplace -- '-v' '--verbose' in.txt out.txt`,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplace(cmd, args, state)
		},
		// Failures are reported by Execute, not by cobra
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().String("config", "", "Path to a YAML config file")
	cmd.Flags().String("log-level", logger.DefaultLevel, "Log verbosity (trace, debug, info, warn, error)")
	cmd.Flags().String("color", display.ColorAuto, "Color diagnostics (auto, always, never)")
	cmd.Flags().Bool("literal", false, "Treat <target> and <replacement> as plain strings")
	cmd.Flags().Bool("lock", false, "Hold an exclusive lock on OUTPUT's directory while writing")

	// Stop flag parsing at <target> so later arguments are never read as flags
	cmd.Flags().SetInterspersed(false)

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return models.NewUsageError(c.Flags().NArg(), err)
	})

	return cmd
}

// runReplace implements the root command logic
func runReplace(cmd *cobra.Command, args []string, state *runState) error {
	if cmd.Flags().Changed("color") {
		state.colorMode, _ = cmd.Flags().GetString("color")
	}

	arguments, err := models.ParseArguments(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	state.colorMode = cfg.Color

	useColor := display.ShouldColor(cfg.Color, cmd.ErrOrStderr())
	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel, useColor)

	pipeline := executor.NewPipeline(fileutil.NativeFS(), pattern.NewEngine(cfg.Literal), log)
	pipeline.LockOutput = cfg.LockOutput
	pipeline.FileMode = cfg.FileMode

	return pipeline.Run(arguments)
}

// loadConfig resolves defaults, the optional --config file and explicit flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		loaded, err := config.LoadConfig(fileutil.NativeFS(), configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
		cfg = loaded
	}

	var logLevelPtr, colorPtr *string
	var literalPtr, lockPtr *bool

	if cmd.Flags().Changed("log-level") {
		v, _ := cmd.Flags().GetString("log-level")
		logLevelPtr = &v
	}
	if cmd.Flags().Changed("color") {
		v, _ := cmd.Flags().GetString("color")
		colorPtr = &v
	}
	if cmd.Flags().Changed("literal") {
		v, _ := cmd.Flags().GetBool("literal")
		literalPtr = &v
	}
	if cmd.Flags().Changed("lock") {
		v, _ := cmd.Flags().GetBool("lock")
		lockPtr = &v
	}

	cfg.MergeWithFlags(logLevelPtr, colorPtr, literalPtr, lockPtr)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Package cli wires configuration, logging and the runtimes behind the
// todo command line.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Options carry the process environment into Run.
type Options struct {
	Stdin          io.Reader
	Stdout, Stderr io.Writer
	Environ        []string
}

// runtimeEnv is filled in before any subcommand runs.
type runtimeEnv struct {
	stdin          io.Reader
	stdout, stderr io.Writer
	environ        []string

	cfg    config.Config
	logger *log.Logger
	closer io.Closer
	// interactive is set by commands that take over the terminal; their
	// logs must not go to stderr.
	interactive bool
}

type flagValues struct {
	configPath string
	theme      string
	commit     string
	altScreen  bool
	logFile    string
	logLevel   string
	logFormat  string
}

// Run executes the CLI and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	env := &runtimeEnv{
		stdin:   opt.Stdin,
		stdout:  opt.Stdout,
		stderr:  opt.Stderr,
		environ: opt.Environ,
	}
	if env.stdin == nil {
		env.stdin = os.Stdin
	}
	if env.stdout == nil {
		env.stdout = os.Stdout
	}
	if env.stderr == nil {
		env.stderr = os.Stderr
	}

	root := newRootCmd(env)
	root.SetArgs(args)
	root.SetIn(env.stdin)
	root.SetOut(env.stdout)
	root.SetErr(env.stderr)

	err := root.Execute()
	if env.closer != nil {
		_ = env.closer.Close()
	}
	if err == nil {
		return 0
	}

	p := ui.NewPrinter(env.stdout, env.stderr, env.cfg.Theme, ui.ColorAuto)
	p.Fail(err.Error())
	if isUsage(err) {
		return 2
	}
	return 1
}

func newRootCmd(env *runtimeEnv) *cobra.Command {
	var fv flagValues

	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "A tiny todo list editor",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive editor
  todo

  # Run a scripted session and print the result
  printf 'add Buy milk\nadd Walk dog\ntoggle 1\n' | todo replay
`),
		Args: usageArgs(cobra.NoArgs),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.setup(cmd, fv)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			env.logger.Info("starting", "theme", env.cfg.Theme, "commit", env.cfg.Commit)
			return tui.Run(tui.Options{
				Theme:  env.cfg.Theme,
				Commit: env.cfg.CommitPolicy(),
				Logger: env.logger,
			}, env.cfg.AltScreen)
		},
	}
	cmd.Annotations = map[string]string{"interactive": "true"}

	pf := cmd.PersistentFlags()
	pf.StringVar(&fv.configPath, "config", "", "path to a TOML config file")
	pf.StringVar(&fv.theme, "theme", "", "colour theme: classic, neon or mono")
	pf.StringVar(&fv.commit, "commit", "", "how edits are saved: raw (verbatim) or trim (trim, drop if empty)")
	pf.BoolVar(&fv.altScreen, "alt-screen", true, "use the terminal's alternate screen")
	pf.StringVar(&fv.logFile, "log-file", "", "append logs to this file")
	pf.StringVar(&fv.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&fv.logFormat, "log-format", "", "log format: text, json or logfmt")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: err}
	})

	cmd.AddCommand(newReplayCmd(env), newVersionCmd(env))
	return cmd
}

// setup loads configuration (defaults, file, env, then changed flags) and
// builds the logger.
func (env *runtimeEnv) setup(cmd *cobra.Command, fv flagValues) error {
	path, required := fv.configPath, true
	if path == "" {
		path, required = config.DefaultPath(env.environ), false
	}
	cfg, err := config.Load(path, required, env.environ)
	if err != nil {
		return usageError{err: err}
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = fv.theme
	}
	if flags.Changed("commit") {
		cfg.Commit = fv.commit
	}
	if flags.Changed("alt-screen") {
		cfg.AltScreen = fv.altScreen
	}
	if flags.Changed("log-file") {
		cfg.Log.File = fv.logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = fv.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = fv.logFormat
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return usageError{err: fmt.Errorf("config: %w", err)}
	}
	env.cfg = cfg

	// The TUI owns the terminal; without a log file its logs are dropped.
	env.interactive = cmd.Annotations["interactive"] == "true"
	var fallback io.Writer = env.stderr
	if env.interactive {
		fallback = io.Discard
	}
	logger, closer, err := logging.New(cfg.Log, fallback)
	if err != nil {
		return err
	}
	env.logger, env.closer = logger, closer
	return nil
}

func newVersionCmd(env *runtimeEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(env.stdout, "todo "+Version)
			return err
		},
	}
}

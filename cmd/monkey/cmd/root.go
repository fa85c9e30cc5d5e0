package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/metaphox/monkey-lang/config"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	cfgFile string
	verbose bool

	cfg *config.Config
	log *slog.Logger
}

// NewRootCmd builds the monkey command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "monkey",
		Short: "Lexer and parser for the Monkey language",
		Long: `monkey turns Monkey source text into tokens or a syntax tree.

Commands:
  lex      print the token stream
  parse    print the syntax tree and report syntax errors
  version  print version information

Source is read from a file argument, from -e, or from stdin.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $MONKEY_CONFIG or ./monkey.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newLexCmd(a), newParseCmd(a), newVersionCmd())
	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		printError(root.ErrOrStderr(), err)
	}
	return err
}

// setup loads the configuration and builds the logger.
func (a *app) setup(stderr io.Writer) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level, err := a.cfg.SlogLevel()
	if err != nil {
		return err
	}
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	a.log.Debug("configuration loaded",
		"format", a.cfg.Output.Format,
		"strict_semicolons", a.cfg.Parser.StrictSemicolons,
		"level", level.String())
	return nil
}

// colorEnabled reports whether diagnostics should be styled. An explicit
// config value wins; otherwise the renderer decides from the terminal.
func (a *app) colorEnabled() bool {
	if a.cfg.Output.Color != nil {
		return *a.cfg.Output.Color
	}
	return true
}

func printError(w io.Writer, err error) {
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "monkey: %v\n", err)
}

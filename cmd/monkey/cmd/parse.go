package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/metaphox/monkey-lang/ast"
	"github.com/metaphox/monkey-lang/config"
	"github.com/metaphox/monkey-lang/parser"
)

// errSyntax is returned when the source has syntax errors. The errors
// themselves have already been printed.
type errSyntax struct{ n int }

func (e *errSyntax) Error() string {
	if e.n == 1 {
		return "1 syntax error"
	}
	return fmt.Sprintf("%d syntax errors", e.n)
}

func newParseCmd(a *app) *cobra.Command {
	var (
		eval   string
		format string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Print the syntax tree",
		Long: `Parse Monkey source and print the syntax tree.

Formats:
  sexpr  one fully parenthesised statement per line
  yaml   the tree as a YAML document
  json   the tree as a JSON document

Syntax errors are printed to stderr and the command exits non-zero; nothing
is printed to stdout in that case.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Output.Format
			}
			format = strings.ToLower(format)
			if !cmd.Flags().Changed("strict") {
				strict = a.cfg.Parser.StrictSemicolons
			}

			src, err := readSource(cmd, args, eval)
			if err != nil {
				return err
			}

			var opts []parser.Option
			if strict {
				opts = append(opts, parser.WithStrictSemicolons())
			}
			if a.verbose {
				opts = append(opts, parser.WithLogger(a.log.With("source", src.name)))
			}

			prog, diags := parser.Parse(src.text, opts...)
			a.log.Info("parsed",
				"source", src.name,
				"statements", len(prog.Statements),
				"nodes", countNodes(prog),
				"errors", len(diags))

			if len(diags) > 0 {
				stderr := cmd.ErrOrStderr()
				printDiagnostics(stderr, newStyles(stderr, a.colorEnabled()), src, diags)
				return &errSyntax{n: len(diags)}
			}
			return writeProgram(cmd.OutOrStdout(), prog, format)
		},
	}

	cmd.Flags().StringVarP(&eval, "eval", "e", "", "source text to parse instead of a file")
	cmd.Flags().StringVarP(&format, "format", "f", config.FormatSexpr, "output format: sexpr, yaml or json")
	cmd.Flags().BoolVar(&strict, "strict", false, "require ';' after let and return statements")
	return cmd
}

func writeProgram(w io.Writer, prog *ast.Program, format string) error {
	switch format {
	case config.FormatSexpr:
		for _, s := range prog.Statements {
			if _, err := fmt.Fprintln(w, s.String()); err != nil {
				return err
			}
		}
		return nil
	case config.FormatYAML:
		return ast.FprintYAML(w, prog)
	case config.FormatJSON:
		return ast.FprintJSON(w, prog)
	}
	return fmt.Errorf("unknown format %q (want sexpr, yaml or json)", format)
}

func countNodes(prog *ast.Program) int {
	n := 0
	ast.Inspect(prog, func(ast.Node) bool {
		n++
		return true
	})
	return n
}

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/metaphox/monkey-lang/ast"
	"github.com/metaphox/monkey-lang/lexer"
)

func newLexCmd(a *app) *cobra.Command {
	var eval string

	cmd := &cobra.Command{
		Use:   "lex [file]",
		Short: "Print the token stream",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(cmd, args, eval)
			if err != nil {
				return err
			}

			toks := lexer.Tokenize(src.text)
			illegal := 0
			out := cmd.OutOrStdout()
			for _, tok := range toks {
				fmt.Fprintf(out, "%-7s %-8s %s\n", tok.Pos(), tok.Type, strconv.Quote(tok.Literal))
				if tok.Type == ast.ILLEGAL {
					illegal++
				}
			}
			a.log.Info("lexed", "source", src.name, "tokens", len(toks), "illegal", illegal)
			return nil
		},
	}

	cmd.Flags().StringVarP(&eval, "eval", "e", "", "source text to lex instead of a file")
	return cmd
}

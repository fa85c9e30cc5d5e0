package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// source is one program text and the name used for it in diagnostics.
type source struct {
	name string
	text string
}

// readSource picks the input for lex and parse: inline text from -e, a file
// argument, or stdin when neither is given ("-" also means stdin).
func readSource(cmd *cobra.Command, args []string, eval string) (source, error) {
	if eval != "" {
		if len(args) > 0 {
			return source{}, fmt.Errorf("cannot combine -e with file argument %q", args[0])
		}
		return source{name: "<eval>", text: eval}, nil
	}

	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return source{}, fmt.Errorf("reading stdin: %w", err)
		}
		return source{name: "<stdin>", text: string(data)}, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return source{}, fmt.Errorf("reading source: %w", err)
	}
	return source{name: args[0], text: string(data)}, nil
}

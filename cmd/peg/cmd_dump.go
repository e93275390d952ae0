package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/peg/format"
	jsongrammar "github.com/dhamidi/peg/grammar/json"
	"github.com/dhamidi/peg/parser"
)

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <grammar>",
		Short: "Print the parser graph of a built-in grammar (json, pattern)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var root parser.Parser
			switch args[0] {
			case "json":
				root = jsongrammar.Value()
			case "pattern":
				root = parser.PatternGrammar()
			default:
				return fmt.Errorf("unknown grammar: %s (expected json or pattern)", args[0])
			}
			return format.NewTreeEncoder(os.Stdout).Encode(root)
		},
	}
}

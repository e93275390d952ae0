package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/peg/format"
	"github.com/dhamidi/peg/parser"
)

func newMatchCmd() *cobra.Command {
	var exact bool

	cmd := &cobra.Command{
		Use:   "match <pattern> <input>",
		Short: "Match a character-class pattern against an input string",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parser.Pattern(args[0])
			if err != nil {
				return fmt.Errorf("compile pattern: %w", err)
			}

			var matcher parser.Parser = parser.Flatten(parser.Plus(p))
			if exact {
				matcher = parser.End(matcher, "end of input expected")
			}

			r := parser.Parse(matcher, args[1])
			log.Debugf("match stopped at position %d", r.Position())

			if err := format.NewJSONEncoder(os.Stdout).Encode(r); err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			fmt.Println()

			if r.IsFailure() {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&exact, "exact", false, "require the pattern to consume the whole input")

	return cmd
}

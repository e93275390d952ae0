package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	jsongrammar "github.com/dhamidi/peg/grammar/json"
)

func newJSONCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "json [file]",
		Short: "Parse a JSON document with the combinator-built grammar",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if len(args) == 0 {
				data, err = io.ReadAll(os.Stdin)
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			value, err := jsongrammar.Decode(string(data))
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			log.Debugf("decoded value of type %T", value)

			switch outputFormat {
			case "json":
				text, err := json.MarshalIndent(value, "", "  ")
				if err != nil {
					return fmt.Errorf("encode: %w", err)
				}
				fmt.Println(string(text))
			case "spew":
				spew.Fdump(os.Stdout, value)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, spew)")

	return cmd
}

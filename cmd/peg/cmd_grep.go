package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dhamidi/peg/parser"
)

func newGrepCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "grep <pattern> [file...]",
		Short: "Scan files (or stdin) for spans matching a character-class pattern",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parser.Pattern(args[0])
			if err != nil {
				return fmt.Errorf("compile pattern: %w", err)
			}
			matcher := parser.Flatten(parser.Plus(p))

			if noColor {
				color.NoColor = true
			}
			highlight := color.New(color.FgRed, color.Bold).SprintFunc()

			files := args[1:]
			if len(files) == 0 {
				return grepReader(matcher, "-", os.Stdin, highlight)
			}
			for _, name := range files {
				f, err := os.Open(name)
				if err != nil {
					return fmt.Errorf("open %s: %w", name, err)
				}
				err = grepReader(matcher, name, f, highlight)
				f.Close()
				if err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}

func grepReader(matcher parser.Parser, name string, r io.Reader, highlight func(...any) string) error {
	scanner := bufio.NewScanner(r)
	lineno := 0
	total := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		rendered, count := renderMatches(matcher, line, highlight)
		if count == 0 {
			continue
		}
		total += count
		fmt.Printf("%s:%d:%s\n", name, lineno, rendered)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	log.Infof("%d matches in %s", total, name)
	return nil
}

// renderMatches rebuilds line with every matched span highlighted. Spans are
// rune offsets; the line is re-assembled from runes to keep them aligned.
func renderMatches(matcher parser.Parser, line string, highlight func(...any) string) (string, int) {
	runes := []rune(line)
	var b strings.Builder
	last := 0
	count := 0
	for m := range parser.Matches(matcher, line) {
		b.WriteString(string(runes[last:m.Start]))
		b.WriteString(highlight(string(runes[m.Start:m.End])))
		last = m.End
		count++
	}
	if count == 0 {
		return "", 0
	}
	b.WriteString(string(runes[last:]))
	return b.String(), count
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/codemimic/mimic/internal/output"
	"github.com/codemimic/mimic/pkg/token"
)

func tokensCmd() *cli.Command {
	return &cli.Command{
		Name:      "tokens",
		Usage:     "Print the normalized token stream for a file",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "one-per-line",
				Usage: "Print one token per line",
			},
		},
		Action: runTokensCmd,
	}
}

func runTokensCmd(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("tokens requires exactly one file argument")
	}
	path := c.Args().Get(0)

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	tokens := token.Scan(string(content))

	formatter, err := output.NewFormatter(output.ParseFormat(c.String("format")), c.String("output"), true)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if formatter.Format() != output.FormatText {
		return formatter.Output(struct {
			File   string   `json:"file" toon:"file"`
			Count  int      `json:"count" toon:"count"`
			Tokens []string `json:"tokens" toon:"tokens"`
		}{path, len(tokens), tokens})
	}

	if c.Bool("one-per-line") {
		for _, t := range tokens {
			fmt.Fprintln(formatter.Writer(), t)
		}
		return nil
	}
	fmt.Fprintln(formatter.Writer(), strings.Join(tokens, " "))
	return nil
}

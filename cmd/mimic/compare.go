package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/codemimic/mimic/internal/output"
	"github.com/codemimic/mimic/pkg/analyzer/plagiarism"
	"github.com/codemimic/mimic/pkg/config"
	"github.com/codemimic/mimic/pkg/source"
)

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Aliases:   []string{"cmp"},
		Usage:     "Score a single pair of files",
		ArgsUsage: "<fileA> <fileB>",
		Flags: []cli.Flag{
			&cli.Float64Flag{
				Name:  "threshold",
				Value: 70,
				Usage: "Similarity percentage at or above which the pair is flagged",
			},
			&cli.StringFlag{
				Name:  "algorithm",
				Value: config.AlgorithmAST,
				Usage: "Fingerprinting algorithm: ast or kgram",
			},
		},
		Action: runCompareCmd,
	}
}

func runCompareCmd(c *cli.Context) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("compare requires exactly two file arguments")
	}
	fileA := c.Args().Get(0)
	fileB := c.Args().Get(1)

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if c.IsSet("threshold") {
		cfg.Detector.Threshold = c.Float64("threshold")
	}
	if c.IsSet("algorithm") {
		cfg.Detector.Algorithm = c.String("algorithm")
	}

	src := source.NewFilesystem()
	contentA, err := src.Read(fileA)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", fileA, err)
	}
	contentB, err := src.Read(fileB)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", fileB, err)
	}

	analyzer := plagiarism.New(plagiarism.WithConfig(cfg.Detector))
	pair, err := analyzer.Compare(fileA, contentA, fileB, contentB)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	formatter, err := output.NewFormatter(output.ParseFormat(c.String("format")), c.String("output"), cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if formatter.Format() != output.FormatText {
		return formatter.Output(pair)
	}

	simStr := fmt.Sprintf("%.1f%%", pair.Similarity)
	if formatter.Colored() {
		simStr = output.ScoreColor(pair.Similarity, cfg.Detector.Threshold, simStr)
	}

	fmt.Fprintf(formatter.Writer(), "%s vs %s\n", pair.FileA, pair.FileB)
	fmt.Fprintf(formatter.Writer(), "  Similarity: %s (%d shared of %d fingerprints)\n",
		simStr, pair.SharedHashes, pair.UnionHashes)
	if pair.Flagged {
		color.Red("  Flagged: similarity at or above %.0f%% threshold", cfg.Detector.Threshold)
	} else {
		color.Green("  Below %.0f%% threshold", cfg.Detector.Threshold)
	}
	return nil
}

package main

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/codemimic/mimic/internal/output"
	"github.com/codemimic/mimic/internal/scanner"
	"github.com/codemimic/mimic/pkg/analyzer/plagiarism"
	"github.com/codemimic/mimic/pkg/config"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Aliases:   []string{"scan"},
		Usage:     "Compare all source files pairwise for structural similarity",
		ArgsUsage: "[path...]",
		Flags: []cli.Flag{
			&cli.Float64Flag{
				Name:  "threshold",
				Value: 70,
				Usage: "Similarity percentage at or above which a pair is flagged",
			},
			&cli.StringFlag{
				Name:  "algorithm",
				Value: config.AlgorithmAST,
				Usage: "Fingerprinting algorithm: ast or kgram",
			},
			&cli.BoolFlag{
				Name:  "flagged-only",
				Usage: "Show only flagged pairs",
			},
		},
		Action: runCheckCmd,
	}
}

func runCheckCmd(c *cli.Context) error {
	paths := getPaths(c)
	flaggedOnly := c.Bool("flagged-only")

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

	scan := scanner.NewScanner(cfg)
	var files []string
	for _, path := range paths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("invalid path %s: %w", path, err)
		}
		found, err := scan.ScanDir(absPath)
		if err != nil {
			return fmt.Errorf("failed to scan directory %s: %w", path, err)
		}
		files = append(files, found...)
	}

	if len(files) == 0 {
		color.Yellow("No source files found")
		return nil
	}
	if len(files) < 2 {
		color.Yellow("Need at least two source files to compare")
		return nil
	}

	analyzer := plagiarism.New(plagiarism.WithConfig(cfg.Detector))

	tracker := newTracker(c, "Fingerprinting files...", len(files))
	analysis, err := analyzer.AnalyzeProjectWithProgress(files, tracker.Tick)
	tracker.FinishSuccess()
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	formatter, err := output.NewFormatter(output.ParseFormat(c.String("format")), c.String("output"), cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if len(analysis.Pairs) == 0 {
		if formatter.Format() == output.FormatText {
			color.Yellow("No comparable file pairs")
		}
		return formatter.Output(analysis)
	}

	var rows [][]string
	for _, pair := range analysis.Pairs {
		if flaggedOnly && !pair.Flagged {
			continue
		}

		simStr := fmt.Sprintf("%.1f%%", pair.Similarity)
		if formatter.Colored() {
			simStr = output.ScoreColor(pair.Similarity, analysis.Threshold, simStr)
		}
		flagStr := ""
		if pair.Flagged {
			flagStr = "FLAGGED"
			if formatter.Colored() {
				flagStr = color.RedString(flagStr)
			}
		}

		rows = append(rows, []string{
			pair.FileA,
			pair.FileB,
			simStr,
			fmt.Sprintf("%d/%d", pair.SharedHashes, pair.UnionHashes),
			flagStr,
		})
	}

	table := output.NewTable(
		fmt.Sprintf("Structural Similarity (threshold %.0f%%)", analysis.Threshold),
		[]string{"File A", "File B", "Similarity", "Shared/Union", ""},
		rows,
		[]string{
			fmt.Sprintf("Files: %d", analysis.Summary.FilesAnalyzed),
			fmt.Sprintf("Pairs: %d", analysis.Summary.PairsCompared),
			fmt.Sprintf("Flagged: %d", analysis.Summary.FlaggedPairs),
			fmt.Sprintf("Avg: %.1f%%", analysis.Summary.AvgSimilarity),
			fmt.Sprintf("Max: %.1f%%", analysis.Summary.MaxSimilarity),
		},
		analysis,
	)

	if err := formatter.Output(table); err != nil {
		return err
	}

	if len(analysis.Skipped) > 0 && formatter.Format() == output.FormatText {
		fmt.Println()
		color.Yellow("Skipped (%d):", len(analysis.Skipped))
		for _, s := range analysis.Skipped {
			fmt.Printf("  - %s: %s\n", s.File, s.Reason)
		}
	}

	return nil
}

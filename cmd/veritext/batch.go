package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"veritext/internal/config"
	"veritext/internal/detect"
	"veritext/internal/pipeline"
)

func batchCommand() *cli.Command {
	return &cli.Command{
		Name:  "batch",
		Usage: "score every document listed in a YAML manifest",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "manifest", Required: true, Usage: "path to the batch manifest"},
			&cli.IntFlag{Name: "workers", Usage: "worker count override (defaults to the manifest, then NumCPU)"},
			&cli.StringFlag{Name: "out", Usage: "output directory override"},
			&cli.BoolFlag{Name: "quiet", Usage: "suppress log output"},
		},
		Action: batchAction,
	}
}

func batchAction(c *cli.Context) error {
	logger := newLogger(c.Bool("quiet"))

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	m, err := pipeline.LoadManifest(c.String("manifest"))
	if err != nil {
		return err
	}

	workers := m.Workers
	if c.Int("workers") > 0 {
		workers = c.Int("workers")
	}
	outDir := m.OutputDir
	if c.String("out") != "" {
		outDir = c.String("out")
	}
	if outDir == "" {
		outDir = "analyses"
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	logger.Info("starting batch", "documents", len(m.Documents), "workers", workers, "out", outDir)

	results, failures := pipeline.AnalyzeDocuments(c.Context, m.Paths(), workers, cfg.Detector, detect.SystemSource())
	for _, err := range failures {
		logger.Error("document failed", "error", err)
	}

	for _, res := range results {
		name := strings.TrimSuffix(filepath.Base(res.Path), filepath.Ext(res.Path)) + ".json"
		outPath := filepath.Join(outDir, name)
		data, err := json.MarshalIndent(res.Report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal %s: %w", res.Path, err)
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		logger.Info("analyzed", "document", res.Path,
			"aiProbability", res.Report.AIProbability, "out", outPath)
	}

	logger.Info("batch finished", "succeeded", len(results), "failed", len(failures))
	if len(results) == 0 && len(failures) > 0 {
		return fmt.Errorf("all %d documents failed", len(failures))
	}
	return nil
}

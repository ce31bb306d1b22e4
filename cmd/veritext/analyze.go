package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"veritext/internal/config"
	"veritext/internal/detect"
	"veritext/internal/ingest"
)

// demoText is intentionally thick with filler so the scorer has
// something to flag when trying the tool out.
const demoText = "Our team spearheaded a transformative initiative and leveraged robust synergy across the organization. " +
	"We orchestrated a seamless rollout and utilized a dynamic, visionary framework. " +
	"The results demonstrated a pivotal paradigm shift. " +
	"Our meticulous approach fostered growth as we navigated every challenge."

func analyzeCommand() *cli.Command {
	return &cli.Command{
		Name:  "analyze",
		Usage: "score a document or raw text",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "text", Usage: "raw text to analyze"},
			&cli.StringFlag{Name: "file", Usage: "path to a document (.txt, .md, .html, .docx, .pdf)"},
			&cli.BoolFlag{Name: "demo", Usage: "analyze a built-in buzzword-heavy sample"},
			&cli.BoolFlag{Name: "json", Usage: "emit the full record as JSON"},
			&cli.BoolFlag{Name: "quiet", Usage: "suppress log output"},
		},
		Action: analyzeAction,
	}
}

func analyzeAction(c *cli.Context) error {
	logger := newLogger(c.Bool("quiet"))

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	text, source, err := resolveInput(c)
	if err != nil {
		return err
	}

	if cfg.Ingest.LanguageGuard {
		if info, ok := ingest.IdentifyLanguage(text); ok && !info.English {
			logger.Warn("non-English input; heuristics are calibrated for English",
				"language", info.Code, "confidence", info.Confidence)
		}
	}

	report, err := detect.Analyze(c.Context, text, cfg.Detector, detect.SystemSource())
	if err != nil {
		return err
	}

	if c.Bool("json") {
		return printJSON(report)
	}
	printReport(os.Stdout, source, report)
	return nil
}

func resolveInput(c *cli.Context) (text, source string, err error) {
	switch {
	case c.Bool("demo"):
		return demoText, "demo", nil
	case c.String("text") != "":
		return c.String("text"), "inline", nil
	case c.String("file") != "":
		doc, err := ingest.ParseFile(c.String("file"))
		if err != nil {
			return "", "", err
		}
		return doc.Text, c.String("file"), nil
	default:
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		if strings.TrimSpace(string(raw)) == "" {
			return "", "", fmt.Errorf("stdin: %w", ingest.ErrEmptyContent)
		}
		return string(raw), "stdin", nil
	}
}

func printReport(w io.Writer, source string, report detect.Report) {
	fmt.Fprintf(w, "Source: %s\n", source)
	fmt.Fprintf(w, "%s\n\n", report.VerdictHeadline)
	fmt.Fprintf(w, "AI probability:    %d%%\n", report.AIProbability)
	fmt.Fprintf(w, "Human probability: %d%%\n", report.HumanProbability)
	fmt.Fprintf(w, "Perplexity %d | Burstiness %d | Vocabulary %d | Variety %d\n",
		report.Linguistic.PerplexityScore,
		report.Linguistic.BurstinessScore,
		report.Linguistic.VocabularyRichnessScore,
		report.Linguistic.SentenceVariety)
	fmt.Fprintln(w, "\nFlags:")
	for _, flag := range report.Flags {
		fmt.Fprintf(w, "  - %s\n", flag)
	}
	fmt.Fprintln(w, "\nSuggestions:")
	for _, s := range report.Suggestions {
		fmt.Fprintf(w, "  - %s\n", s)
	}
	fmt.Fprintf(w, "\n%s\n", report.Summary)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

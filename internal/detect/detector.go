package detect

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

// Features holds the per-call linguistic statistics the scorer and the flag
// generator consume. Everything here is derived from the input text alone.
type Features struct {
	SentenceLengths        []int
	AverageSentenceLength  float64
	SentenceLengthVariance float64
	SentenceLengthStdDev   float64

	WordCount       int
	UniqueWordCount int
	TypeTokenRatio  float64

	BuzzwordCount   int
	BuzzwordDensity float64

	BurstinessScore         float64
	VocabularyRichnessScore float64
}

type LinguisticAnalysis struct {
	PerplexityScore         int `json:"perplexityScore"`
	BurstinessScore         int `json:"burstinessScore"`
	VocabularyRichnessScore int `json:"vocabularyRichnessScore"`
	SentenceVariety         int `json:"sentenceVariety"`
}

// Report is the analysis record handed to presentation layers. It is built
// once per call and never mutated afterwards.
type Report struct {
	AIGenerated      bool               `json:"isAiGenerated"`
	AIProbability    int                `json:"aiProbability"`
	HumanProbability int                `json:"humanProbability"`
	VerdictHeadline  string             `json:"verdictHeadline"`
	Summary          string             `json:"summary"`
	Linguistic       LinguisticAnalysis `json:"linguisticAnalysis"`
	Flags            []string           `json:"flags"`
	Suggestions      []string           `json:"suggestions"`
}

const (
	flagMonotonic       = "Monotonic sentence structure (Low Burstiness)"
	flagBuzzwordDensity = "High density of buzzwords (%d found)"
	flagRepetitive      = "Repetitive vocabulary usage"
	flagNoAnomalies     = "No significant AI anomalies detected"
)

const (
	headlineAI    = "Likely AI-Generated"
	headlineHuman = "Likely Human-Written"

	summaryAI    = "Several statistical patterns common in machine-generated text are present: uniform sentence structure, a narrow working vocabulary, or a reliance on stock corporate phrasing."
	summaryHuman = "The text shows the irregular sentence rhythm and varied word choice typical of human writing."
)

var aiSuggestions = []string{
	"Vary sentence length; mix short declaratives with longer, winding sentences.",
	"Swap generic buzzwords for concrete, specific wording.",
	"Add first-hand details or observations a model would not invent.",
	"Read the text aloud and rewrite any passage that sounds flat or mechanical.",
}

var humanSuggestions = []string{
	"No rewrite needed; the text reads as naturally written.",
	"Keep the sentence rhythm varied if the draft grows.",
	"Re-run the analysis after any heavy editing pass.",
}

var sentenceSplit = regexp.MustCompile(`[.!?]+`)
var wordFinder = regexp.MustCompile(`[a-z0-9_]+`)

// Analyze runs the full pipeline over text: segmentation, feature
// extraction, scoring with one bounded jitter draw, flag and suggestion
// selection, and assembly of the final record. A nil src falls back to the
// process-wide generator. The only possible error is context cancellation
// while the optional simulated delay is pending; degenerate content (empty,
// whitespace-only, punctuation-only) always yields a valid report.
func Analyze(ctx context.Context, text string, p Params, src Source) (Report, error) {
	if src == nil {
		src = SystemSource()
	}

	f := ExtractFeatures(text, p)

	aiScore := scoreFeatures(f, p, src)
	humanScore := 100 - aiScore

	perplexity := clampFloat(humanScore*p.PerplexityHumanWeight+src.Float64()*p.PerplexityJitter, 0, 100)
	variety := clampFloat(f.SentenceLengthVariance*p.VarietyScale, 0, 100)

	// Integer rounding happens only here, after every sub-score has been
	// computed from the unrounded values. The verdict cut is applied to the
	// rounded probability so isAiGenerated always agrees with the published
	// aiProbability.
	aiProb := roundPct(aiScore)
	humanProb := 100 - aiProb
	verdict := aiProb > p.ClassifyThreshold

	headline, summary, suggestions := verdictText(verdict)

	report := Report{
		AIGenerated:      verdict,
		AIProbability:    aiProb,
		HumanProbability: humanProb,
		VerdictHeadline:  headline,
		Summary:          summary,
		Linguistic: LinguisticAnalysis{
			PerplexityScore:         roundPct(perplexity),
			BurstinessScore:         roundPct(f.BurstinessScore),
			VocabularyRichnessScore: roundPct(f.VocabularyRichnessScore),
			SentenceVariety:         roundPct(variety),
		},
		Flags:       buildFlags(f, p),
		Suggestions: suggestions,
	}

	if p.SimulatedDelayMs > 0 {
		timer := time.NewTimer(time.Duration(p.SimulatedDelayMs) * time.Millisecond)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Report{}, ctx.Err()
		case <-timer.C:
		}
	}

	return report, nil
}

// ExtractFeatures computes the sentence and vocabulary statistics for text.
// Denominators are guarded to 1 so degenerate input produces zeros instead
// of NaNs.
func ExtractFeatures(text string, p Params) Features {
	sentences := splitSentences(text)
	words := tokenizeWords(text)

	lengths := make([]int, 0, len(sentences))
	total := 0
	for _, s := range sentences {
		n := len(strings.Fields(s))
		lengths = append(lengths, n)
		total += n
	}

	den := float64(maxInt(len(lengths), 1))
	avg := float64(total) / den
	variance := 0.0
	for _, n := range lengths {
		d := float64(n) - avg
		variance += d * d
	}
	variance /= den
	stdDev := math.Sqrt(variance)

	unique := make(map[string]struct{}, len(words))
	buzz := 0
	for _, w := range words {
		unique[w] = struct{}{}
		if _, ok := buzzwords[w]; ok {
			buzz++
		}
	}
	wordDen := float64(maxInt(len(words), 1))
	ttr := float64(len(unique)) / wordDen

	return Features{
		SentenceLengths:         lengths,
		AverageSentenceLength:   avg,
		SentenceLengthVariance:  variance,
		SentenceLengthStdDev:    stdDev,
		WordCount:               len(words),
		UniqueWordCount:         len(unique),
		TypeTokenRatio:          ttr,
		BuzzwordCount:           buzz,
		BuzzwordDensity:         float64(buzz) / wordDen,
		BurstinessScore:         clampFloat(stdDev*p.BurstinessScale, 0, 100),
		VocabularyRichnessScore: clampFloat(ttr*p.RichnessScale, 0, 100),
	}
}

// splitSentences cuts text at runs of sentence terminators and keeps the
// non-blank segments. When nothing survives (empty or punctuation-only
// input) the whole text counts as the single sentence, so the caller always
// sees at least one entry.
func splitSentences(text string) []string {
	parts := sentenceSplit.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			sentences = append(sentences, part)
		}
	}
	if len(sentences) == 0 {
		return []string{text}
	}
	return sentences
}

func tokenizeWords(text string) []string {
	return wordFinder.FindAllString(strings.ToLower(text), -1)
}

func scoreFeatures(f Features, p Params, src Source) float64 {
	score := p.ScoreBase
	score += (p.BurstinessPivot - f.SentenceLengthStdDev) * p.BurstinessWeight
	score += (p.RichnessPivot - f.TypeTokenRatio) * p.RichnessWeight
	score += f.BuzzwordDensity * p.BuzzwordWeight
	score += (src.Float64() - 0.5) * 2 * p.ScoreJitter
	return clampFloat(score, p.ScoreFloor, p.ScoreCeiling)
}

func buildFlags(f Features, p Params) []string {
	flags := make([]string, 0, 3)
	if f.SentenceLengthStdDev < p.LowBurstinessBar {
		flags = append(flags, flagMonotonic)
	}
	if f.BuzzwordCount > p.BuzzwordFlagFloor {
		flags = append(flags, fmt.Sprintf(flagBuzzwordDensity, f.BuzzwordCount))
	}
	if f.TypeTokenRatio < p.RepetitionBar {
		flags = append(flags, flagRepetitive)
	}
	if len(flags) == 0 {
		flags = append(flags, flagNoAnomalies)
	}
	return flags
}

func verdictText(ai bool) (headline, summary string, suggestions []string) {
	if ai {
		return headlineAI, summaryAI, append([]string(nil), aiSuggestions...)
	}
	return headlineHuman, summaryHuman, append([]string(nil), humanSuggestions...)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func roundPct(v float64) int {
	return int(math.Round(v))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

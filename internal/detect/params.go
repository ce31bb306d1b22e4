package detect

import (
	"os"
	"strconv"
	"strings"
)

// Calibration constants. These are hand-tuned values with no derivation from
// data; changing any of them changes every published score.
const (
	DefaultScoreBase        = 50.0
	DefaultBurstinessPivot  = 12.0
	DefaultBurstinessWeight = 3.0
	DefaultRichnessPivot    = 0.55
	DefaultRichnessWeight   = 60.0
	DefaultBuzzwordWeight   = 800.0
	DefaultScoreJitter      = 5.0
	DefaultScoreFloor       = 5.0
	DefaultScoreCeiling     = 98.0

	DefaultClassifyThreshold = 55

	DefaultBurstinessScale       = 8.0
	DefaultRichnessScale         = 160.0
	DefaultVarietyScale          = 2.0
	DefaultPerplexityHumanWeight = 0.8
	DefaultPerplexityJitter      = 20.0

	DefaultLowBurstinessBar  = 6.0
	DefaultBuzzwordFlagFloor = 2
	DefaultRepetitionBar     = 0.4
)

type Params struct {
	// Scoring formula.
	ScoreBase        float64
	BurstinessPivot  float64
	BurstinessWeight float64
	RichnessPivot    float64
	RichnessWeight   float64
	BuzzwordWeight   float64
	ScoreJitter      float64
	ScoreFloor       float64
	ScoreCeiling     float64

	// Verdict cut on the rounded probability.
	ClassifyThreshold int

	// Display sub-scores.
	BurstinessScale       float64
	RichnessScale         float64
	VarietyScale          float64
	PerplexityHumanWeight float64
	PerplexityJitter      float64

	// Flag thresholds.
	LowBurstinessBar  float64
	BuzzwordFlagFloor int
	RepetitionBar     float64

	// Optional pacing delay before a result becomes observable. Zero
	// disables it; when set, Analyze honors context cancellation while
	// waiting.
	SimulatedDelayMs int
}

func DefaultParams() Params {
	return Params{
		ScoreBase:             DefaultScoreBase,
		BurstinessPivot:       DefaultBurstinessPivot,
		BurstinessWeight:      DefaultBurstinessWeight,
		RichnessPivot:         DefaultRichnessPivot,
		RichnessWeight:        DefaultRichnessWeight,
		BuzzwordWeight:        DefaultBuzzwordWeight,
		ScoreJitter:           DefaultScoreJitter,
		ScoreFloor:            DefaultScoreFloor,
		ScoreCeiling:          DefaultScoreCeiling,
		ClassifyThreshold:     DefaultClassifyThreshold,
		BurstinessScale:       DefaultBurstinessScale,
		RichnessScale:         DefaultRichnessScale,
		VarietyScale:          DefaultVarietyScale,
		PerplexityHumanWeight: DefaultPerplexityHumanWeight,
		PerplexityJitter:      DefaultPerplexityJitter,
		LowBurstinessBar:      DefaultLowBurstinessBar,
		BuzzwordFlagFloor:     DefaultBuzzwordFlagFloor,
		RepetitionBar:         DefaultRepetitionBar,
	}
}

// ParamsFromEnv starts from the defaults and applies DETECT_* overrides.
func ParamsFromEnv() Params {
	return Params{
		ScoreBase:             getenvFloat("DETECT_SCORE_BASE", DefaultScoreBase),
		BurstinessPivot:       getenvFloat("DETECT_BURSTINESS_PIVOT", DefaultBurstinessPivot),
		BurstinessWeight:      getenvFloat("DETECT_BURSTINESS_WEIGHT", DefaultBurstinessWeight),
		RichnessPivot:         getenvFloat("DETECT_RICHNESS_PIVOT", DefaultRichnessPivot),
		RichnessWeight:        getenvFloat("DETECT_RICHNESS_WEIGHT", DefaultRichnessWeight),
		BuzzwordWeight:        getenvFloat("DETECT_BUZZWORD_WEIGHT", DefaultBuzzwordWeight),
		ScoreJitter:           getenvFloat("DETECT_SCORE_JITTER", DefaultScoreJitter),
		ScoreFloor:            getenvFloat("DETECT_SCORE_FLOOR", DefaultScoreFloor),
		ScoreCeiling:          getenvFloat("DETECT_SCORE_CEILING", DefaultScoreCeiling),
		ClassifyThreshold:     getenvInt("DETECT_CLASSIFY_THRESHOLD", DefaultClassifyThreshold),
		BurstinessScale:       getenvFloat("DETECT_BURSTINESS_SCALE", DefaultBurstinessScale),
		RichnessScale:         getenvFloat("DETECT_RICHNESS_SCALE", DefaultRichnessScale),
		VarietyScale:          getenvFloat("DETECT_VARIETY_SCALE", DefaultVarietyScale),
		PerplexityHumanWeight: getenvFloat("DETECT_PERPLEXITY_HUMAN_WEIGHT", DefaultPerplexityHumanWeight),
		PerplexityJitter:      getenvFloat("DETECT_PERPLEXITY_JITTER", DefaultPerplexityJitter),
		LowBurstinessBar:      getenvFloat("DETECT_LOW_BURSTINESS_BAR", DefaultLowBurstinessBar),
		BuzzwordFlagFloor:     getenvInt("DETECT_BUZZWORD_FLAG_FLOOR", DefaultBuzzwordFlagFloor),
		RepetitionBar:         getenvFloat("DETECT_REPETITION_BAR", DefaultRepetitionBar),
		SimulatedDelayMs:      getenvInt("DETECT_SIMULATED_DELAY_MS", 0),
	}
}

func getenvInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func getenvFloat(name string, fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}

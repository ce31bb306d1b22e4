package ingest

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// The scoring heuristics downstream are calibrated for English. The guard
// answers one question per document: does this look like English text? A
// small candidate set keeps the detector cheap to build and hold.
var guardLanguages = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
}

const languageMinWords = 5

var (
	langOnce     sync.Once
	langDetector lingua.LanguageDetector
)

func detector() lingua.LanguageDetector {
	langOnce.Do(func() {
		langDetector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(guardLanguages...).
			Build()
	})
	return langDetector
}

type LanguageInfo struct {
	Code       string
	English    bool
	Confidence float64
}

// IdentifyLanguage reports the most likely language of text as a lowercase
// ISO 639-1 code. Inputs under a few words are skipped; the detector is not
// reliable there.
func IdentifyLanguage(text string) (LanguageInfo, bool) {
	if len(strings.Fields(text)) < languageMinWords {
		return LanguageInfo{}, false
	}
	lang, ok := detector().DetectLanguageOf(text)
	if !ok {
		return LanguageInfo{}, false
	}
	return LanguageInfo{
		Code:       strings.ToLower(lang.IsoCode639_1().String()),
		English:    lang == lingua.English,
		Confidence: detector().ComputeLanguageConfidence(text, lang),
	}, true
}

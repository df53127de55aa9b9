package langdetect

import (
	"strings"
	"sync"
	"unicode"

	lingua "github.com/pemistahl/lingua-go"
)

// minLetters is the shortest sample worth running through the detector.
const minLetters = 6

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// Result is one best-effort detection.
type Result struct {
	Language   string  `json:"language"`
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// DetectISO6391 returns the two-letter code of the most likely language of
// text, or "" when the sample is too short or ambiguous.
func DetectISO6391(text string) string {
	result, ok := Detect(text)
	if !ok {
		return ""
	}
	return result.Language
}

// Detect runs the local detector. It never calls a translation provider.
func Detect(text string) (Result, bool) {
	sample := strings.TrimSpace(text)
	if countLetters(sample) < minLetters {
		return Result{}, false
	}

	d := getDetector()
	language, exists := d.DetectLanguageOf(sample)
	if !exists {
		return Result{}, false
	}

	code := strings.ToLower(language.IsoCode639_1().String())
	if len(code) != 2 {
		return Result{}, false
	}
	return Result{
		Language:   code,
		Name:       language.String(),
		Confidence: d.ComputeLanguageConfidence(sample, language),
	}, true
}

func countLetters(sample string) int {
	count := 0
	for _, r := range sample {
		if unicode.IsLetter(r) {
			count++
		}
	}
	return count
}

func getDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			WithLowAccuracyMode().
			Build()
	})
	return detector
}

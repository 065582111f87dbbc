package models

// Language is a supported language tag. Only English and Kiswahili are
// modeled; unrecognized text falls back to English at low confidence.
type Language string

const (
	LanguageEnglish   Language = "en"
	LanguageKiswahili Language = "sw"
)

// IsValid reports whether l is one of the two supported tags.
func (l Language) IsValid() bool {
	return l == LanguageEnglish || l == LanguageKiswahili
}

// DetectionResult is the output of scalar language detection.
type DetectionResult struct {
	Language   Language `json:"language"`
	Confidence float64  `json:"confidence"`
}

// CodeSwitchSegment is one run of same-language sentences inside an
// utterance. Start and End are character offsets into the original text;
// they are best-effort estimates since sentence splitting discards the
// delimiter characters.
type CodeSwitchSegment struct {
	Text     string   `json:"text"`
	Language Language `json:"language"`
	Start    int      `json:"start"`
	End      int      `json:"end"`
}

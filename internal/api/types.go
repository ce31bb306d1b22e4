package api

import "veritext/internal/detect"

type AnalyzeRequest struct {
	Text string `json:"text"`
}

// DocumentMeta labels where the analyzed text came from. The language
// fields are only set when the language guard is enabled and confident.
type DocumentMeta struct {
	Source             string  `json:"source"`
	Characters         int     `json:"characters"`
	Words              int     `json:"words"`
	Language           string  `json:"language,omitempty"`
	LanguageConfidence float64 `json:"languageConfidence,omitempty"`
	LanguageWarning    string  `json:"languageWarning,omitempty"`
}

// AnalyzeResponse wraps the analysis record verbatim; consumers read
// Analysis exactly as the core produced it.
type AnalyzeResponse struct {
	RequestID string        `json:"requestId"`
	Document  DocumentMeta  `json:"document"`
	Analysis  detect.Report `json:"analysis"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

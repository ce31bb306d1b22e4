package offline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"veritext/internal/api"
	"veritext/internal/config"
	"veritext/internal/detect"
	"veritext/internal/ingest"
)

type failTransport struct{}

func (f failTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("network disabled for offline test")
}

func TestOfflineMode(t *testing.T) {
	original := http.DefaultTransport
	http.DefaultTransport = failTransport{}
	t.Cleanup(func() { http.DefaultTransport = original })

	dir := t.TempDir()
	path := filepath.Join(dir, "essay.txt")
	text := strings.Repeat("This is a sentence. ", 40)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	doc, err := ingest.ParseFile(path)
	if err != nil {
		t.Fatalf("expected parsing to work offline: %v", err)
	}

	html := "<html><head><title>Essay</title></head><body><article><p>" + text + "</p></article></body></html>"
	htmlDoc, err := ingest.ParseReader(strings.NewReader(html), "essay.html")
	if err != nil {
		t.Fatalf("expected HTML extraction to work offline: %v", err)
	}
	if htmlDoc.Text == "" {
		t.Fatal("expected extracted HTML text")
	}

	report, err := detect.Analyze(context.Background(), doc.Text, detect.DefaultParams(), detect.Midpoint())
	if err != nil {
		t.Fatalf("expected analysis to work offline: %v", err)
	}
	if report.AIProbability+report.HumanProbability != 100 {
		t.Fatalf("probabilities %d + %d do not sum to 100", report.AIProbability, report.HumanProbability)
	}

	cfg := &config.Config{
		App:      config.AppConfig{Env: config.Development, LogLevel: "error"},
		Ingest:   config.IngestConfig{MaxUploadBytes: 1 << 20},
		Detector: detect.DefaultParams(),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := api.NewRouter(api.NewHandler(cfg, logger, detect.Midpoint()), logger)

	body, _ := json.Marshal(map[string]string{"text": text})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected the API to answer offline, got %d: %s", rec.Code, rec.Body.String())
	}
}

package ingest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/ledongthuc/pdf"
)

// ErrEmptyContent marks extraction that produced no usable text. Callers
// surface it before the analysis core ever runs.
var ErrEmptyContent = errors.New("empty content")

var ErrUnsupportedType = errors.New("unsupported file type")

// Document is the decoded text handed to the analysis core, plus enough
// provenance for presentation layers to label the result.
type Document struct {
	Title      string
	SourcePath string
	Text       string
}

func ParseFile(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return parseBytes(raw, path)
}

// ParseReader extracts text from an already-open stream, dispatching on the
// extension of name. Used for uploads, where no file path exists.
func ParseReader(r io.Reader, name string) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	return parseBytes(raw, name)
}

func parseBytes(raw []byte, name string) (*Document, error) {
	ext := strings.ToLower(filepath.Ext(name))

	var text string
	var err error
	switch ext {
	case ".txt", ".md", ".markdown":
		text = string(raw)
	case ".docx":
		text, err = parseDOCX(raw)
	case ".pdf":
		text, err = parsePDF(raw)
	case ".html", ".htm":
		text, err = parseHTML(raw)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}
	if err != nil {
		return nil, err
	}

	normalized := normalizeWhitespace(text)
	if normalized == "" {
		return nil, fmt.Errorf("%s: %w", filepath.Base(name), ErrEmptyContent)
	}

	title := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	return &Document{
		Title:      title,
		SourcePath: name,
		Text:       normalized,
	}, nil
}

func parseDOCX(raw []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("open docx zip: %w", err)
	}

	var xmlData []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, openErr := f.Open()
			if openErr != nil {
				return "", fmt.Errorf("open document.xml: %w", openErr)
			}
			defer rc.Close()
			xmlData, err = io.ReadAll(rc)
			if err != nil {
				return "", fmt.Errorf("read document.xml: %w", err)
			}
			break
		}
	}
	if len(xmlData) == 0 {
		return "", fmt.Errorf("word/document.xml not found")
	}

	decoder := xml.NewDecoder(bytes.NewReader(xmlData))
	var b strings.Builder
	inText := false
	for {
		tok, tokenErr := decoder.Token()
		if tokenErr == io.EOF {
			break
		}
		if tokenErr != nil {
			return "", fmt.Errorf("decode document.xml: %w", tokenErr)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
			if t.Name.Local == "p" {
				if b.Len() > 0 {
					b.WriteString("\n")
				}
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inText = false
			}
		case xml.CharData:
			if inText {
				b.WriteString(string(t))
			}
		}
	}
	return b.String(), nil
}

func parsePDF(raw []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var b strings.Builder
	total := r.NumPage()
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		content, pageErr := p.GetPlainText(nil)
		if pageErr != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no extractable text found in pdf")
	}
	return b.String(), nil
}

// parseHTML prefers the readability article view and falls back to a plain
// body scrape when no article can be distilled.
func parseHTML(raw []byte) (string, error) {
	parser := readability.NewParser()
	pageURL := &url.URL{Scheme: "file", Path: "/document.html"}
	article, err := parser.Parse(bytes.NewReader(raw), pageURL)
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		return article.TextContent, nil
	}

	doc, qErr := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if qErr != nil {
		return "", fmt.Errorf("parse html: %w", qErr)
	}
	doc.Find("script,style,noscript").Remove()
	text := doc.Find("body").Text()
	if strings.TrimSpace(text) == "" {
		text = doc.Text()
	}
	return text, nil
}

func normalizeWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.Join(strings.Fields(line), " ")
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

package resume

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"go.uber.org/zap"
)

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrEmptyDocument       = errors.New("no text could be extracted from document")
)

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)
)

// DocumentReader turns uploaded files into plain text for Extract.
type DocumentReader struct {
	logger *zap.Logger
	ocr    bool
}

func NewDocumentReader(logger *zap.Logger, ocr bool) *DocumentReader {
	return &DocumentReader{logger: logger, ocr: ocr}
}

// SupportedExtensions lists the file extensions ReadText accepts.
func SupportedExtensions() []string {
	return []string{".pdf", ".txt", ".docx"}
}

// ReadText returns the text content of an uploaded file, picking a decoder by
// file extension.
func (r *DocumentReader) ReadText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var (
		text string
		err  error
	)
	switch ext {
	case ".txt":
		text, err = readPlainText(data)
	case ".pdf":
		text, err = r.readPDF(data)
	case ".docx":
		text, err = readDocx(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFileType, ext)
	}
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyDocument
	}
	r.logger.Debug("document text extracted",
		zap.String("file", filename),
		zap.Int("chars", utf8.RuneCountInString(text)),
	)
	return text, nil
}

func readPlainText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return strings.ToValidUTF8(string(data), " "), nil
	}
	return string(data), nil
}

// readPDF tries the embedded text layer first, then a second parser, and
// finally OCR for scanned documents.
func (r *DocumentReader) readPDF(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		r.logger.Warn("fitz could not open pdf, falling back", zap.Error(err))
		return readPDFPlain(data)
	}
	defer doc.Close()

	var sb strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			r.logger.Warn("fitz text extraction failed", zap.Int("page", n+1), zap.Error(err))
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	if text := strings.TrimSpace(sb.String()); text != "" {
		return text, nil
	}

	if text, err := readPDFPlain(data); err == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}

	if !r.ocr {
		return "", ErrEmptyDocument
	}
	r.logger.Info("pdf has no text layer, running OCR", zap.Int("pages", doc.NumPage()))
	return r.ocrDocument(doc)
}

func readPDFPlain(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func readDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return docxToText(doc.Editable().GetContent()), nil
}

// docxToText strips WordprocessingML markup, keeping one line per paragraph.
func docxToText(content string) string {
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = xmlTag.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}

package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedFile is returned for extensions other than .txt and .pdf
var ErrUnsupportedFile = errors.New("unsupported file type")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// SupportedExtensions lists the accepted upload extensions
var SupportedExtensions = []string{".txt", ".pdf"}

// IsSupported reports whether filename has an accepted extension
func IsSupported(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, s := range SupportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// ExtractText returns the text content of a .txt or .pdf file
func ExtractText(filename string, r io.ReaderAt, size int64) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return readText(r, size)
	case ".pdf":
		return readPDF(r, size)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFile, filepath.Ext(filename))
	}
}

func readText(r io.ReaderAt, size int64) (string, error) {
	data, err := io.ReadAll(io.NewSectionReader(r, 0, size))
	if err != nil {
		return "", fmt.Errorf("read text file: %w", err)
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", fmt.Errorf("text file is not valid UTF-8")
	}
	return string(data), nil
}

func readPDF(r io.ReaderAt, size int64) (text string, err error) {
	// the pdf reader panics on some malformed inputs
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("read pdf: malformed document: %v", p)
		}
	}()

	doc, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	plain, err := doc.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return buf.String(), nil
}

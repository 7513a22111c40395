package extraction

import (
	"fmt"
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/heartmarshall/fairway-backend/internal/domain"
)

// Media types the generator accepts.
const (
	MediaPDF      = "application/pdf"
	MediaPNG      = "image/png"
	MediaJPEG     = "image/jpeg"
	MediaGIF      = "image/gif"
	MediaWEBP     = "image/webp"
	MediaText     = "text/plain"
	MediaCSV      = "text/csv"
	MediaMarkdown = "text/markdown"
)

var supportedMedia = map[string]bool{
	MediaPDF: true, MediaPNG: true, MediaJPEG: true, MediaGIF: true, MediaWEBP: true,
	MediaText: true, MediaCSV: true, MediaMarkdown: true,
}

// IsImage reports whether mediaType is one of the supported image types.
func IsImage(mediaType string) bool {
	switch mediaType {
	case MediaPNG, MediaJPEG, MediaGIF, MediaWEBP:
		return true
	}
	return false
}

func isTextual(mediaType string) bool {
	return strings.HasPrefix(mediaType, "text/")
}

// Document is one input to extraction: binary content with a media type,
// or plain text. An empty MediaType is sniffed from Bytes.
type Document struct {
	Name      string
	Bytes     []byte
	MediaType string
	Text      string
}

// Part is a validated document as handed to a Generator. Textual inputs
// carry Text; binary inputs carry Data with a supported MediaType.
type Part struct {
	Name      string
	MediaType string
	Data      []byte
	Text      string
}

func (p Part) size() int64 {
	if p.Text != "" {
		return int64(len(p.Text))
	}
	return int64(len(p.Data))
}

// cleanMediaType strips parameters and lowercases a declared media type.
func cleanMediaType(mt string) string {
	mt = strings.TrimSpace(mt)
	if mt == "" {
		return ""
	}
	if parsed, _, err := mime.ParseMediaType(mt); err == nil {
		return parsed
	}
	return strings.ToLower(mt)
}

// prepare validates documents and resolves their media types. It performs
// no I/O beyond content sniffing.
func prepare(docs []Document, maxPayload int64) ([]Part, error) {
	if len(docs) == 0 {
		return nil, domain.NewExtractionError(domain.CategoryUnsupportedFormat,
			fmt.Errorf("no documents to extract"))
	}

	parts := make([]Part, 0, len(docs))
	var total int64
	for i, d := range docs {
		name := d.Name
		if name == "" {
			name = fmt.Sprintf("document %d", i+1)
		}

		var p Part
		switch {
		case len(d.Bytes) == 0 && strings.TrimSpace(d.Text) != "":
			p = Part{Name: name, MediaType: MediaText, Text: d.Text}
		case len(d.Bytes) == 0:
			return nil, domain.NewExtractionError(domain.CategoryUnsupportedFormat,
				fmt.Errorf("%s is empty", name))
		default:
			mt := cleanMediaType(d.MediaType)
			if mt == "" || mt == "application/octet-stream" {
				mt = cleanMediaType(mimetype.Detect(d.Bytes).String())
			}
			if !supportedMedia[mt] {
				return nil, domain.NewExtractionError(domain.CategoryUnsupportedFormat,
					fmt.Errorf("%s has unsupported media type %q", name, mt))
			}
			if isTextual(mt) {
				p = Part{Name: name, MediaType: mt, Text: string(d.Bytes)}
			} else {
				p = Part{Name: name, MediaType: mt, Data: d.Bytes}
			}
		}

		total += p.size()
		parts = append(parts, p)
	}

	if maxPayload > 0 && total > maxPayload {
		return nil, domain.NewExtractionError(domain.CategorySizeExceeded,
			fmt.Errorf("payload of %d bytes exceeds the %d byte limit", total, maxPayload))
	}

	return parts, nil
}

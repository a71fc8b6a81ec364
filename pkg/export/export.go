// Package export converts a document to final HTML using the goldmark
// library.
//
// This is a one-way publishing path, separate from the live styling surface:
// the surface is a lossless lexical view that round-trips to raw text, while
// an export is a rendered artifact for browsers and has no extraction step.
package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Flavor identifies the markdown flavor used for export.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Exporter converts markdown documents to HTML.
type Exporter struct {
	flavor string
	md     goldmark.Markdown
}

// New creates an exporter for the given flavor. Supported flavors are
// "commonmark" and "gfm"; anything else defaults to "gfm", which matches the
// alert/task/table syntax the live surface styles.
func New(flavor string) *Exporter {
	f := flavorOrDefault(flavor)
	return &Exporter{flavor: f, md: newGoldmarkInstance(f)}
}

// Flavor returns the configured markdown flavor.
func (e *Exporter) Flavor() string {
	return e.flavor
}

// Export converts raw markdown to an HTML fragment.
func (e *Exporter) Export(ctx context.Context, content []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("export cancelled: %w", err)
	}

	var buf bytes.Buffer
	if err := e.md.Convert(content, &buf); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportDocument wraps the fragment in a minimal standalone HTML page.
func (e *Exporter) ExportDocument(ctx context.Context, title string, content []byte) ([]byte, error) {
	body, err := e.Export(ctx, content)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&buf, "<title>%s</title>\n", htmlEscapeTitle(title))
	buf.WriteString("</head>\n<body>\n")
	buf.Write(body)
	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes(), nil
}

func htmlEscapeTitle(title string) string {
	var buf bytes.Buffer
	for _, r := range title {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorGFM
	}
}

func newGoldmarkInstance(flavor string) goldmark.Markdown {
	opts := []goldmark.Option{
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	}
	if flavor == FlavorGFM {
		opts = append(opts, goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			extension.DefinitionList,
		))
	}
	return goldmark.New(opts...)
}

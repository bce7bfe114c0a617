// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package markdown renders article sources to HTML and reduces HTML to
// plain text for indexing.
package markdown

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// HighlightStyle is the chroma style whose class names fenced code uses.
const HighlightStyle = "monokai"

// codeClass limits class attributes kept on code markup to chroma and
// language names.
var codeClass = regexp.MustCompile(`^[a-zA-Z0-9 _-]+$`)

// Renderer converts markdown to sanitized HTML. Safe for concurrent use.
type Renderer struct {
	engine    goldmark.Markdown
	sanitizer *bluemonday.Policy
	stripper  *bluemonday.Policy
}

// NewRenderer builds a GFM renderer whose output is passed through a UGC
// sanitizer, so raw HTML in article sources cannot inject scripts.
//
// Fenced code is highlighted with CSS classes rather than inline styles,
// so the sanitizer only has to let class names through.
func NewRenderer() *Renderer {
	sanitizer := bluemonday.UGCPolicy()
	sanitizer.AllowAttrs("class").Matching(codeClass).OnElements("pre", "code", "span")

	return &Renderer{
		engine: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle(HighlightStyle),
					highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
				),
			),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		sanitizer: sanitizer,
		stripper:  bluemonday.StrictPolicy(),
	}
}

// ToHTML converts markdown source into sanitized HTML.
func (r *Renderer) ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := r.engine.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("markdown: convert: %w", err)
	}
	return r.sanitizer.Sanitize(buf.String()), nil
}

// HTMLToText strips every tag and collapses whitespace.
func (r *Renderer) HTMLToText(document string) string {
	stripped := html.UnescapeString(r.stripper.Sanitize(document))
	return strings.Join(strings.Fields(stripped), " ")
}

// ToText renders markdown and reduces it to plain text.
func (r *Renderer) ToText(source string) (string, error) {
	rendered, err := r.ToHTML(source)
	if err != nil {
		return "", err
	}
	return r.HTMLToText(rendered), nil
}

// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkwell/internal/platform/markdown"
)

func TestToHTML(t *testing.T) {
	renderer := markdown.NewRenderer()

	out, err := renderer.ToHTML("# Hello\n\nSome **bold** text.")
	require.NoError(t, err)
	assert.Contains(t, out, "Hello</h1>")
	assert.Contains(t, out, "<strong>bold</strong>")
}

func TestToHTML_StripsScripts(t *testing.T) {
	renderer := markdown.NewRenderer()

	out, err := renderer.ToHTML("hi <script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
}

func TestToText(t *testing.T) {
	renderer := markdown.NewRenderer()

	out, err := renderer.ToText("# Title\n\nFish & *chips*\n\n- one\n- two")
	require.NoError(t, err)
	assert.Equal(t, "Title Fish & chips one two", out)
}

func TestToHTML_HighlightsFencedCode(t *testing.T) {
	renderer := markdown.NewRenderer()

	out, err := renderer.ToHTML("```go\nfunc main() {}\n```")
	require.NoError(t, err)
	assert.Contains(t, out, `class="chroma"`)
	assert.NotContains(t, out, "style=")

	text, err := renderer.ToText("```go\nfunc main() {}\n```")
	require.NoError(t, err)
	assert.Equal(t, "func main() {}", text)
}

// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/inkwell/internal/core/article"
)

func TestFormatTags(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a, ,b,,a", "a,b"},
		{"", ""},
		{" , ,", ""},
		{"go,  Go , go", "go,Go"},
		{"  single  ", "single"},
		{"café,café", "café"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := article.FormatTags(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, article.FormatTags(got), "formatting must be idempotent")
		})
	}
}

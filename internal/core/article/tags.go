// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// FormatTags canonicalizes free-text tags: split on commas, trim, NFC
// normalize, drop empties, keep the first of duplicates, join with ",".
// FormatTags(FormatTags(s)) == FormatTags(s).
func FormatTags(raw string) string {
	parts := strings.Split(raw, ",")
	seen := make(map[string]struct{}, len(parts))
	tags := make([]string, 0, len(parts))

	for _, part := range parts {
		tag := norm.NFC.String(strings.TrimSpace(part))
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	return strings.Join(tags, ",")
}

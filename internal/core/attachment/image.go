// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package attachment

import (
	"bytes"
	"image"
	// Registered decoders for probing.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
)

var mimeByFormat = map[string]string{
	"png":  "image/png",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"webp": "image/webp",
}

// probed is what header inspection learns about an upload.
type probed struct {
	format string
	mime   string
	width  int
	height int
}

// probeImage reads only the image header.
func probeImage(data []byte) (probed, error) {
	if len(data) == 0 {
		return probed{}, apperr.InvalidParam(FieldImage, "Image is empty")
	}
	if len(data) > MaxSize {
		return probed{}, apperr.InvalidParam(FieldImage, "Image is too large")
	}

	config, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return probed{}, apperr.InvalidParam(FieldImage, "Image type not supported")
	}

	mime, ok := mimeByFormat[format]
	if !ok {
		return probed{}, apperr.InvalidParam(FieldImage, "Image type not supported")
	}

	if config.Width == 0 || config.Height == 0 {
		return probed{}, apperr.InvalidParam(FieldImage, "Image has zero size")
	}

	return probed{format: format, mime: mime, width: config.Width, height: config.Height}, nil
}

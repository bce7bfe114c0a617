// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewS3_DisabledWithoutSettings(t *testing.T) {
	client, err := NewS3(Options{Endpoint: "http://minio:9000"})
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestS3_URL(t *testing.T) {
	client, err := NewS3(Options{
		Endpoint: "http://minio:9000/", Region: "auto", Bucket: "media",
		AccessKey: "a", SecretKey: "b",
	})
	require.NoError(t, err)
	assert.Equal(t, "http://minio:9000/media/covers/x.png", client.URL("covers/x.png"))

	client.publicURL = "https://cdn.example.com"
	assert.Equal(t, "https://cdn.example.com/covers/x.png", client.URL("covers/x.png"))
}

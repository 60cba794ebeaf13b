package server_test

import (
	"testing"

	server "github.com/acearchive/files/server"
	assert "github.com/stretchr/testify/assert"
)

func TestPrefersHTML(t *testing.T) {
	tests := []struct {
		name          string
		accept        []string
		fileMediaType string
		expected      bool
	}{
		{
			name:          "browser navigation",
			accept:        []string{"text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8"},
			fileMediaType: "image/png",
			expected:      true,
		},
		{
			name:          "image request from an img tag",
			accept:        []string{"image/avif,image/webp,image/png,*/*;q=0.8"},
			fileMediaType: "image/png",
			expected:      false,
		},
		{
			name:          "no accept header",
			accept:        nil,
			fileMediaType: "image/png",
			expected:      false,
		},
		{
			name:          "wildcard only",
			accept:        []string{"*/*"},
			fileMediaType: "image/png",
			expected:      false,
		},
		{
			name:          "file type ranked above html",
			accept:        []string{"text/html;q=0.5, image/png"},
			fileMediaType: "image/png",
			expected:      false,
		},
		{
			name:          "html ranked above file type",
			accept:        []string{"image/png;q=0.5, text/html"},
			fileMediaType: "image/png",
			expected:      true,
		},
		{
			name:          "equal weight keeps header order",
			accept:        []string{"text/html, image/png"},
			fileMediaType: "image/png",
			expected:      true,
		},
		{
			name:          "html refused",
			accept:        []string{"text/html;q=0, image/png;q=0.1"},
			fileMediaType: "image/png",
			expected:      false,
		},
		{
			name:          "media type parameters are ignored",
			accept:        []string{"text/html"},
			fileMediaType: "audio/mpeg; codecs=mp3",
			expected:      true,
		},
		{
			name:          "values spread over several headers",
			accept:        []string{"video/mp4;q=0.2", "text/html;q=0.9"},
			fileMediaType: "video/mp4",
			expected:      true,
		},
		{
			name:          "malformed entries are skipped",
			accept:        []string{"text/html;q=abc, ;;, image/png"},
			fileMediaType: "image/png",
			expected:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, server.PrefersHTML(tt.accept, tt.fileMediaType))
		})
	}
}

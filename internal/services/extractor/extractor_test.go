package extractor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSupported(t *testing.T) {
	tests := []struct {
		ext  string
		want bool
	}{
		{".pdf", true},
		{".txt", true},
		{".jpg", true},
		{".png", true},
		{".PDF", true},
		{".TXT", true},
		{".docx", false},
		{".jpeg", false},
		{".gif", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSupported(tt.ext))
		})
	}
}

func TestExtractTextFile(t *testing.T) {
	service := NewService([]string{"eng"})

	path := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text content"), 0644))

	text, err := service.Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "plain text content", text)
}

func TestExtractMissingFile(t *testing.T) {
	service := NewService([]string{"eng"})

	_, err := service.Extract(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestExtractUnsupportedExtension(t *testing.T) {
	service := NewService([]string{"eng"})

	path := filepath.Join(t.TempDir(), "doc.docx")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0644))

	_, err := service.Extract(context.Background(), path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file extension")
}

func TestExtractCorruptPDF(t *testing.T) {
	service := NewService([]string{"eng"})

	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a real pdf"), 0644))

	_, err := service.Extract(context.Background(), path)
	assert.Error(t, err)
}

func TestExtractCancelledContext(t *testing.T) {
	service := NewService([]string{"eng"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.Extract(ctx, "anything.txt")
	assert.ErrorIs(t, err, context.Canceled)
}

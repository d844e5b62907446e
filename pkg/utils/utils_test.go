package utils

import (
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()

	id, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	assert.Len(t, id, 26)

	other, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}

func imageHeader(name, contentType string, size int64) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType)
	return &multipart.FileHeader{
		Filename: name,
		Header:   header,
		Size:     size,
	}
}

func TestValidateImageFile(t *testing.T) {
	u := New()

	tests := []struct {
		name    string
		file    *multipart.FileHeader
		wantErr error
	}{
		{
			name: "valid jpeg",
			file: imageHeader("photo.jpg", "image/jpeg", 1024),
		},
		{
			name: "valid webp",
			file: imageHeader("photo.webp", "image/webp", 1024),
		},
		{
			name:    "nil file",
			wantErr: ErrNoFileUploaded,
		},
		{
			name:    "too large",
			file:    imageHeader("photo.png", "image/png", 6*1024*1024),
			wantErr: ErrFileSizeExceedsLimit,
		},
		{
			name:    "wrong extension",
			file:    imageHeader("script.sh", "image/png", 1024),
			wantErr: ErrNotAnImage,
		},
		{
			name:    "wrong content type",
			file:    imageHeader("photo.png", "text/html", 1024),
			wantErr: ErrNotAnImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := u.ValidateImageFile(tt.file)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

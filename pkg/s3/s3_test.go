package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKey(t *testing.T) {
	tests := []struct {
		name    string
		fileUrl string
		want    string
	}{
		{
			name:    "full object url",
			fileUrl: "https://my-bucket.s3.ap-southeast-1.amazonaws.com/1700000000-cover.png",
			want:    "1700000000-cover.png",
		},
		{
			name:    "key with path segments",
			fileUrl: "https://my-bucket.s3.amazonaws.com/uploads/2024/cover.png",
			want:    "uploads/2024/cover.png",
		},
		{
			name:    "bare key passes through",
			fileUrl: "1700000000-cover.png",
			want:    "1700000000-cover.png",
		},
		{
			name:    "empty",
			fileUrl: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractKey(tt.fileUrl))
		})
	}
}

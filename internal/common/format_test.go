package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1 KB"},
		{2560, "2.5 KB"},
		{1048576, "1 MB"},
		{5 * 1024 * 1024, "5 MB"},
		{1536 * 1024, "1.5 MB"},
		{1073741824, "1 GB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFileSize(tt.bytes), "FormatFileSize(%d)", tt.bytes)
	}
}

func TestFormatFileSizeRoundsToTwoDecimals(t *testing.T) {
	// 1100 bytes = 1.07421875 KB -> "1.07 KB"
	assert.Equal(t, "1.07 KB", FormatFileSize(1100))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "60", FormatPercent(60))
	assert.Equal(t, "99.5", FormatPercent(99.5))
	assert.Equal(t, "0.25", FormatPercent(0.25))
	assert.Equal(t, "100", FormatPercent(100))
}

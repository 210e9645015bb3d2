package uploads

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deptltd/dept-portal/internal/common"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(t.TempDir(), 1024, []string{"jpg", "jpeg", "png", "gif", "svg", "ico"}, common.NewSilentLogger())
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"chart.png", "chart.png"},
		{"my chart.png", "my_chart.png"},
		{"my file@name.jpg", "my_file_name.jpg"},
		{"../../etc/passwd", ".._.._etc_passwd"},
		{"график.png", "______.png"},
		{"a/b\\c.png", "a_b_c.png"},
		{"UPPER-case_1.PNG", "UPPER-case_1.PNG"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFilename(tt.in), "SanitizeFilename(%q)", tt.in)
	}
}

func TestNewServiceNormalizesExtensions(t *testing.T) {
	svc := NewService(t.TempDir(), 1024, []string{".JPG", "Png"}, common.NewSilentLogger())
	assert.Equal(t, []string{"jpg", "png"}, svc.AllowedExtensions())
}

func TestStore(t *testing.T) {
	svc := newTestService(t)

	name, err := svc.Store("chart.png", 5, strings.NewReader("image"))
	require.NoError(t, err)
	assert.Equal(t, "chart.png", name)

	data, err := os.ReadFile(filepath.Join(svc.Dir(), "chart.png"))
	require.NoError(t, err)
	assert.Equal(t, "image", string(data))
}

func TestStoreSanitizesName(t *testing.T) {
	svc := newTestService(t)

	name, err := svc.Store("my chart (v2).png", 5, strings.NewReader("image"))
	require.NoError(t, err)
	assert.Equal(t, "my_chart__v2_.png", name)

	_, err = os.Stat(filepath.Join(svc.Dir(), name))
	assert.NoError(t, err)
}

func TestStoreRejectsUnsupportedType(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Store("notes.txt", 5, strings.NewReader("text"))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = svc.Store("no-extension", 5, strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	// Rejected before anything touches the directory.
	entries, readErr := os.ReadDir(svc.Dir())
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestStoreExtensionCaseInsensitive(t *testing.T) {
	svc := newTestService(t)

	name, err := svc.Store("CHART.PNG", 5, strings.NewReader("image"))
	require.NoError(t, err)
	assert.Equal(t, "CHART.PNG", name)
}

func TestStoreRejectsOversize(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Store("big.png", 2048, strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestStoreAtSizeLimit(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Store("exact.png", 1024, strings.NewReader("x"))
	assert.NoError(t, err, "a file exactly at the limit is accepted")
}

func TestStoreOverwritesOnCollision(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Store("chart.png", 3, strings.NewReader("old"))
	require.NoError(t, err)
	_, err = svc.Store("chart.png", 3, strings.NewReader("new"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(svc.Dir(), "chart.png"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	assert.Equal(t, []string{"chart.png"}, svc.ListImages())
}

func TestStoreCreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "images")
	svc := NewService(dir, 1024, []string{"png"}, common.NewSilentLogger())

	_, err := svc.Store("chart.png", 5, strings.NewReader("image"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "chart.png"))
	assert.NoError(t, err)
}

func TestListImages(t *testing.T) {
	svc := newTestService(t)

	// Missing directory degrades to empty.
	empty := NewService(filepath.Join(t.TempDir(), "missing"), 1024, []string{"png"}, common.NewSilentLogger())
	assert.Empty(t, empty.ListImages())

	_, err := svc.Store("b.png", 1, strings.NewReader("x"))
	require.NoError(t, err)
	_, err = svc.Store("a.jpg", 1, strings.NewReader("x"))
	require.NoError(t, err)

	// Files with disallowed extensions are not listed.
	require.NoError(t, os.WriteFile(filepath.Join(svc.Dir(), "notes.txt"), []byte("x"), 0o644))

	assert.Equal(t, []string{"a.jpg", "b.png"}, svc.ListImages())
}

func TestListFiles(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Store("chart.png", 5, strings.NewReader("image"))
	require.NoError(t, err)

	files := svc.ListFiles()
	require.Len(t, files, 1)
	assert.Equal(t, "chart.png", files[0].Name)
	assert.Equal(t, int64(5), files[0].Size)
	assert.False(t, files[0].ModTime.IsZero())
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Store("chart.png", 5, strings.NewReader("image"))
	require.NoError(t, err)

	assert.True(t, svc.Delete("chart.png"))
	assert.False(t, svc.Delete("chart.png"), "second delete finds nothing")
	assert.Empty(t, svc.ListImages())
}

func TestDeleteSanitizesName(t *testing.T) {
	svc := newTestService(t)

	outside := filepath.Join(filepath.Dir(svc.Dir()), "outside.png")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))

	assert.False(t, svc.Delete("../outside.png"))
	_, err := os.Stat(outside)
	assert.NoError(t, err, "file outside the directory is untouched")
}

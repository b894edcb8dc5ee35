package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDummyFont(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("ttf"), 0o644))
}

func TestResolveFontsFromDir(t *testing.T) {
	dir := t.TempDir()
	writeDummyFont(t, dir, "NanumGothic.ttf")
	writeDummyFont(t, dir, "NanumGothicBold.ttf")

	pair, err := ResolveFonts(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "NanumGothic.ttf"), pair.Regular)
	assert.Equal(t, filepath.Join(dir, "NanumGothicBold.ttf"), pair.Bold)
}

func TestResolveFontsMissingBold(t *testing.T) {
	dir := t.TempDir()
	writeDummyFont(t, dir, "NanumGothic.ttf")

	pair, err := ResolveFonts(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFontsUnavailable)
	assert.Equal(t, FontPair{}, pair)
}

func TestResolveFontsMissingDir(t *testing.T) {
	_, err := ResolveFonts(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, ErrFontsUnavailable)
}

func TestNewStylesFallback(t *testing.T) {
	s := NewStyles(FontPair{})
	assert.Equal(t, FamilyFallback, s.Title.Family)
	assert.Equal(t, FamilyFallback, s.Body.Family)
	assert.False(t, s.hasFonts)
}

func TestNewStylesWithFonts(t *testing.T) {
	s := NewStyles(FontPair{Regular: "a.ttf", Bold: "b.ttf"})
	assert.Equal(t, FamilyKR, s.Title.Family)
	assert.True(t, s.Title.Bold)
	assert.Equal(t, 18.0, s.Title.Size)
	assert.Equal(t, FamilyKR, s.Body.Family)
	assert.True(t, s.hasFonts)
}

func TestNewStylesPartialPairFallsBack(t *testing.T) {
	s := NewStyles(FontPair{Regular: "a.ttf"})
	assert.Equal(t, FamilyFallback, s.Body.Family)
	assert.False(t, s.hasFonts)
}

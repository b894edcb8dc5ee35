package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ErrFontsUnavailable reports that no Korean-capable font pair could be
// found on disk. Rendering still works; documents fall back to the
// built-in typeface, which cannot draw Hangul glyphs.
var ErrFontsUnavailable = errors.New("korean fonts unavailable")

const (
	// FamilyKR is the family name the embedded TTF pair is registered under.
	FamilyKR = "KR"
	// FamilyFallback is the built-in core font used when no TTF pair exists.
	FamilyFallback = "Helvetica"
)

// FontPair points at the regular/bold TTF files to embed. The zero value
// means "no fonts available, use the fallback family".
type FontPair struct {
	Regular string
	Bold    string
}

// ResolveFonts locates the regular/bold pair. With dir set it looks for
// the NanumGothic files there; otherwise it probes the fixed host-OS
// location (Windows ships Malgun Gothic, Linux images carry the Nanum
// package). Both files must exist or ErrFontsUnavailable is returned.
func ResolveFonts(dir string) (FontPair, error) {
	var pair FontPair
	switch {
	case dir != "":
		pair = FontPair{
			Regular: filepath.Join(dir, "NanumGothic.ttf"),
			Bold:    filepath.Join(dir, "NanumGothicBold.ttf"),
		}
	case runtime.GOOS == "windows":
		pair = FontPair{
			Regular: `c:/Windows/Fonts/malgun.ttf`,
			Bold:    `c:/Windows/Fonts/malgunbd.ttf`,
		}
	default:
		pair = FontPair{
			Regular: "/usr/share/fonts/truetype/nanum/NanumGothic.ttf",
			Bold:    "/usr/share/fonts/truetype/nanum/NanumGothicBold.ttf",
		}
	}

	for _, path := range []string{pair.Regular, pair.Bold} {
		if _, err := os.Stat(path); err != nil {
			return FontPair{}, fmt.Errorf("%w: %s", ErrFontsUnavailable, path)
		}
	}
	return pair, nil
}

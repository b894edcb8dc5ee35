package render

// Style is a named paragraph presentation rule: typeface, weight, size and
// horizontal alignment.
type Style struct {
	Family string
	Bold   bool
	Size   float64
	Align  string // "L", "C" or "R"
}

// Styles is the fixed catalog shared by every report builder. It is built
// once at startup, never mutated, and safe for unsynchronized concurrent
// reads.
type Styles struct {
	fonts    FontPair
	hasFonts bool

	Title         Style
	SectionHeader Style
	Body          Style
	BodyRight     Style
}

// NewStyles builds the catalog around the resolved font pair. A zero pair
// selects the built-in fallback family for every style.
func NewStyles(fonts FontPair) *Styles {
	hasFonts := fonts.Regular != "" && fonts.Bold != ""
	family := FamilyFallback
	if hasFonts {
		family = FamilyKR
	}
	return &Styles{
		fonts:    fonts,
		hasFonts: hasFonts,

		Title:         Style{Family: family, Bold: true, Size: 18, Align: "C"},
		SectionHeader: Style{Family: family, Bold: true, Size: 10, Align: "C"},
		Body:          Style{Family: family, Size: 9, Align: "L"},
		BodyRight:     Style{Family: family, Size: 9, Align: "R"},
	}
}

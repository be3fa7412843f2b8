package collapsible

// Disclosure indicator glyphs shown on the toggle button.
const (
	glyphExpanded  = "▼"
	glyphCollapsed = "▶"
)

// glyphFor returns the disclosure glyph for an expansion state:
// a down-pointing triangle when expanded, right-pointing when collapsed.
func glyphFor(expanded bool) string {
	if expanded {
		return glyphExpanded
	}
	return glyphCollapsed
}

// Package ui holds the layout shared by the panes.
package ui

const (
	// ScrollMargin is the number of rows kept visible above and below the
	// cursor.
	ScrollMargin = 3

	// BorderHeight is the vertical space of a panel border.
	BorderHeight = 2

	// HeaderHeight is a panel's title line plus its separator.
	HeaderHeight = 2

	// PanelOverhead is everything in a panel that is not a list row.
	PanelOverhead = BorderHeight + HeaderHeight

	// HeaderBarHeight is the screen tab line.
	HeaderBarHeight = 1

	// StatusBarHeight is the now-playing line.
	StatusBarHeight = 1

	// FooterHeight is the search line plus the key help line.
	FooterHeight = 2

	// ArtistColumnDivisor gives the artist panel 1/ArtistColumnDivisor of
	// the library width.
	ArtistColumnDivisor = 3

	// MinArtistWidth keeps the artist panel usable on narrow terminals.
	MinArtistWidth = 16
)

// PanelHeight returns the height of the list panels on a screen of the
// given height.
func PanelHeight(screenHeight int) int {
	return max(screenHeight-HeaderBarHeight-StatusBarHeight-FooterHeight, PanelOverhead+1)
}

// ListHeight returns the number of list rows on a screen of the given
// height.
func ListHeight(screenHeight int) int {
	return PanelHeight(screenHeight) - PanelOverhead
}

// ArtistWidth returns the outer width of the artist panel.
func ArtistWidth(width int) int {
	return min(max(width/ArtistColumnDivisor, MinArtistWidth), width)
}

package tui

// FocusZone identifies which panel currently has keyboard focus.
type FocusZone int

const (
	FocusGrid  FocusZone = iota
	FocusChips           // Selection panel
)

// PageLoadedMsg reports that a page change finished, successfully or not.
type PageLoadedMsg struct {
	Page int
	Err  error
}

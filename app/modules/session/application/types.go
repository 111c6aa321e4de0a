package sessionservice

// Phase is the controller state.
type Phase string

const (
	// PhaseSetup accepts roster and hole count changes.
	PhaseSetup Phase = "setup"
	// PhaseActive accepts strokes and navigation. There is no way back to setup.
	PhaseActive Phase = "active"
)

// ViewMode selects which view the presentation layer shows. It never affects scoring.
type ViewMode string

const (
	ViewQuickEntry    ViewMode = "quick-entry"
	ViewFullScorecard ViewMode = "full-scorecard"
)

// Valid reports whether m is a known view mode.
func (m ViewMode) Valid() bool {
	return m == ViewQuickEntry || m == ViewFullScorecard
}

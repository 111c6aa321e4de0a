package scorecardservice

import (
	"fmt"

	scorecarddomain "github.com/Black-And-White-Club/golphy/app/modules/scorecard/domain"
	"github.com/google/uuid"
)

// ------------------------
// Fake Snapshot
// ------------------------

// FakeSnapshot is a programmable Snapshot backed by plain maps.
type FakeSnapshot struct {
	trace []string

	players    []scorecarddomain.Player
	strokes    map[string]int
	totalHoles int
	par        scorecarddomain.ParTable
}

func NewFakeSnapshot(totalHoles int) *FakeSnapshot {
	return &FakeSnapshot{
		strokes:    map[string]int{},
		totalHoles: totalHoles,
		par:        scorecarddomain.DefaultPar,
	}
}

func (f *FakeSnapshot) record(step string) {
	f.trace = append(f.trace, step)
}

func key(id scorecarddomain.PlayerID, hole int) string {
	return fmt.Sprintf("%s/%d", id, hole)
}

// AddPlayer registers a player with a deterministic ID.
func (f *FakeSnapshot) AddPlayer(name string) scorecarddomain.Player {
	p := scorecarddomain.Player{
		ID:    scorecarddomain.PlayerID(uuid.NewSHA1(uuid.NameSpaceOID, []byte(name))),
		Seq:   len(f.players) + 1,
		Name:  name,
		Color: scorecarddomain.DefaultPalette[len(f.players)],
	}
	f.players = append(f.players, p)
	return p
}

// Set records strokes for a hole; zero clears it.
func (f *FakeSnapshot) Set(id scorecarddomain.PlayerID, hole, strokes int) {
	if strokes == 0 {
		delete(f.strokes, key(id, hole))
		return
	}
	f.strokes[key(id, hole)] = strokes
}

// --- Snapshot Interface Implementation ---

func (f *FakeSnapshot) Players() []scorecarddomain.Player {
	f.record("Players")
	out := make([]scorecarddomain.Player, len(f.players))
	copy(out, f.players)
	return out
}

func (f *FakeSnapshot) GetStroke(id scorecarddomain.PlayerID, hole int) (int, bool) {
	s, ok := f.strokes[key(id, hole)]
	return s, ok
}

func (f *FakeSnapshot) TotalHoles() int {
	return f.totalHoles
}

func (f *FakeSnapshot) ParTable() scorecarddomain.ParTable {
	return f.par
}

// --- Accessors for assertions ---

func (f *FakeSnapshot) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ Snapshot = (*FakeSnapshot)(nil)

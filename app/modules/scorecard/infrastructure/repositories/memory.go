package scorecarddb

import (
	"slices"

	scorecarddomain "github.com/Black-And-White-Club/golphy/app/modules/scorecard/domain"
	"github.com/google/uuid"
)

// IDGenerator produces player identifiers.
type IDGenerator func() (uuid.UUID, error)

const maxMintAttempts = 8

type strokeKey struct {
	player scorecarddomain.PlayerID
	hole   int
}

// MemoryRepository implements Repository in memory. It is not safe for concurrent use.
type MemoryRepository struct {
	palette scorecarddomain.Palette
	newID   IDGenerator

	players []scorecarddomain.Player
	issued  map[scorecarddomain.PlayerID]bool
	nextSeq int

	strokes map[strokeKey]int
	order   []strokeKey
}

// Option configures a MemoryRepository.
type Option func(*MemoryRepository)

// WithPalette overrides the color palette.
func WithPalette(p scorecarddomain.Palette) Option {
	return func(r *MemoryRepository) {
		r.palette = p
	}
}

// WithIDGenerator overrides how player IDs are minted.
func WithIDGenerator(gen IDGenerator) Option {
	return func(r *MemoryRepository) {
		if gen != nil {
			r.newID = gen
		}
	}
}

// NewMemoryRepository creates an empty repository.
func NewMemoryRepository(opts ...Option) *MemoryRepository {
	r := &MemoryRepository{
		palette: scorecarddomain.DefaultPalette,
		newID:   uuid.NewV7,
		issued:  make(map[scorecarddomain.PlayerID]bool),
		nextSeq: 1,
		strokes: make(map[strokeKey]int),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterPlayer appends a player with a fresh ID and the first free palette color.
func (r *MemoryRepository) RegisterPlayer(name string) (scorecarddomain.Player, bool) {
	name = scorecarddomain.NormalizeName(name)
	if name == "" || len(r.players) >= scorecarddomain.MaxPlayers {
		return scorecarddomain.Player{}, false
	}

	color, ok := r.palette.NextFree(r.players)
	if !ok {
		return scorecarddomain.Player{}, false
	}

	player := scorecarddomain.Player{
		ID:    r.mintID(),
		Seq:   r.nextSeq,
		Name:  name,
		Color: color,
	}
	r.nextSeq++
	r.players = append(r.players, player)
	return player, true
}

// mintID returns an ID that has never been issued by this repository. A generator
// that keeps repeating itself is abandoned in favour of random UUIDs.
func (r *MemoryRepository) mintID() scorecarddomain.PlayerID {
	gen := r.newID
	for attempt := 0; ; attempt++ {
		if attempt == maxMintAttempts {
			gen = uuid.NewRandom
		}
		u, err := gen()
		if err != nil {
			u = uuid.New()
		}
		id := scorecarddomain.PlayerID(u)
		if id == scorecarddomain.NilPlayerID || r.issued[id] {
			continue
		}
		r.issued[id] = true
		return id
	}
}

// RemovePlayer deletes the roster entry for id.
func (r *MemoryRepository) RemovePlayer(id scorecarddomain.PlayerID) bool {
	idx := r.indexOf(id)
	if idx < 0 {
		return false
	}
	r.players = slices.Delete(r.players, idx, idx+1)
	return true
}

// SetStroke inserts, overwrites or deletes the record for (id, hole).
func (r *MemoryRepository) SetStroke(id scorecarddomain.PlayerID, hole, strokes int) bool {
	key := strokeKey{player: id, hole: hole}
	current, exists := r.strokes[key]

	switch {
	case strokes < 0:
		return false
	case strokes == 0:
		if !exists {
			return false
		}
		delete(r.strokes, key)
		r.order = slices.DeleteFunc(r.order, func(k strokeKey) bool { return k == key })
		return true
	}

	if exists && current == strokes {
		return false
	}
	if !exists {
		r.order = append(r.order, key)
	}
	r.strokes[key] = strokes
	return true
}

// GetStroke returns the recorded strokes for (id, hole).
func (r *MemoryRepository) GetStroke(id scorecarddomain.PlayerID, hole int) (int, bool) {
	strokes, ok := r.strokes[strokeKey{player: id, hole: hole}]
	return strokes, ok
}

// Player looks up a roster entry by ID.
func (r *MemoryRepository) Player(id scorecarddomain.PlayerID) (scorecarddomain.Player, bool) {
	idx := r.indexOf(id)
	if idx < 0 {
		return scorecarddomain.Player{}, false
	}
	return r.players[idx], true
}

// Players returns a copy of the roster.
func (r *MemoryRepository) Players() []scorecarddomain.Player {
	return slices.Clone(r.players)
}

// PlayerCount returns the roster size.
func (r *MemoryRepository) PlayerCount() int {
	return len(r.players)
}

// Strokes returns a copy of every record, orphaned ones included.
func (r *MemoryRepository) Strokes() []scorecarddomain.StrokeRecord {
	out := make([]scorecarddomain.StrokeRecord, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, scorecarddomain.StrokeRecord{
			PlayerID: k.player,
			Hole:     k.hole,
			Strokes:  r.strokes[k],
		})
	}
	return out
}

func (r *MemoryRepository) indexOf(id scorecarddomain.PlayerID) int {
	return slices.IndexFunc(r.players, func(p scorecarddomain.Player) bool { return p.ID == id })
}

var _ Repository = (*MemoryRepository)(nil)

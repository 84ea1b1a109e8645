package service

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	IDStrategyTimestamp = "timestamp"
	IDStrategyUUID      = "uuid"
)

// IDGenerator issues record identifiers.
type IDGenerator interface {
	NewID() string
}

// NewIDGenerator returns the generator for strategy, defaulting to
// timestamp ids.
func NewIDGenerator(strategy string) IDGenerator {
	if strategy == IDStrategyUUID {
		return UUIDIDs{}
	}
	return NewTimestampIDs()
}

// TimestampIDs issues millisecond Unix timestamps as decimal strings. When
// the clock has not advanced past the last issued id the next id is bumped
// by one, so ids from one generator are strictly increasing.
type TimestampIDs struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewTimestampIDs() *TimestampIDs {
	return &TimestampIDs{now: time.Now}
}

func (g *TimestampIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}

// UUIDIDs issues random version 4 UUIDs.
type UUIDIDs struct{}

func (UUIDIDs) NewID() string { return uuid.NewString() }

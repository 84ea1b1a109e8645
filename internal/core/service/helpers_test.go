package service

import (
	"strconv"
	"sync"
)

// seqIDs issues "1", "2", ... and lets a test force repeats.
type seqIDs struct {
	mu     sync.Mutex
	n      int
	repeat []string
}

func (g *seqIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.repeat) > 0 {
		id := g.repeat[0]
		g.repeat = g.repeat[1:]
		return id
	}
	g.n++
	return strconv.Itoa(g.n)
}

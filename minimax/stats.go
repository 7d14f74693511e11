package minimax

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Stats counts the work done by one search.
type Stats struct {
	Depth     int // depth at which a move was found
	Nodes     int // boards visited
	Leaves    int // boards scored by Evaluate
	Terminals int // leaves that were won boards
	Elapsed   time.Duration
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (s Stats) MarshalZerologObject(e *zerolog.Event) {
	e.Int("depth", s.Depth).
		Int("nodes", s.Nodes).
		Int("leaves", s.Leaves).
		Int("terminals", s.Terminals).
		Dur("elapsed", s.Elapsed)
}

func (s Stats) String() string {
	return fmt.Sprintf("depth %d nodes %d leaves %d terminals %d in %v",
		s.Depth, s.Nodes, s.Leaves, s.Terminals, s.Elapsed)
}

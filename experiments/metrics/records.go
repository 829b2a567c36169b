package metrics

import (
	"time"

	"github.com/google/uuid"
)

// AgentConfig identifies one searcher configuration under test.
type AgentConfig struct {
	ID         int
	Depth      int
	Goroutines int
	Deepening  bool
	Table      bool
}

// GameRecord is one self-play game between two configured agents.
type GameRecord struct {
	Game     uuid.UUID
	Agent1   int // AgentConfig.ID playing Light
	Agent2   int // AgentConfig.ID playing Dark
	Winner   string
	Won      bool
	Plies    int
	Duration time.Duration
}

// MoveRecord is one searched move within a game.
type MoveRecord struct {
	Game      uuid.UUID
	Step      int
	Player    string
	Score     int
	Nodes     int64
	Leaves    int64
	Cutoffs   int64
	TableHits int64
	Duration  time.Duration
}

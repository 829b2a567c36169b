// Package engine runs complete games between agents. It is the thin
// game-loop collaborator around the core library: it asks agents for moves,
// vets every move through the board's Apply entry point, and keeps the
// played history. Notation, UI and transport concerns stay outside.
package engine

import (
	"fmt"

	"github.com/andjf/quoridor/game"
	"github.com/andjf/quoridor/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// MaxPlies caps runaway games between weak or adversarial agents.
const MaxPlies = 400

// Update records one played move and the board it produced.
type Update struct {
	Move  game.Move
	Board game.Board
	Hash  uint64
}

// Result summarizes a finished game.
type Result struct {
	GameID  uuid.UUID
	Winner  game.Player
	Won     bool // false when the ply cap was hit first
	Plies   int
	History []Update
	Moves   []searcher.SearchMetrics
}

// Engine drives one local game between two agents, Light first.
type Engine struct {
	ID     uuid.UUID
	Board  game.Board
	Agents [2]searcher.Agent
}

func Local(light, dark searcher.Agent) *Engine {
	if light == nil || dark == nil {
		panic("engine: both agents are required")
	}
	return &Engine{
		ID:     uuid.New(),
		Board:  game.New(),
		Agents: [2]searcher.Agent{light, dark},
	}
}

// Run plays until a pawn reaches its goal row or the ply cap is hit. An
// agent returning a move outside the legal set aborts the game with the
// underlying InvalidMoveError; that is an agent bug, never corrected here.
func (e *Engine) Run() (Result, error) {
	result := Result{GameID: e.ID}
	log.Info().
		Stringer("game", e.ID).
		Msg("game started")

	for !e.Board.IsTerminal() && result.Plies < MaxPlies {
		mover := e.Board.Turn()
		move, metrics, err := e.Agents[mover].FindMove(e.Board)
		if err != nil {
			return result, fmt.Errorf("agent %s: %w", mover, err)
		}

		next, err := e.Board.Apply(move)
		if err != nil {
			return result, fmt.Errorf("agent %s played an illegal move: %w", mover, err)
		}

		e.Board = next
		result.Plies++
		result.History = append(result.History, Update{
			Move:  move,
			Board: next,
			Hash:  next.Hash(),
		})
		result.Moves = append(result.Moves, metrics)

		log.Debug().
			Stringer("game", e.ID).
			Int("ply", result.Plies).
			Stringer("player", mover).
			Str("move", game.FormatMove(move)).
			Msg("move played")
	}

	result.Winner, result.Won = e.Board.Winner()
	if result.Won {
		log.Info().
			Stringer("game", e.ID).
			Stringer("winner", result.Winner).
			Int("plies", result.Plies).
			Msg("game over")
	} else {
		log.Warn().
			Stringer("game", e.ID).
			Int("plies", result.Plies).
			Msg("ply cap reached without a winner")
	}
	return result, nil
}

// Package experiments pits searcher configurations against each other in
// self-play and records the outcomes as CSV for offline analysis.
package experiments

import (
	"fmt"
	"time"

	"github.com/andjf/quoridor/engine"
	"github.com/andjf/quoridor/experiments/metrics"
	"github.com/andjf/quoridor/searcher"

	"github.com/rs/zerolog/log"
)

const gamesPerMatchUp = 5

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Depth: 1},
	{ID: 2, Depth: 2},
	{ID: 3, Depth: 2, Table: true, Deepening: true},
	{ID: 4, Depth: 3, Table: true, Deepening: true, Goroutines: 8},
}

// RunDepthExperiment plays every configuration against the depth-1 baseline
// and writes agent, game and move records.
func RunDepthExperiment() error {
	baseline := depthConfigs[0]
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range depthConfigs[1:] {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}
	return runExperiment("depth_to_strength", depthConfigs, matchUps)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) error {
	writer, err := metrics.NewWriter(name)
	if err != nil {
		return fmt.Errorf("experiment %s: %w", name, err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("experiment %s: %w", name, err)
	}

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord

	for _, matchUp := range matchUps {
		log.Info().
			Int("agent1", matchUp[0].ID).
			Int("agent2", matchUp[1].ID).
			Int("games", gamesPerMatchUp).
			Msg("match up started")

		for i := 0; i < gamesPerMatchUp; i++ {
			// Alternate which config starts as Light.
			light, dark := matchUp[i%2], matchUp[(i+1)%2]
			games, moves, err := runGame(light, dark)
			if err != nil {
				return fmt.Errorf("experiment %s: %w", name, err)
			}
			gameRecords = append(gameRecords, games)
			moveRecords = append(moveRecords, moves...)
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("experiment %s: %w", name, err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("experiment %s: %w", name, err)
	}
	log.Info().Str("experiment", name).Int("games", len(gameRecords)).Msg("experiment complete")
	return nil
}

func runGame(light, dark metrics.AgentConfig) (metrics.GameRecord, []metrics.MoveRecord, error) {
	e := engine.Local(buildAgent(light), buildAgent(dark))

	start := time.Now()
	result, err := e.Run()
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	record := metrics.GameRecord{
		Game:     result.GameID,
		Agent1:   light.ID,
		Agent2:   dark.ID,
		Won:      result.Won,
		Plies:    result.Plies,
		Duration: time.Since(start),
	}
	if result.Won {
		record.Winner = result.Winner.String()
	}

	var moves []metrics.MoveRecord
	for step, m := range result.Moves {
		moves = append(moves, metrics.MoveRecord{
			Game:      result.GameID,
			Step:      step + 1,
			Player:    result.History[step].Board.Turn().Opponent().String(),
			Score:     m.Score,
			Nodes:     m.Nodes,
			Leaves:    m.Leaves,
			Cutoffs:   m.Cutoffs,
			TableHits: m.TableHits,
			Duration:  m.Duration,
		})
	}
	return record, moves, nil
}

func buildAgent(config metrics.AgentConfig) searcher.Agent {
	options := []searcher.Option{searcher.WithMetrics()}
	if config.Goroutines > 1 {
		options = append(options, searcher.WithParallelism(config.Goroutines))
	}
	if config.Deepening {
		options = append(options, searcher.WithIterativeDeepening())
	}
	if config.Table {
		options = append(options, searcher.WithTranspositionTable())
	}
	return searcher.NewMinimax(config.Depth, options...)
}

package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer dumps experiment records as CSV files under a timestamped
// directory, one file per record type.
type Writer struct {
	baseDir string
}

func NewWriter(experiment string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", experiment, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	return w.writeFile("agent_configs.csv",
		[]string{"id", "depth", "goroutines", "deepening", "table"},
		len(configs), func(i int) []string {
			c := configs[i]
			return []string{
				strconv.Itoa(c.ID),
				strconv.Itoa(c.Depth),
				strconv.Itoa(c.Goroutines),
				strconv.FormatBool(c.Deepening),
				strconv.FormatBool(c.Table),
			}
		})
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	return w.writeFile("game_records.csv",
		[]string{"game", "agent1", "agent2", "winner", "won", "plies", "duration"},
		len(records), func(i int) []string {
			r := records[i]
			return []string{
				r.Game.String(),
				strconv.Itoa(r.Agent1),
				strconv.Itoa(r.Agent2),
				r.Winner,
				strconv.FormatBool(r.Won),
				strconv.Itoa(r.Plies),
				r.Duration.String(),
			}
		})
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	return w.writeFile("move_records.csv",
		[]string{"game", "step", "player", "score", "nodes", "leaves", "cutoffs", "table_hits", "duration"},
		len(records), func(i int) []string {
			r := records[i]
			return []string{
				r.Game.String(),
				strconv.Itoa(r.Step),
				r.Player,
				strconv.Itoa(r.Score),
				strconv.FormatInt(r.Nodes, 10),
				strconv.FormatInt(r.Leaves, 10),
				strconv.FormatInt(r.Cutoffs, 10),
				strconv.FormatInt(r.TableHits, 10),
				r.Duration.String(),
			}
		})
}

func (w *Writer) writeFile(name string, header []string, rows int, row func(int) []string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for i := 0; i < rows; i++ {
		if err := writer.Write(row(i)); err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}
	return nil
}

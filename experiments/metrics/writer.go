package metrics

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

type AgentConfig struct {
	ID          int
	Level       string
	Playouts    int
	ExpandLimit int
	Evaluations int
}

type GameRecord struct {
	ID         int
	BlackAgent int // AgentConfig.ID
	WhiteAgent int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// Writer emits experiment tables as CSV sections on a single stream, each
// preceded by a "# name" line and followed by a blank line.
type Writer struct {
	out io.Writer
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) section(name string, header []string, rows [][]string) error {
	if _, err := io.WriteString(w.out, "# "+name+"\n"); err != nil {
		return errors.Wrapf(err, "failed to write %s title", name)
	}

	writer := csv.NewWriter(w.out)
	if err := writer.Write(header); err != nil {
		return errors.Wrapf(err, "failed to write %s header", name)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return errors.Wrapf(err, "failed to write %s row", name)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrapf(err, "failed to flush %s", name)
	}

	_, err := io.WriteString(w.out, "\n")
	return err
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "level", "playouts", "expand_limit", "evaluations"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Level,
			strconv.Itoa(config.Playouts),
			strconv.Itoa(config.ExpandLimit),
			strconv.Itoa(config.Evaluations),
		})
	}
	return w.section("agent_configs", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "game", "black_agent", "white_agent", "winner", "black_stones", "white_stones", "moves", "start_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.GameMetric.ID,
			strconv.Itoa(record.BlackAgent),
			strconv.Itoa(record.WhiteAgent),
			record.Winner.String(),
			strconv.Itoa(record.Black),
			strconv.Itoa(record.White),
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.section("game_records", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "agent", "duration", "episodes", "full_playouts", "expansions"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player.String(),
			record.Move.String(),
			record.Agent,
			record.Duration.String(),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.FullPlayouts),
			strconv.Itoa(record.Expansions),
		})
	}
	return w.section("move_records", header, rows)
}

package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// AgentConfig describes one side of an experiment matchup.
type AgentConfig struct {
	ID          int
	Strategy    string
	Selection   string
	Temperature float64
	Mode        string
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	GameMetric
}

type TurnRecord struct {
	Game int // GameRecord.ID
	TurnMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped folder for one experiment under root.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "strategy", "selection", "temperature", "mode"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Strategy,
			config.Selection,
			strconv.FormatFloat(config.Temperature, 'f', -1, 64),
			config.Mode,
		})
	}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "run_id", "agent1", "agent2", "first_player", "winner", "lore1", "lore2", "turns", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.RunID,
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.FirstPlayer,
			record.Winner,
			strconv.Itoa(record.Lore1),
			strconv.Itoa(record.Lore2),
			strconv.Itoa(record.TotalTurns),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteTurnRecords(records []TurnRecord) error {
	header := []string{"game", "turn", "player", "score", "lore", "duration", "generated", "explored", "returned", "anomalies"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Turn),
			record.Player,
			strconv.Itoa(record.Score),
			strconv.Itoa(record.Lore),
			record.Duration.String(),
			strconv.Itoa(record.Generated),
			strconv.Itoa(record.Explored),
			strconv.Itoa(record.Returned),
			strconv.Itoa(record.Anomalies),
		})
	}
	return w.writeCSV("turn_records.csv", header, rows)
}

// WriteJSON stores v as indented JSON in the writer's folder.
func (w *Writer) WriteJSON(name string, v any) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	return EncodeJSON(f, v)
}

// EncodeJSON writes v as indented JSON.
func EncodeJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

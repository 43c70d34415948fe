package bench

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/qaplocal/config"
	"github.com/katalvlaran/qaplocal/qapdata"
)

// Report is the persisted outcome of one benchmark session.
type Report struct {
	ID        uuid.UUID `json:"id"`
	Instance  string    `json:"instance"`
	N         int       `json:"n"`
	CreatedAt time.Time `json:"created_at"`
	Seeds     []int64   `json:"seeds"`
	MaxMoves  int       `json:"max_moves,omitempty"`
	Rows      []Row     `json:"rows"`
	Runs      []Run     `json:"runs"`
}

func newReport(inst *qapdata.Instance, cfg config.Config, runs []Run) Report {
	return Report{
		ID:        uuid.New(),
		Instance:  inst.Name,
		N:         inst.N(),
		CreatedAt: time.Now().UTC(),
		Seeds:     append([]int64(nil), cfg.Seeds...),
		MaxMoves:  cfg.MaxMoves,
		Rows:      summarize(cfg.Algorithms, runs),
		Runs:      runs,
	}
}

// SaveReport writes rep to <dir>/<id>.json using temp file + rename, and
// returns the final path. dir is created if missing.
func SaveReport(dir string, rep Report) (string, error) {
	if rep.ID == uuid.Nil {
		return "", fmt.Errorf("bench.SaveReport: report has no id")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("bench.SaveReport: create directory: %w", err)
	}

	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", fmt.Errorf("bench.SaveReport: serialize: %w", err)
	}

	finalPath := filepath.Join(dir, rep.ID.String()+".json")
	tempPath := finalPath + ".tmp"
	if err = os.WriteFile(tempPath, data, 0o644); err != nil {
		return "", fmt.Errorf("bench.SaveReport: write temp file: %w", err)
	}
	if err = os.Rename(tempPath, finalPath); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("bench.SaveReport: rename: %w", err)
	}

	return finalPath, nil
}

// LoadReport reads a report written by SaveReport.
func LoadReport(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("bench.LoadReport: %w", err)
	}
	var rep Report
	if err = json.Unmarshal(data, &rep); err != nil {
		return Report{}, fmt.Errorf("bench.LoadReport: %s: %w", path, err)
	}

	return rep, nil
}

// WriteCSV writes one line per Row, durations in milliseconds.
func WriteCSV(w io.Writer, rep Report) error {
	cw := csv.NewWriter(w)
	header := []string{
		"algorithm", "runs", "best", "mean", "std_dev",
		"mean_time_ms", "evaluations", "distinct_optima",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rep.Rows {
		rec := []string{
			row.Algorithm,
			strconv.Itoa(row.Runs),
			ftoa(row.Best),
			ftoa(row.Mean),
			ftoa(row.StdDev),
			ftoa(float64(row.MeanDuration.Microseconds()) / 1000.0),
			strconv.Itoa(row.Evaluations),
			strconv.Itoa(row.DistinctOptima),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func ftoa(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

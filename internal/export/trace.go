package export

import (
	"encoding/json"
	"io"
	"os"
)

// Trace is a probe recording of one headless run.
type Trace struct {
	Screensaver string             `json:"screensaver"`
	Probe       string             `json:"probe"`
	Seed        int64              `json:"seed"`
	Ticks       int                `json:"ticks"`
	Every       int                `json:"every"`
	Samples     []float64          `json:"samples"`
	Metrics     map[string]float64 `json:"metrics"`
}

// WriteTrace encodes t as indented JSON.
func WriteTrace(w io.Writer, t *Trace) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(t)
}

// SaveTrace writes t to path, or to stdout when path is "-".
func SaveTrace(path string, t *Trace) error {
	if path == "-" {
		return WriteTrace(os.Stdout, t)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteTrace(file, t); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

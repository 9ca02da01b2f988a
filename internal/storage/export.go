package storage

import (
	"encoding/json"
	"os"
)

type ExportData struct {
	Meta  RunMetadata `json:"meta"`
	Times []float64   `json:"times"`
	Rows  [][]float64 `json:"rows"`
}

// ExportJSON writes a stored run to a single JSON file.
func (s *Store) ExportJSON(runID, path string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	times, rows, err := s.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ExportData{Meta: *meta, Times: times, Rows: rows})
}

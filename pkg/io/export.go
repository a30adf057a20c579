package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rikardjonsson/pylon/pkg/persist"
)

// WriteJSON encodes a snapshot as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(snap *persist.Snapshot, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a snapshot to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(snap *persist.Snapshot, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(snap, f)
}

// Package taskfile reads and writes the JSON tasks file. It deals only in
// plain task records; turning records into tasks is the model's job.
package taskfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tasca-io/tasca/internal/task"
)

// PersistenceError reports a failed read or write of the tasks file.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Load reads the tasks file at path. A missing file means an empty
// collection, not an error.
func Load(path string) ([]task.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &PersistenceError{Op: "read", Path: path, Err: err}
	}

	var records []task.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &PersistenceError{Op: "parse", Path: path, Err: err}
	}
	return records, nil
}

// Save writes records to path as pretty-printed JSON, replacing whatever
// was there. The data goes to a temp file first and is renamed into place,
// so readers never see a half-written file. The parent directory is created
// on demand.
func Save(path string, records []task.Record) error {
	if records == nil {
		records = []task.Record{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &PersistenceError{Op: "encode", Path: path, Err: err}
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &PersistenceError{Op: "prepare directory for", Path: path, Err: err}
		}
	}

	tmpPath := fmt.Sprintf("%s.tmp.%d", path, os.Getpid())
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return &PersistenceError{Op: "write", Path: path, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		// Clean up temp file on failure
		os.Remove(tmpPath)
		return &PersistenceError{Op: "replace", Path: path, Err: err}
	}
	return nil
}

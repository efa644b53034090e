package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrEmptyDataset is returned when a decoded dataset has no vertices.
var ErrEmptyDataset = errors.New("dataset has no vertices")

// Load reads a dataset from a YAML or JSON file.
func Load(path string) (Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	ds, err := Decode(file)
	if err != nil {
		return Dataset{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return ds, nil
}

// Decode parses a dataset document. JSON input is accepted because it is
// valid YAML. Unknown fields are rejected.
func Decode(r io.Reader) (Dataset, error) {
	var ds Dataset
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&ds); err != nil {
		if errors.Is(err, io.EOF) {
			return Dataset{}, ErrEmptyDataset
		}
		return Dataset{}, err
	}
	if len(ds.Vertices) == 0 {
		return Dataset{}, ErrEmptyDataset
	}
	return ds, nil
}

// Encode writes ds as YAML.
func Encode(w io.Writer, ds Dataset) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(ds); err != nil {
		return err
	}
	return encoder.Close()
}

// Write stores ds as YAML at path, creating parent directories.
func Write(path string, ds Dataset) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	if err := Encode(file, ds); err != nil {
		return fmt.Errorf("encode yaml for %s: %w", path, err)
	}
	return nil
}

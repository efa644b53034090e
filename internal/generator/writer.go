package generator

import (
	"fmt"
	"path/filepath"

	"github.com/vanshika/finnet/internal/dataset"
)

// DatasetFile is the name of the file WriteDataset creates.
const DatasetFile = "network.yaml"

// WriteDataset validates ds by building it and stores it as network.yaml under
// dir. It returns the written path.
func WriteDataset(ds dataset.Dataset, dir string) (string, error) {
	if _, err := ds.Build(); err != nil {
		return "", fmt.Errorf("generated dataset is invalid: %w", err)
	}
	path := filepath.Join(dir, DatasetFile)
	if err := dataset.Write(path, ds); err != nil {
		return "", err
	}
	return path, nil
}

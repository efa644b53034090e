package service

import (
	"fmt"
	"strings"
)

// normalizeLabel trims a vertex label supplied by a caller and rejects an
// empty result. Inner whitespace is kept so labels match the graph verbatim.
// field names the parameter in the error.
func normalizeLabel(field, value string) (string, error) {
	label := strings.TrimSpace(value)
	if label == "" {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	return label, nil
}

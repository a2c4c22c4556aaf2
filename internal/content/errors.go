package content

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned for content files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported content format")

// ValidationError describes one schema violation in a content document.
type ValidationError struct {
	Path    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Package clipboard copies rendered trees to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnavailable is returned when no clipboard utility exists on the host.
var ErrClipboardUnavailable = errors.New("clipboard: no clipboard utility available")

// Copier copies textual data to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// Service implements Copier using github.com/atotto/clipboard.
type Service struct{}

// NewService constructs a clipboard service.
func NewService() *Service {
	return &Service{}
}

// Copy writes text to the system clipboard.
func (service *Service) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	if writeError := clipboard.WriteAll(text); writeError != nil {
		return fmt.Errorf("clipboard: write: %w", writeError)
	}
	return nil
}

var _ Copier = (*Service)(nil)

// Package clipboard copies artifact locations to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

const (
	emptyTextMessageConstant             = "clipboard text must not be empty"
	clipboardUnavailableTemplateConstant = "system clipboard unavailable: %w"
)

// ErrEmptyText indicates an attempt to copy blank text.
var ErrEmptyText = errors.New(emptyTextMessageConstant)

// Copier copies textual data to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// WriteFunc writes text to a clipboard backend.
type WriteFunc func(text string) error

// Service implements Copier using github.com/atotto/clipboard.
type Service struct {
	write WriteFunc
}

// NewService constructs a Service bound to the system clipboard.
func NewService() *Service {
	return NewServiceWithWriter(clipboard.WriteAll)
}

// NewServiceWithWriter constructs a Service that writes through write.
func NewServiceWithWriter(write WriteFunc) *Service {
	if write == nil {
		write = clipboard.WriteAll
	}
	return &Service{write: write}
}

// Copy writes text to the clipboard.
func (service *Service) Copy(text string) error {
	if len(strings.TrimSpace(text)) == 0 {
		return ErrEmptyText
	}
	if writeError := service.write(text); writeError != nil {
		return fmt.Errorf(clipboardUnavailableTemplateConstant, writeError)
	}
	return nil
}

var _ Copier = (*Service)(nil)

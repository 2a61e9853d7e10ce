package assets

import (
	"fmt"
	"strings"
)

// ValidateTemplateName checks that a template name is a plain file name.
// Returns ErrInvalidTemplateName if the name is empty, contains path separators
// or null bytes, starts with a dot, or contains a ".." sequence.
func ValidateTemplateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidTemplateName)
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidTemplateName, name)
	}
	if strings.HasPrefix(name, ".") || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidTemplateName, name)
	}
	return nil
}

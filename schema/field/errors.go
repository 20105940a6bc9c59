package field

import (
	"strings"

	"github.com/syssam/aggregen"
)

// RegistryError reports an invalid registration.
type RegistryError struct {
	Name    string
	Message string
}

// Error implements the error interface.
func (e *RegistryError) Error() string {
	var b strings.Builder
	b.WriteString("aggregen: member type")
	if e.Name != "" {
		b.WriteString(" ")
		b.WriteString(e.Name)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}

// Is reports whether the target matches the sentinel error for RegistryError.
func (e *RegistryError) Is(target error) bool {
	return target == aggregen.ErrInvalidConfig
}

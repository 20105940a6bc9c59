package load

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Declaration is one entry of a declaration list.
type Declaration struct {
	// Name is the local name of the aggregate or member.
	Name string `json:"name" yaml:"name"`
	// Depth is the nesting level; 0 starts a new tree.
	Depth int `json:"depth,omitempty" yaml:"depth,omitempty"`
	// Parent is the full path of an earlier declaration, e.g.
	// "Order/Lines". It takes precedence over Depth.
	Parent string `json:"parent,omitempty" yaml:"parent,omitempty"`
	// Type is the type tag: a model kind for roots, a relation kind or a
	// member type name otherwise.
	Type  string            `json:"type,omitempty" yaml:"type,omitempty"`
	Attrs map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Pos   Position          `json:"pos,omitzero" yaml:"pos,omitempty"`
}

// String returns a short description of the declaration.
func (d *Declaration) String() string {
	var b strings.Builder
	b.WriteString(d.Name)
	if d.Type != "" {
		b.WriteString(" (")
		b.WriteString(d.Type)
		b.WriteString(")")
	}
	if d.Pos.IsValid() {
		b.WriteString(" at ")
		b.WriteString(d.Pos.String())
	}
	return b.String()
}

// Position is the source position of a declaration. The zero value means
// unknown.
type Position struct {
	Line   int `json:"line,omitempty" yaml:"line,omitempty"`
	Column int `json:"column,omitempty" yaml:"column,omitempty"`
}

// IsValid reports whether the position is known.
func (p Position) IsValid() bool { return p.Line > 0 }

// String returns "line:column".
func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// ParseJSON decodes a JSON array of declarations.
func ParseJSON(data []byte) ([]*Declaration, error) {
	var decls []*Declaration
	if err := json.Unmarshal(data, &decls); err != nil {
		return nil, fmt.Errorf("load: decode declarations: %w", err)
	}
	for i, d := range decls {
		if d == nil {
			return nil, fmt.Errorf("load: declaration %d is null", i)
		}
	}
	return decls, nil
}

// MarshalJSON encodes declarations in the form read by ParseJSON.
func MarshalJSON(decls []*Declaration) ([]byte, error) {
	return json.MarshalIndent(decls, "", "  ")
}

// ParseFile reads declarations from a file. Files ending in ".json" are
// decoded with ParseJSON, all others with ParseYAML.
func ParseFile(path string) ([]*Declaration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ParseJSON(data)
	}
	return ParseYAML(data)
}

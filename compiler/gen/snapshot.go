package gen

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

type (
	// Snapshot is a serializable description of a Graph, used to inspect a
	// build and to compare two builds.
	Snapshot struct {
		Aggregates []*AggregateSnapshot `json:"aggregates" yaml:"aggregates" msgpack:"aggregates"`
		Edges      []*EdgeSnapshot      `json:"edges" yaml:"edges" msgpack:"edges"`
	}

	// AggregateSnapshot describes one aggregate.
	AggregateSnapshot struct {
		Path    string            `json:"path" yaml:"path" msgpack:"path"`
		Model   string            `json:"model" yaml:"model" msgpack:"model"`
		Members []*MemberSnapshot `json:"members,omitempty" yaml:"members,omitempty" msgpack:"members,omitempty"`
	}

	// MemberSnapshot describes one member.
	MemberSnapshot struct {
		Name         string            `json:"name" yaml:"name" msgpack:"name"`
		Kind         string            `json:"kind" yaml:"kind" msgpack:"kind"`
		Type         string            `json:"type,omitempty" yaml:"type,omitempty" msgpack:"type,omitempty"`
		Target       string            `json:"target,omitempty" yaml:"target,omitempty" msgpack:"target,omitempty"`
		Key          bool              `json:"key,omitempty" yaml:"key,omitempty" msgpack:"key,omitempty"`
		Required     bool              `json:"required,omitempty" yaml:"required,omitempty" msgpack:"required,omitempty"`
		DisplayName  bool              `json:"display_name,omitempty" yaml:"display_name,omitempty" msgpack:"display_name,omitempty"`
		RefPath      []string          `json:"ref_path,omitempty" yaml:"ref_path,omitempty" msgpack:"ref_path,omitempty"`
		VariationKey *int              `json:"variation_key,omitempty" yaml:"variation_key,omitempty" msgpack:"variation_key,omitempty"`
		EnumValue    *int              `json:"enum_value,omitempty" yaml:"enum_value,omitempty" msgpack:"enum_value,omitempty"`
		Attrs        map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty" msgpack:"attrs,omitempty"`
		Items        []*MemberSnapshot `json:"items,omitempty" yaml:"items,omitempty" msgpack:"items,omitempty"`
	}

	// EdgeSnapshot describes one graph edge.
	EdgeSnapshot struct {
		Initial  string            `json:"initial" yaml:"initial" msgpack:"initial"`
		Terminal string            `json:"terminal" yaml:"terminal" msgpack:"terminal"`
		Relation string            `json:"relation" yaml:"relation" msgpack:"relation"`
		Attrs    map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty" msgpack:"attrs,omitempty"`
	}
)

// Snapshot returns a serializable description of the graph.
func (g *Graph) Snapshot() *Snapshot {
	s := &Snapshot{
		Aggregates: make([]*AggregateSnapshot, 0, len(g.Aggregates)),
	}
	for _, a := range g.Aggregates {
		as := &AggregateSnapshot{Path: a.Path(), Model: a.Model.Tag()}
		for _, m := range a.Members {
			as.Members = append(as.Members, snapshotMember(m))
		}
		s.Aggregates = append(s.Aggregates, as)
	}
	for _, e := range g.dag.Edges() {
		s.Edges = append(s.Edges, &EdgeSnapshot{
			Initial:  e.Initial.String(),
			Terminal: e.Terminal.String(),
			Relation: e.Relation,
			Attrs:    e.Attrs,
		})
	}
	return s
}

func snapshotMember(m *Member) *MemberSnapshot {
	ms := &MemberSnapshot{
		Name:        m.Name,
		Kind:        m.Kind.String(),
		Key:         m.Key,
		Required:    m.Required,
		DisplayName: m.DisplayName,
		Attrs:       m.Attrs,
	}
	if m.Type != nil {
		ms.Type = m.Type.Name()
	}
	if m.Target != nil {
		ms.Target = m.Target.Path()
	}
	switch m.Kind {
	case MemberRef:
		ms.RefPath = m.RefPath()
	case MemberVariationItem:
		ms.VariationKey = &m.VariationKey
	case MemberEnumValue:
		if m.HasEnumValue {
			ms.EnumValue = &m.EnumValue
		}
	}
	for _, item := range m.Items {
		ms.Items = append(ms.Items, snapshotMember(item))
	}
	return ms
}

// JSON returns the indented JSON encoding of the snapshot.
func (s *Snapshot) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// YAML returns the YAML encoding of the snapshot.
func (s *Snapshot) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}

// Fingerprint returns the hex sha256 of a canonical encoding of the
// snapshot. Two builds of the same declarations have equal fingerprints.
func (s *Snapshot) Fingerprint() (string, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(s); err != nil {
		return "", fmt.Errorf("gen: encode snapshot: %w", err)
	}
	sum := sha256.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:]), nil
}

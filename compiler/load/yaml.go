package load

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Keys of the long form of a YAML declaration.
const (
	keyType    = "type"
	keyAttrs   = "attrs"
	keyMembers = "members"
)

// ParseYAML decodes a tree-shaped YAML document into declarations in
// document order. Every mapping key declares an entry; its value is either
// a type tag scalar, null, or a mapping with the keys "type", "attrs" and
// "members".
func ParseYAML(data []byte) ([]*Declaration, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("load: decode yaml: %w", err)
	}
	if doc.Kind == 0 {
		return nil, nil
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, nil
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, posError(root, "document must be a mapping of declarations")
	}
	var decls []*Declaration
	if err := walkMembers(root, 0, &decls); err != nil {
		return nil, err
	}
	return decls, nil
}

func walkMembers(n *yaml.Node, depth int, decls *[]*Declaration) error {
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return posError(key, "declaration name must be a scalar")
		}
		d := &Declaration{
			Name:  key.Value,
			Depth: depth,
			Pos:   Position{Line: key.Line, Column: key.Column},
		}
		*decls = append(*decls, d)
		switch val.Kind {
		case yaml.ScalarNode:
			if val.Tag != "!!null" {
				d.Type = val.Value
			}
		case yaml.MappingNode:
			members, err := decodeLong(val, d)
			if err != nil {
				return err
			}
			if members != nil {
				if err := walkMembers(members, depth+1, decls); err != nil {
					return err
				}
			}
		case yaml.AliasNode:
			return posError(val, "aliases are not supported in declarations")
		default:
			return posError(val, fmt.Sprintf("declaration %q must be a type tag or a mapping", key.Value))
		}
	}
	return nil
}

// decodeLong fills d from the long form and returns the members mapping.
func decodeLong(n *yaml.Node, d *Declaration) (*yaml.Node, error) {
	var members *yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		switch key.Value {
		case keyType:
			if val.Kind != yaml.ScalarNode {
				return nil, posError(val, "type must be a scalar")
			}
			if val.Tag != "!!null" {
				d.Type = val.Value
			}
		case keyAttrs:
			attrs, err := decodeAttrs(val)
			if err != nil {
				return nil, err
			}
			d.Attrs = attrs
		case keyMembers:
			switch {
			case val.Kind == yaml.ScalarNode && val.Tag == "!!null":
			case val.Kind != yaml.MappingNode:
				return nil, posError(val, "members must be a mapping")
			default:
				members = val
			}
		default:
			return nil, posError(key, fmt.Sprintf("unknown key %q in declaration %q", key.Value, d.Name))
		}
	}
	return members, nil
}

func decodeAttrs(n *yaml.Node) (map[string]string, error) {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, posError(n, "attrs must be a mapping")
	}
	attrs := make(map[string]string, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return nil, posError(val, fmt.Sprintf("attribute %q must be a scalar", key.Value))
		}
		if val.Tag == "!!null" {
			attrs[key.Value] = ""
			continue
		}
		attrs[key.Value] = val.Value
	}
	return attrs, nil
}

func posError(n *yaml.Node, msg string) error {
	return fmt.Errorf("load: line %d: %s", n.Line, msg)
}

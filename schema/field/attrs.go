package field

import (
	"fmt"
	"strconv"
	"strings"
)

// Attribute names understood by aggregen and the built-in member types.
const (
	AttrKey         = "key"
	AttrRequired    = "required"
	AttrDisplayName = "display-name"
	AttrMaxLength   = "max-length"
	AttrDigits      = "digits"
	AttrScale       = "scale"
	AttrValue       = "value"
	AttrComment     = "comment"
)

// BoolAttr reads a flag attribute. A present attribute with an empty value
// is true.
func BoolAttr(attrs map[string]string, name string) (bool, error) {
	v, ok := attrs[name]
	if !ok {
		return false, nil
	}
	if strings.TrimSpace(v) == "" {
		return true, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("attribute %q: %q is not a boolean", name, v)
	}
	return b, nil
}

// IntAttr reads an integer attribute. The second result reports whether the
// attribute was present.
func IntAttr(attrs map[string]string, name string) (int, bool, error) {
	v, ok := attrs[name]
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, true, fmt.Errorf("attribute %q: %q is not an integer", name, v)
	}
	return n, true, nil
}

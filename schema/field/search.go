package field

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/syssam/aggregen/querylanguage"
)

// Date layouts accepted by temporal range filters given as strings.
const (
	DateLayout      = time.DateOnly
	YearMonthLayout = "2006-01"
)

func textSearch(fold bool) *Search {
	return &Search{
		Shape: ShapeText,
		Predicate: func(filter any) (querylanguage.Fielder, error) {
			s, ok := filter.(string)
			if !ok {
				return nil, filterError(ShapeText, filter)
			}
			if s == "" {
				return nil, nil
			}
			if fold {
				return querylanguage.StringContainsFold(s), nil
			}
			return querylanguage.StringContains(s), nil
		},
	}
}

func exactSearch(conv func(string) (string, error)) *Search {
	return &Search{
		Shape: ShapeExact,
		Predicate: func(filter any) (querylanguage.Fielder, error) {
			s, ok := filter.(string)
			if !ok {
				return nil, filterError(ShapeExact, filter)
			}
			if s == "" {
				return nil, nil
			}
			v, err := conv(s)
			if err != nil {
				return nil, err
			}
			return querylanguage.StringEQ(v), nil
		},
	}
}

func selectSearch(allowed []string) *Search {
	return &Search{
		Shape: ShapeSelect,
		Predicate: func(filter any) (querylanguage.Fielder, error) {
			vs, ok := filter.([]string)
			if !ok {
				return nil, filterError(ShapeSelect, filter)
			}
			if len(vs) == 0 {
				return nil, nil
			}
			for _, v := range vs {
				if !slices.Contains(allowed, v) {
					return nil, fmt.Errorf("field: %q is not one of %q", v, allowed)
				}
			}
			return querylanguage.StringIn(vs...), nil
		},
	}
}

func flagSearch() *Search {
	return &Search{
		Shape: ShapeFlag,
		Predicate: func(filter any) (querylanguage.Fielder, error) {
			var f Flag
			switch v := filter.(type) {
			case Flag:
				f = v
			case *Flag:
				if v != nil {
					f = *v
				}
			default:
				return nil, filterError(ShapeFlag, filter)
			}
			if f.True == f.False {
				return nil, nil
			}
			return querylanguage.BoolEQ(f.True), nil
		},
	}
}

// rangeSearch builds a ShapeRange search over values converted by conv.
func rangeSearch[V any](
	conv func(any) (V, error),
	gte, lte func(V) querylanguage.TypedP[V],
	and func(x, y querylanguage.TypedP[V], z ...querylanguage.TypedP[V]) querylanguage.TypedP[V],
) *Search {
	return &Search{
		Shape: ShapeRange,
		Predicate: func(filter any) (querylanguage.Fielder, error) {
			var r Range
			switch v := filter.(type) {
			case Range:
				r = v
			case *Range:
				if v != nil {
					r = *v
				}
			default:
				return nil, filterError(ShapeRange, filter)
			}
			var ps []querylanguage.TypedP[V]
			if r.From != nil {
				from, err := conv(r.From)
				if err != nil {
					return nil, err
				}
				ps = append(ps, gte(from))
			}
			if r.To != nil {
				to, err := conv(r.To)
				if err != nil {
					return nil, err
				}
				ps = append(ps, lte(to))
			}
			switch len(ps) {
			case 0:
				return nil, nil
			case 1:
				return ps[0], nil
			default:
				return and(ps[0], ps[1]), nil
			}
		},
	}
}

func intSearch() *Search {
	return rangeSearch(toInt, querylanguage.IntGTE, querylanguage.IntLTE, querylanguage.IntAnd)
}

func decimalSearch() *Search {
	return rangeSearch(toFloat, querylanguage.Float64GTE, querylanguage.Float64LTE, querylanguage.Float64And)
}

func timeSearch(layout string) *Search {
	return rangeSearch(func(v any) (time.Time, error) { return toTime(v, layout) },
		querylanguage.TimeGTE, querylanguage.TimeLTE, querylanguage.TimeAnd)
}

func toInt(v any) (int, error) {
	switch v := v.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case int32:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("field: %v is not an integer", v)
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("field: unexpected range bound %T", v)
	}
}

func toFloat(v any) (float64, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("field: unexpected range bound %T", v)
	}
}

func toTime(v any, layout string) (time.Time, error) {
	switch v := v.(type) {
	case time.Time:
		return v, nil
	case string:
		t, err := time.Parse(layout, v)
		if err != nil {
			return time.Time{}, fmt.Errorf("field: parse range bound: %w", err)
		}
		return t, nil
	default:
		return time.Time{}, fmt.Errorf("field: unexpected range bound %T", v)
	}
}

func parseUUID(s string) (string, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("field: invalid uuid filter: %w", err)
	}
	return u.String(), nil
}

func filterError(shape FilterShape, got any) error {
	return fmt.Errorf("field: %s search does not accept %T", shape, got)
}

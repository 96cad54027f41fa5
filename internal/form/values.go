package form

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Values arrive decoded from JSON, so strings, bools, float64 and []any are
// the shapes to expect.

func asString(field string, v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(t), nil
	}
	return "", fmt.Errorf("%w: %s expects text", ErrInvalidValue, field)
}

func asBool(field string, v any) (bool, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		b, err := strconv.ParseBool(t)
		if err == nil {
			return b, nil
		}
	}
	return false, fmt.Errorf("%w: %s expects true or false", ErrInvalidValue, field)
}

func asInt(field string, v any) (int, error) {
	switch t := v.(type) {
	case int:
		return t, nil
	case float64:
		if t == math.Trunc(t) {
			return int(t), nil
		}
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err == nil {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: %s expects a whole number", ErrInvalidValue, field)
}

func asStrings(field string, v any) ([]string, error) {
	switch t := v.(type) {
	case nil:
		return []string{}, nil
	case []string:
		return append([]string{}, t...), nil
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s expects a list of options", ErrInvalidValue, field)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %s expects a list of options", ErrInvalidValue, field)
}

func checkOption(field, value string, options []string) error {
	if value == "" || options == nil || slices.Contains(options, value) {
		return nil
	}
	return fmt.Errorf("%w: %q is not an option of %s", ErrInvalidValue, value, field)
}

// toggle flips membership of option in set, preserving the order of the rest.
func toggle(set []string, option string) []string {
	if i := slices.Index(set, option); i >= 0 {
		return slices.Delete(append([]string{}, set...), i, i+1)
	}
	return append(append([]string{}, set...), option)
}

func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

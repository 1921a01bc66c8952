package filter

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// ParseFunc coerces one raw query-parameter value. The returned value is
// passed to the database driver as a predicate argument.
type ParseFunc func(raw string) (any, error)

// TextMax bounds the length of a text input, e.g. ISBN filters.
func TextMax(max int) ParseFunc {
	return func(raw string) (any, error) {
		if len(raw) > max {
			return nil, fmt.Errorf("must be at most %d characters", max)
		}
		return raw, nil
	}
}

func parseText(raw string) (any, error) {
	return raw, nil
}

func parseInt(raw string) (any, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%q is not an integer", raw)
	}
	return n, nil
}

func parseDecimal(raw string) (any, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%q is not a decimal number", raw)
	}
	return d, nil
}

func parseDate(raw string) (any, error) {
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, fmt.Errorf("%q is not a %s date", raw, time.DateOnly)
	}
	return t, nil
}

// parse coerces raw for the field. A Year predicate always takes an integer
// year, whatever the column type is.
func (f Field) parse(raw string) (any, error) {
	if f.Kind == Year {
		return parseInt(raw)
	}
	if f.Parse != nil {
		return f.Parse(raw)
	}
	switch f.Type {
	case TypeInt:
		return parseInt(raw)
	case TypeDecimal:
		return parseDecimal(raw)
	case TypeDate:
		return parseDate(raw)
	default:
		return parseText(raw)
	}
}

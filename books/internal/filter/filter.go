// Package filter turns optional, user-supplied query parameters into an
// AND-combined set of squirrel predicates, driven by a per-entity catalog
// declared at startup.
package filter

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind is the predicate applied to a field's column.
type Kind int

const (
	// Exact matches the column value exactly.
	Exact Kind = iota
	// IContains is a case-insensitive substring match.
	IContains
	// IExact is a case-insensitive exact match.
	IExact
	// GtOrEq and LtOrEq compare ordered values.
	GtOrEq
	LtOrEq
	// Year matches the calendar-year component of a date column.
	Year
	// Range matches an inclusive [low, high] interval supplied via the
	// <param>_min and <param>_max sub-inputs.
	Range
)

func (k Kind) String() string {
	switch k {
	case Exact:
		return "exact"
	case IContains:
		return "icontains"
	case IExact:
		return "iexact"
	case GtOrEq:
		return "gte"
	case LtOrEq:
		return "lte"
	case Year:
		return "year"
	case Range:
		return "range"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Type is the semantic type a raw input is coerced to before it becomes a
// predicate argument.
type Type int

const (
	TypeText Type = iota
	TypeInt
	TypeDecimal
	TypeDate
)

// Field declares one addressable filter input. Param is the query-parameter
// name, Column the (possibly join-qualified) target column. A Field whose
// Param differs from its Column name is synthetic: min_price over the price
// column, or author over the joined a.name column.
type Field struct {
	Param  string
	Column string
	Kind   Kind
	Type   Type
	// Parse overrides the default coercion for Type, e.g. enum codes.
	Parse ParseFunc
}

// Text declares the simple-list style: an exact-match text field whose
// parameter name and column coincide.
func Text(name string) Field {
	return Field{Param: name, Column: name, Kind: Exact, Type: TypeText}
}

// Catalog is the immutable set of filter fields for one entity. Build it once
// at startup with NewCatalog; Evaluate never mutates it.
type Catalog struct {
	fields []Field
}

// NewCatalog validates the declaration set. columns is the whitelist of
// selectable columns of the entity's base query, joined aliases included;
// declaring a field against any other column is a startup error, which is how
// relationship traversal is resolved ahead of query time.
func NewCatalog(columns []string, fields ...Field) (*Catalog, error) {
	legal := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		legal[col] = struct{}{}
	}

	seen := make(map[string]struct{})
	for _, f := range fields {
		if f.Param == "" || f.Column == "" {
			return nil, errors.Errorf("filter field %+v: param and column are required", f)
		}
		if _, ok := legal[f.Column]; !ok {
			return nil, errors.Errorf("filter %q: column %q is not selectable", f.Param, f.Column)
		}
		for _, name := range f.params() {
			if _, dup := seen[name]; dup {
				return nil, errors.Errorf("filter %q: parameter %q declared twice", f.Param, name)
			}
			seen[name] = struct{}{}
		}
		if err := f.checkKind(); err != nil {
			return nil, err
		}
	}
	return &Catalog{fields: fields}, nil
}

// MustCatalog is NewCatalog for package-level declarations.
func MustCatalog(columns []string, fields ...Field) *Catalog {
	c, err := NewCatalog(columns, fields...)
	if err != nil {
		panic(err)
	}
	return c
}

// params lists the query-parameter names the field consumes.
func (f Field) params() []string {
	if f.Kind == Range {
		return []string{f.Param + "_min", f.Param + "_max"}
	}
	return []string{f.Param}
}

func (f Field) checkKind() error {
	switch f.Kind {
	case Exact:
		return nil
	case IContains, IExact:
		if f.Type != TypeText {
			return errors.Errorf("filter %q: %s requires a text field", f.Param, f.Kind)
		}
	case GtOrEq, LtOrEq, Range:
		if f.Type == TypeText {
			return errors.Errorf("filter %q: %s requires an ordered field", f.Param, f.Kind)
		}
	case Year:
		if f.Type != TypeDate {
			return errors.Errorf("filter %q: year requires a date field", f.Param)
		}
	default:
		return errors.Errorf("filter %q: unknown predicate kind %d", f.Param, int(f.Kind))
	}
	return nil
}

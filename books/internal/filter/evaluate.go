package filter

import (
	"net/url"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/Naggafin/bookshelf/books/internal/errs"
)

// Evaluate builds the conjunction of predicates for the supplied query
// parameters. Absent or blank inputs contribute nothing; parameters no field
// consumes are ignored. Every declared field is evaluated even after a
// failure, so the returned *errs.ValidationError reports all bad inputs at
// once. An empty request yields an empty conjunction: the caller applies no
// WHERE clause and gets the full entity set.
func (c *Catalog) Evaluate(params url.Values) (sq.And, error) {
	and := sq.And{}
	verr := errs.NewValidationError()

	for _, f := range c.fields {
		if f.Kind == Range {
			if pred, ok := f.evalRange(params, verr); ok {
				and = append(and, pred)
			}
			continue
		}
		raw := strings.TrimSpace(params.Get(f.Param))
		if raw == "" {
			continue
		}
		v, err := f.parse(raw)
		if err != nil {
			verr.Add(f.Param, err.Error())
			continue
		}
		and = append(and, f.predicate(v))
	}

	if !verr.Empty() {
		return nil, verr
	}
	return and, nil
}

func (f Field) predicate(v any) sq.Sqlizer {
	switch f.Kind {
	case IContains:
		return sq.ILike{f.Column: "%" + escapeLike(v.(string)) + "%"}
	case IExact:
		return sq.Expr("lower("+f.Column+") = lower(?)", v)
	case GtOrEq:
		return sq.GtOrEq{f.Column: v}
	case LtOrEq:
		return sq.LtOrEq{f.Column: v}
	case Year:
		return sq.Expr("date_part('year', "+f.Column+") = ?", v)
	default:
		return sq.Eq{f.Column: v}
	}
}

// evalRange handles the two-input inclusive interval. Supplying only one
// bound is a validation error, not a half-open range.
func (f Field) evalRange(params url.Values, verr *errs.ValidationError) (sq.Sqlizer, bool) {
	loParam, hiParam := f.Param+"_min", f.Param+"_max"
	loRaw := strings.TrimSpace(params.Get(loParam))
	hiRaw := strings.TrimSpace(params.Get(hiParam))
	if loRaw == "" && hiRaw == "" {
		return nil, false
	}
	if loRaw == "" || hiRaw == "" {
		verr.Add(f.Param, "range requires both "+loParam+" and "+hiParam)
		return nil, false
	}
	bad := false
	lo, err := f.parse(loRaw)
	if err != nil {
		verr.Add(loParam, err.Error())
		bad = true
	}
	hi, err := f.parse(hiRaw)
	if err != nil {
		verr.Add(hiParam, err.Error())
		bad = true
	}
	if bad {
		return nil, false
	}
	return sq.Expr(f.Column+" between ? and ?", lo, hi), true
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

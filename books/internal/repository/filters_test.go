package repository

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Naggafin/bookshelf/books/internal/errs"
	"github.com/Naggafin/bookshelf/books/internal/model"
)

func TestBookCatalog_TitleAndMaxPrice(t *testing.T) {
	t.Parallel()

	pred, err := bookCatalog.Evaluate(url.Values{
		"title":     {"dune"},
		"max_price": {"10.00"},
	})
	require.NoError(t, err)

	q := bookQuery()
	if len(pred) > 0 {
		q = q.Where(pred)
	}
	query, args, err := q.ToSql()
	require.NoError(t, err)
	require.Contains(t, query, "b.title ILIKE $1")
	require.Contains(t, query, "b.price <= $2")
	require.Contains(t, query, "JOIN authors a on a.id = b.author_id")
	// LtOrEq unwraps the decimal through driver.Valuer into its Value() string.
	require.Equal(t, []any{"%dune%", "10"}, args)
}

func TestBookCatalog_GenreEnum(t *testing.T) {
	t.Parallel()

	pred, err := bookCatalog.Evaluate(url.Values{"genre": {"sci"}})
	require.NoError(t, err)

	query, args, err := pred.ToSql()
	require.NoError(t, err)
	require.Equal(t, "(b.genre = ?)", query)
	require.Equal(t, []any{model.GenreSciFi}, args)

	_, err = bookCatalog.Evaluate(url.Values{"genre": {"xyz"}})
	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields["genre"], "unknown genre code")
}

func TestBookCatalog_Identity(t *testing.T) {
	t.Parallel()

	pred, err := bookCatalog.Evaluate(url.Values{})
	require.NoError(t, err)
	require.Empty(t, pred)

	// No predicates means the base query goes out without a WHERE clause.
	query, _, err := bookQuery().ToSql()
	require.NoError(t, err)
	require.NotContains(t, query, "WHERE")
}

func TestAuthorCatalog_Name(t *testing.T) {
	t.Parallel()

	pred, err := authorCatalog.Evaluate(url.Values{"name": {"Herbert"}})
	require.NoError(t, err)

	query, args, err := pred.ToSql()
	require.NoError(t, err)
	require.Equal(t, "(a.name ILIKE ?)", query)
	require.Equal(t, []any{"%Herbert%"}, args)
}

func TestBookCatalog_ValidationSurfacing(t *testing.T) {
	t.Parallel()

	_, err := bookCatalog.Evaluate(url.Values{"min_price": {"abc"}})
	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "min_price")
}

package repository

import (
	"github.com/Naggafin/bookshelf/books/internal/filter"
	"github.com/Naggafin/bookshelf/books/internal/model"
)

// Filter catalogs for the two entities, built once at load time. Book columns
// include the joined author alias, so the synthetic author filter traverses
// the relationship without any query-time path resolution.

var bookColumns = []string{
	"b.id", "b.title", "b.author_id", "a.name",
	"b.genre", "b.publication_date", "b.isbn", "b.price",
}

var authorColumns = []string{"a.id", "a.name"}

var bookCatalog = filter.MustCatalog(bookColumns,
	filter.Field{Param: "title", Column: "b.title", Kind: filter.IContains, Type: filter.TypeText},
	filter.Field{Param: "author", Column: "a.name", Kind: filter.IContains, Type: filter.TypeText},
	filter.Field{Param: "genre", Column: "b.genre", Kind: filter.Exact, Type: filter.TypeText, Parse: parseGenre},
	filter.Field{Param: "publication_date_year", Column: "b.publication_date", Kind: filter.Year, Type: filter.TypeDate},
	filter.Field{Param: "publication_date", Column: "b.publication_date", Kind: filter.Range, Type: filter.TypeDate},
	filter.Field{Param: "isbn", Column: "b.isbn", Kind: filter.IExact, Type: filter.TypeText, Parse: filter.TextMax(13)},
	filter.Field{Param: "price", Column: "b.price", Kind: filter.Exact, Type: filter.TypeDecimal},
	filter.Field{Param: "min_price", Column: "b.price", Kind: filter.GtOrEq, Type: filter.TypeDecimal},
	filter.Field{Param: "max_price", Column: "b.price", Kind: filter.LtOrEq, Type: filter.TypeDecimal},
)

var authorCatalog = filter.MustCatalog(authorColumns,
	filter.Field{Param: "name", Column: "a.name", Kind: filter.IContains, Type: filter.TypeText},
)

func parseGenre(raw string) (any, error) {
	g, err := model.ParseGenre(raw)
	if err != nil {
		return nil, err
	}
	return g, nil
}

package handler

import (
	"embed"
	"html/template"
	"io"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Naggafin/bookshelf/books/internal/errs"
	"github.com/Naggafin/bookshelf/books/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

type renderer struct {
	templates *template.Template
}

func newRenderer() *renderer {
	return &renderer{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

func (r *renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

type bookPage struct {
	Books  []model.Book
	Genres []model.Genre
	Query  url.Values
	Errors map[string]string
}

type authorPage struct {
	Authors []model.Author
	Query   url.Values
	Errors  map[string]string
}

// BookListPage renders the filterable book table. A bad filter re-renders the
// page with per-field messages instead of results.
func (h *Handler) BookListPage(c echo.Context) error {
	params := c.QueryParams()
	page := bookPage{Genres: model.Genres(), Query: params}

	books, err := h.catalogSvc.ListBooks(c.Request().Context(), params)
	if err != nil {
		var verr *errs.ValidationError
		if errors.As(err, &verr) {
			page.Errors = verr.Fields
			return c.Render(http.StatusBadRequest, "books.html", page)
		}
		return httpError(err)
	}
	h.audit.SearchPerformed("books", params)
	page.Books = books
	return c.Render(http.StatusOK, "books.html", page)
}

func (h *Handler) AuthorListPage(c echo.Context) error {
	params := c.QueryParams()
	page := authorPage{Query: params}

	authors, err := h.catalogSvc.ListAuthors(c.Request().Context(), params)
	if err != nil {
		var verr *errs.ValidationError
		if errors.As(err, &verr) {
			page.Errors = verr.Fields
			return c.Render(http.StatusBadRequest, "authors.html", page)
		}
		return httpError(err)
	}
	h.audit.SearchPerformed("authors", params)
	page.Authors = authors
	return c.Render(http.StatusOK, "authors.html", page)
}

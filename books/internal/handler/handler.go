package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Naggafin/bookshelf/books/internal/errs"
	md "github.com/Naggafin/bookshelf/pkg/middleware"
	"github.com/Naggafin/bookshelf/pkg/validate"
	_ "github.com/Naggafin/bookshelf/swagger"
)

type Handler struct {
	catalogSvc CatalogService
	audit      Auditor
	log        *zap.Logger
}

func New(catalogSvc CatalogService, audit Auditor, log *zap.Logger) *Handler {
	return &Handler{
		catalogSvc: catalogSvc,
		audit:      audit,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions, http.MethodHead},
	}))
	e.Validator = validate.NewCustomValidator()
	e.Renderer = newRenderer()

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	pages := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		md.NewRateLimiter(baseRPS),
	)
	pages.GET("/", h.Index)
	pages.GET("/books", h.BookListPage)
	pages.GET("/authors", h.AuthorListPage)

	api := e.Group("/api",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	api.GET("/books", h.ListBooks)
	api.GET("/books/:id", h.GetBook)
	api.GET("/authors", h.ListAuthors)
	api.GET("/authors/:id", h.GetAuthor)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Index forwards the application root to the book listing page.
func (h *Handler) Index(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/books")
}

// ListBooks godoc
// @Summary  Filtered book listing
// @Tags     books
// @Param    title                  query string false "case-insensitive substring"
// @Param    author                 query string false "author name, case-insensitive substring"
// @Param    genre                  query string false "genre code (hor|rom|adv|fan|sci|non)"
// @Param    publication_date_year  query int    false "publication year"
// @Param    publication_date_min   query string false "range low bound (2006-01-02)"
// @Param    publication_date_max   query string false "range high bound (2006-01-02)"
// @Param    isbn                   query string false "case-insensitive exact ISBN"
// @Param    price                  query number false "exact price"
// @Param    min_price              query number false "price >="
// @Param    max_price              query number false "price <="
// @Success  200 {array} model.Book
// @Failure  400 {object} errs.ValidationErrorResponse
// @Router   /api/books [get]
func (h *Handler) ListBooks(c echo.Context) error {
	ctx := c.Request().Context()
	params := c.QueryParams()

	books, err := h.catalogSvc.ListBooks(ctx, params)
	if err != nil {
		return httpError(err)
	}
	h.audit.SearchPerformed("books", params)
	return c.JSON(http.StatusOK, books)
}

// GetBook godoc
// @Summary  Single book by id
// @Tags     books
// @Param    id path int true "book id"
// @Success  200 {object} model.Book
// @Failure  404 {object} echo.HTTPError
// @Router   /api/books/{id} [get]
func (h *Handler) GetBook(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("id is invalid"))
	}
	book, err := h.catalogSvc.GetBook(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// ListAuthors godoc
// @Summary  Filtered author listing, books nested
// @Tags     authors
// @Param    name query string false "case-insensitive substring"
// @Success  200 {array} model.Author
// @Failure  400 {object} errs.ValidationErrorResponse
// @Router   /api/authors [get]
func (h *Handler) ListAuthors(c echo.Context) error {
	ctx := c.Request().Context()
	params := c.QueryParams()

	authors, err := h.catalogSvc.ListAuthors(ctx, params)
	if err != nil {
		return httpError(err)
	}
	h.audit.SearchPerformed("authors", params)
	return c.JSON(http.StatusOK, authors)
}

// GetAuthor godoc
// @Summary  Single author by id, books nested
// @Tags     authors
// @Param    id path int true "author id"
// @Success  200 {object} model.Author
// @Failure  404 {object} echo.HTTPError
// @Router   /api/authors/{id} [get]
func (h *Handler) GetAuthor(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("id is invalid"))
	}
	author, err := h.catalogSvc.GetAuthor(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, author)
}

// httpError maps the service error taxonomy onto HTTP statuses. Validation
// failures keep their per-field detail in the response body.
func httpError(err error) error {
	var verr *errs.ValidationError
	if errors.As(err, &verr) {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ValidationErrorResponse{
			Message: "invalid filter parameters",
			Errors:  verr.Fields,
		})
	}
	if errors.Is(err, errs.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	if errors.Is(err, errs.ErrStoreUnavailable) {
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

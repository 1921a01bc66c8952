package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Naggafin/bookshelf/books/internal/errs"
	"github.com/Naggafin/bookshelf/books/internal/handler"
	"github.com/Naggafin/bookshelf/books/internal/model"
	"github.com/Naggafin/bookshelf/pkg/validate"

	service_mocks "github.com/Naggafin/bookshelf/books/internal/handler/mocks"
)

func dune() model.Book {
	return model.Book{
		ID:              1,
		Title:           "Dune",
		AuthorID:        1,
		Author:          "Frank Herbert",
		Genre:           model.GenreSciFi,
		PublicationDate: model.NewDate(1965, time.August, 1),
		ISBN:            "9780441013593",
		Price:           decimal.RequireFromString("9.99"),
	}
}

func TestHandler_ListBooks(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCatalogService)

	var tests = []struct {
		name         string
		query        string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:  "ok. filtered",
			query: "title=dune&max_price=10.00",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					ListBooks(context.Background(), url.Values{"title": {"dune"}, "max_price": {"10.00"}}).
					Return([]model.Book{dune()}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[{"id":1,"title":"Dune","author":"Frank Herbert","genre":"sci","publication_date":"1965-08-01","isbn":"9780441013593","price":"9.99"}]`,
			},
		},
		{
			name:  "ok. empty result",
			query: "title=nothing",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					ListBooks(context.Background(), url.Values{"title": {"nothing"}}).
					Return([]model.Book{}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[]`,
			},
		},
		{
			name:  "err. validation",
			query: "min_price=abc",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				verr := errs.NewValidationError()
				verr.Add("min_price", `"abc" is not a decimal number`)
				r.EXPECT().
					ListBooks(context.Background(), url.Values{"min_price": {"abc"}}).
					Return(nil, verr)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"invalid filter parameters","errors":{"min_price":"\"abc\" is not a decimal number"}}`,
			},
		},
		{
			name:  "err. store unavailable",
			query: "",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					ListBooks(context.Background(), url.Values{}).
					Return(nil, errs.ErrStoreUnavailable)
			},
			response: response{
				expectedCode: http.StatusServiceUnavailable,
				expectedBody: `{"message":"store unavailable"}`,
			},
		},
		{
			name:  "err. internal",
			query: "",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					ListBooks(context.Background(), url.Values{}).
					Return(nil, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCatalogService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, handler.NewAuditor(nil, log), log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/api/books", h.ListBooks)

			target := "/api/books"
			if tt.query != "" {
				target += "?" + tt.query
			}
			r := httptest.NewRequest(http.MethodGet, target, http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.JSONEq(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_GetBook(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCatalogService)

	var tests = []struct {
		name         string
		id           string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			id:   "1",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					GetBook(context.Background(), 1).
					Return(dune(), nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":1,"title":"Dune","author":"Frank Herbert","genre":"sci","publication_date":"1965-08-01","isbn":"9780441013593","price":"9.99"}`,
			},
		},
		{
			name: "err. not found",
			id:   "42",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					GetBook(context.Background(), 42).
					Return(model.Book{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
		{
			name:         "err. bad id",
			id:           "abc",
			mockBehavior: func(r *service_mocks.MockCatalogService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"id is invalid"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCatalogService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, handler.NewAuditor(nil, log), log)

			e := echo.New()
			e.GET("/api/books/:id", h.GetBook)

			r := httptest.NewRequest(http.MethodGet, "/api/books/"+tt.id, http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.JSONEq(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ListAuthors(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCatalogService(c)
	log := zap.NewExample().Named("test")
	h := handler.New(svc, handler.NewAuditor(nil, log), log)

	svc.EXPECT().
		ListAuthors(context.Background(), url.Values{"name": {"herbert"}}).
		Return([]model.Author{{ID: 1, Name: "Frank Herbert", Books: []model.Book{dune()}}}, nil)

	e := echo.New()
	e.GET("/api/authors", h.ListAuthors)

	r := httptest.NewRequest(http.MethodGet, "/api/authors?name=herbert", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t,
		`[{"id":1,"name":"Frank Herbert","published_books":[{"id":1,"title":"Dune","author":"Frank Herbert","genre":"sci","publication_date":"1965-08-01","isbn":"9780441013593","price":"9.99"}]}]`,
		strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_Index_RedirectsToBooks(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCatalogService(c)
	log := zap.NewExample().Named("test")
	h := handler.New(svc, handler.NewAuditor(nil, log), log)

	e := echo.New()
	e.GET("/", h.Index)

	r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/books", w.Header().Get(echo.HeaderLocation))
}

func TestHandler_BookListPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		query        string
		books        []model.Book
		err          error
		expectedCode int
		contains     []string
	}{
		{
			name:         "renders rows with author name and genre label",
			query:        "author=herbert",
			books:        []model.Book{dune()},
			expectedCode: http.StatusOK,
			contains:     []string{"Dune", "Frank Herbert", "Science Fiction", "9780441013593"},
		},
		{
			name:         "empty result renders placeholder row",
			query:        "title=nothing",
			books:        []model.Book{},
			expectedCode: http.StatusOK,
			contains:     []string{"No books found."},
		},
		{
			name:  "validation errors rendered per field",
			query: "min_price=abc",
			err: func() error {
				verr := errs.NewValidationError()
				verr.Add("min_price", `"abc" is not a decimal number`)
				return verr
			}(),
			expectedCode: http.StatusBadRequest,
			contains:     []string{"min_price", "is not a decimal number"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCatalogService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, handler.NewAuditor(nil, log), log)

			svc.EXPECT().
				ListBooks(context.Background(), gomock.Any()).
				Return(tt.books, tt.err)

			e := h.NewRouter()

			r := httptest.NewRequest(http.MethodGet, "/books?"+tt.query, http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Contains(t, w.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)
			for _, want := range tt.contains {
				require.Contains(t, w.Body.String(), want)
			}
		})
	}
}

func TestHandler_AuthorListPage(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCatalogService(c)
	log := zap.NewExample().Named("test")
	h := handler.New(svc, handler.NewAuditor(nil, log), log)

	svc.EXPECT().
		ListAuthors(context.Background(), gomock.Any()).
		Return([]model.Author{{ID: 1, Name: "Frank Herbert", Books: []model.Book{dune()}}}, nil)

	e := h.NewRouter()

	r := httptest.NewRequest(http.MethodGet, "/authors", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Frank Herbert")
	require.Contains(t, w.Body.String(), "Dune")
}

package handler

import (
	"context"
	"net/url"

	"github.com/Naggafin/bookshelf/books/internal/model"
	"github.com/Naggafin/bookshelf/books/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CatalogService interface {
	ListBooks(ctx context.Context, params url.Values) ([]model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	ListAuthors(ctx context.Context, params url.Values) ([]model.Author, error)
	GetAuthor(ctx context.Context, id int) (model.Author, error)
}

var _ CatalogService = (*service.Service)(nil)

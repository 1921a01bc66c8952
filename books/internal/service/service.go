package service

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"github.com/Naggafin/bookshelf/books/internal/model"
	"github.com/Naggafin/bookshelf/books/internal/repository"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
}

func NewService(repo repository.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

func (s *Service) ListBooks(ctx context.Context, params url.Values) ([]model.Book, error) {
	return s.repo.ListBooks(ctx, params)
}

func (s *Service) GetBook(ctx context.Context, id int) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) ListAuthors(ctx context.Context, params url.Values) ([]model.Author, error) {
	return s.repo.ListAuthors(ctx, params)
}

func (s *Service) GetAuthor(ctx context.Context, id int) (model.Author, error) {
	return s.repo.GetAuthor(ctx, id)
}

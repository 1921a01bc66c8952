package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"net"
	"net/url"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	sq "github.com/Masterminds/squirrel"

	"github.com/Naggafin/bookshelf/books/internal/errs"
	"github.com/Naggafin/bookshelf/books/internal/model"
)

type Repository interface {
	ListBooks(ctx context.Context, params url.Values) ([]model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	ListAuthors(ctx context.Context, params url.Values) ([]model.Author, error)
	GetAuthor(ctx context.Context, id int) (model.Author, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	authorsTableName = `authors`
	booksTableName   = `books`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func bookQuery() sq.SelectBuilder {
	return qb.Select("b.id", "b.title", "b.author_id", "a.name as author",
		"b.genre", "b.publication_date", "b.isbn", "b.price").
		From(booksTableName + " b").
		Join(authorsTableName + " a on a.id = b.author_id")
}

func (r *repository) ListBooks(ctx context.Context, params url.Values) ([]model.Book, error) {
	pred, err := bookCatalog.Evaluate(params)
	if err != nil {
		return nil, err
	}
	q := bookQuery().OrderBy("b.id")
	if len(pred) > 0 {
		q = q.Where(pred)
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListBooks", zap.String("query", query), zap.Any("args", args))

	books := make([]model.Book, 0)
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, storeErr(err)
	}
	return books, nil
}

func (r *repository) GetBook(ctx context.Context, id int) (model.Book, error) {
	query, args, err := bookQuery().
		Where(sq.Eq{"b.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		return model.Book{}, storeErr(err)
	}
	return book, nil
}

func (r *repository) ListAuthors(ctx context.Context, params url.Values) ([]model.Author, error) {
	pred, err := authorCatalog.Evaluate(params)
	if err != nil {
		return nil, err
	}
	q := qb.Select("a.id", "a.name").
		From(authorsTableName + " a").
		OrderBy("a.id")
	if len(pred) > 0 {
		q = q.Where(pred)
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListAuthors", zap.String("query", query), zap.Any("args", args))

	authors := make([]model.Author, 0)
	if err := r.db.SelectContext(ctx, &authors, query, args...); err != nil {
		return nil, storeErr(err)
	}
	if len(authors) == 0 {
		return authors, nil
	}

	ids := make([]int, 0, len(authors))
	for _, a := range authors {
		ids = append(ids, a.ID)
	}
	books, err := r.booksByAuthors(ctx, ids)
	if err != nil {
		return nil, err
	}
	byAuthor := make(map[int][]model.Book, len(authors))
	for _, b := range books {
		byAuthor[b.AuthorID] = append(byAuthor[b.AuthorID], b)
	}
	for i := range authors {
		authors[i].Books = byAuthor[authors[i].ID]
		if authors[i].Books == nil {
			authors[i].Books = make([]model.Book, 0)
		}
	}
	return authors, nil
}

func (r *repository) GetAuthor(ctx context.Context, id int) (model.Author, error) {
	query, args, err := qb.Select("a.id", "a.name").
		From(authorsTableName + " a").
		Where(sq.Eq{"a.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Author{}, err
	}

	// The author row and its books are independent reads.
	var (
		author model.Author
		books  []model.Book
	)
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		if err := r.db.GetContext(ctx, &author, query, args...); err != nil {
			return storeErr(err)
		}
		return nil
	})
	gg.Go(func() error {
		var err error
		books, err = r.booksByAuthors(ctx, []int{id})
		return err
	})
	if err := gg.Wait(); err != nil {
		return model.Author{}, err
	}
	author.Books = books
	return author, nil
}

func (r *repository) booksByAuthors(ctx context.Context, ids []int) ([]model.Book, error) {
	query, args, err := bookQuery().
		Where(sq.Eq{"b.author_id": ids}).
		OrderBy("b.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	books := make([]model.Book, 0)
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, storeErr(err)
	}
	return books, nil
}

// storeErr translates driver failures into the service error taxonomy:
// missing rows map to ErrNotFound, connection-class postgres errors and dead
// connections to ErrStoreUnavailable.
func storeErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return errs.ErrNotFound
	}
	if errors.Is(err, driver.ErrBadConn) {
		return errs.ErrStoreUnavailable
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsConnectionException(pgErr.Code) {
		return errs.ErrStoreUnavailable
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errs.ErrStoreUnavailable
	}
	return err
}

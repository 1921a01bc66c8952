package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Author struct {
	ID    int    `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Books []Book `json:"published_books" db:"-"`
}

type Book struct {
	ID              int             `json:"id" db:"id"`
	Title           string          `json:"title" db:"title"`
	AuthorID        int             `json:"-" db:"author_id"`
	Author          string          `json:"author" db:"author"`
	Genre           Genre           `json:"genre" db:"genre"`
	PublicationDate Date            `json:"publication_date" db:"publication_date"`
	ISBN            string          `json:"isbn" db:"isbn"`
	Price           decimal.Decimal `json:"price" db:"price"`
}

// Genre is the stored three-letter genre code.
type Genre string

const (
	GenreHorror     Genre = "hor"
	GenreRomance    Genre = "rom"
	GenreAdventure  Genre = "adv"
	GenreFantasy    Genre = "fan"
	GenreSciFi      Genre = "sci"
	GenreNonFiction Genre = "non"
)

var genreLabels = map[Genre]string{
	GenreHorror:     "Horror",
	GenreRomance:    "Romance",
	GenreAdventure:  "Adventure",
	GenreFantasy:    "Fantasy",
	GenreSciFi:      "Science Fiction",
	GenreNonFiction: "Non-fiction",
}

// Genres lists the codes in display order.
func Genres() []Genre {
	return []Genre{GenreHorror, GenreRomance, GenreAdventure, GenreFantasy, GenreSciFi, GenreNonFiction}
}

func ParseGenre(code string) (Genre, error) {
	g := Genre(code)
	if _, ok := genreLabels[g]; !ok {
		return "", fmt.Errorf("unknown genre code %q", code)
	}
	return g, nil
}

func (g Genre) Label() string {
	return genreLabels[g]
}

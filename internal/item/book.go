package item

import (
	"errors"
	"fmt"
	"strings"

	"github.com/eugenenazirov/moving-manager/internal/packable"
)

var bookDimensions = packable.Dimensions{W: 20, H: 20, L: 5}

// Book is a fiction or non-fiction book.
type Book struct {
	personalItem
	title   string
	fiction bool
}

// NewBook creates a book owned by owner.
func NewBook(owner, title string, fiction bool) (*Book, error) {
	base, ownerErr := newPersonalItem(owner)
	var titleErr error
	if strings.TrimSpace(title) == "" {
		titleErr = newRequiredError("title")
	}
	if err := errors.Join(ownerErr, titleErr); err != nil {
		return nil, err
	}

	base.dims = bookDimensions
	return &Book{personalItem: base, title: title, fiction: fiction}, nil
}

// Title returns the book title.
func (b *Book) Title() string {
	return b.title
}

// Fiction reports whether the book is a work of fiction.
func (b *Book) Fiction() bool {
	return b.fiction
}

func (b *Book) String() string {
	genre := "Non-Fiction"
	if b.fiction {
		genre = "Fiction"
	}
	return fmt.Sprintf("Book (%s) Title: %s (%s)", b.owner, b.title, genre)
}

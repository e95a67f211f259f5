package model

import "github.com/google/uuid"

// Book is a written work that can be under contract with many authors
type Book struct {
	id      uuid.UUID
	title   string
	catalog *Catalog
}

// NewBook validates title, registers a new book and returns it.
// An empty title is allowed; a title that is not UTF-8 text is not.
func (c *Catalog) NewBook(title string) (*Book, error) {
	if err := check(FieldTitle, title, titleRules...); err != nil {
		return nil, err
	}

	b := &Book{
		id:      uuid.New(),
		title:   title,
		catalog: c,
	}
	c.books = append(c.books, b)
	c.bookIndex[b.id] = b
	return b, nil
}

func (b *Book) ID() uuid.UUID { return b.id }

func (b *Book) Title() string { return b.title }

// SetTitle replaces the title, keeping the previous one when the new value is invalid
func (b *Book) SetTitle(title string) error {
	if err := check(FieldTitle, title, titleRules...); err != nil {
		return err
	}
	b.title = title
	return nil
}

// Contracts returns the contracts signed for this book in registry order
func (b *Book) Contracts() []*Contract {
	return b.catalog.filterContracts(func(ct *Contract) bool { return ct.book == b })
}

// Authors returns the author of each contract in Contracts order, duplicates kept
func (b *Book) Authors() []*Author {
	contracts := b.Contracts()
	authors := make([]*Author, 0, len(contracts))
	for _, ct := range contracts {
		authors = append(authors, ct.author)
	}
	return authors
}

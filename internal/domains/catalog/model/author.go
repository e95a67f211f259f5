package model

import "github.com/google/uuid"

// Author is a writer who signs contracts for books.
// Identity is the pointer; ID is a stable handle for lookups.
type Author struct {
	id      uuid.UUID
	name    string
	catalog *Catalog
}

// NewAuthor validates name, registers a new author and returns it.
// On failure the author registry is unchanged.
func (c *Catalog) NewAuthor(name string) (*Author, error) {
	if err := check(FieldName, name, nameRules...); err != nil {
		return nil, err
	}

	a := &Author{
		id:      uuid.New(),
		name:    name,
		catalog: c,
	}
	c.authors = append(c.authors, a)
	c.authorIndex[a.id] = a
	return a, nil
}

func (a *Author) ID() uuid.UUID { return a.id }

func (a *Author) Name() string { return a.name }

// SetName replaces the name, keeping the previous one when the new value is invalid
func (a *Author) SetName(name string) error {
	if err := check(FieldName, name, nameRules...); err != nil {
		return err
	}
	a.name = name
	return nil
}

// Contracts returns this author's contracts in registry order
func (a *Author) Contracts() []*Contract {
	return a.catalog.filterContracts(func(ct *Contract) bool { return ct.author == a })
}

// Books returns the book of each contract in Contracts order.
// A book signed twice appears twice.
func (a *Author) Books() []*Book {
	contracts := a.Contracts()
	books := make([]*Book, 0, len(contracts))
	for _, ct := range contracts {
		books = append(books, ct.book)
	}
	return books
}

// SignContract creates and registers a contract between this author and book
func (a *Author) SignContract(book *Book, date string, royalties int64) (*Contract, error) {
	if a.catalog == nil {
		return nil, newValidationError(FieldAuthor, msgNotAuthor)
	}
	return a.catalog.NewContract(a, book, date, royalties)
}

// TotalRoyalties sums royalties across Contracts; zero when there are none
func (a *Author) TotalRoyalties() int64 {
	var total int64
	for _, ct := range a.Contracts() {
		total += ct.royalties
	}
	return total
}

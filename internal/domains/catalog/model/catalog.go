package model

import "github.com/google/uuid"

// Catalog owns the author, book and contract registries.
//
// Registries are append-only: entities are never removed for the lifetime of
// the catalog. Relationship queries scan the contract registry in insertion
// order. A Catalog is not safe for concurrent use; callers that share one
// across goroutines must synchronise access themselves.
type Catalog struct {
	authors   []*Author
	books     []*Book
	contracts []*Contract

	authorIndex   map[uuid.UUID]*Author
	bookIndex     map[uuid.UUID]*Book
	contractIndex map[uuid.UUID]*Contract
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		authors:       []*Author{},
		books:         []*Book{},
		contracts:     []*Contract{},
		authorIndex:   make(map[uuid.UUID]*Author),
		bookIndex:     make(map[uuid.UUID]*Book),
		contractIndex: make(map[uuid.UUID]*Contract),
	}
}

// Authors returns every registered author in creation order
func (c *Catalog) Authors() []*Author {
	return append([]*Author{}, c.authors...)
}

// Books returns every registered book in creation order
func (c *Catalog) Books() []*Book {
	return append([]*Book{}, c.books...)
}

// Contracts returns every registered contract in creation order
func (c *Catalog) Contracts() []*Contract {
	return append([]*Contract{}, c.contracts...)
}

// AuthorByID looks up a registered author
func (c *Catalog) AuthorByID(id uuid.UUID) (*Author, error) {
	a, ok := c.authorIndex[id]
	if !ok {
		return nil, ErrAuthorNotFound
	}
	return a, nil
}

// BookByID looks up a registered book
func (c *Catalog) BookByID(id uuid.UUID) (*Book, error) {
	b, ok := c.bookIndex[id]
	if !ok {
		return nil, ErrBookNotFound
	}
	return b, nil
}

// ContractByID looks up a registered contract
func (c *Catalog) ContractByID(id uuid.UUID) (*Contract, error) {
	ct, ok := c.contractIndex[id]
	if !ok {
		return nil, ErrContractNotFound
	}
	return ct, nil
}

// ContractsByDate returns the contracts whose date equals date exactly.
// The result is empty, never nil, when nothing matches.
func (c *Catalog) ContractsByDate(date string) []*Contract {
	return c.filterContracts(func(ct *Contract) bool { return ct.date == date })
}

func (c *Catalog) filterContracts(keep func(*Contract) bool) []*Contract {
	matched := []*Contract{}
	if c == nil {
		return matched
	}
	for _, ct := range c.contracts {
		if keep(ct) {
			matched = append(matched, ct)
		}
	}
	return matched
}

package model

import "github.com/google/uuid"

// Contract joins one Author and one Book and carries the signing date and
// royalty amount. Every field is re-validated on assignment, so a contract is
// never observably invalid.
type Contract struct {
	id        uuid.UUID
	author    *Author
	book      *Book
	date      string // Free-form, no format enforced
	royalties int64  // Whole amount; zero and negative values are allowed
	catalog   *Catalog
}

// ContractPatch lists the fields to change on a contract; nil means unchanged
type ContractPatch struct {
	Author    *Author
	Book      *Book
	Date      *string
	Royalties *int64
}

// NewContract validates author, book and date in that order and registers the
// contract. The first failing field aborts construction and nothing is registered.
func (c *Catalog) NewContract(author *Author, book *Book, date string, royalties int64) (*Contract, error) {
	if err := check(FieldAuthor, author, c.authorRules()...); err != nil {
		return nil, err
	}
	if err := check(FieldBook, book, c.bookRules()...); err != nil {
		return nil, err
	}
	if err := check(FieldDate, date, dateRules...); err != nil {
		return nil, err
	}

	ct := &Contract{
		id:        uuid.New(),
		author:    author,
		book:      book,
		date:      date,
		royalties: royalties,
		catalog:   c,
	}
	c.contracts = append(c.contracts, ct)
	c.contractIndex[ct.id] = ct
	return ct, nil
}

func (ct *Contract) ID() uuid.UUID    { return ct.id }
func (ct *Contract) Author() *Author  { return ct.author }
func (ct *Contract) Book() *Book      { return ct.book }
func (ct *Contract) Date() string     { return ct.date }
func (ct *Contract) Royalties() int64 { return ct.royalties }

// SetAuthor reassigns the contract; the previous author is kept on failure
func (ct *Contract) SetAuthor(author *Author) error {
	if err := check(FieldAuthor, author, ct.catalog.authorRules()...); err != nil {
		return err
	}
	ct.author = author
	return nil
}

// SetBook reassigns the contract; the previous book is kept on failure
func (ct *Contract) SetBook(book *Book) error {
	if err := check(FieldBook, book, ct.catalog.bookRules()...); err != nil {
		return err
	}
	ct.book = book
	return nil
}

// SetDate replaces the date; the previous date is kept on failure
func (ct *Contract) SetDate(date string) error {
	if err := check(FieldDate, date, dateRules...); err != nil {
		return err
	}
	ct.date = date
	return nil
}

// SetRoyalties replaces the royalty amount. Any int64 is a whole number,
// so there is nothing to reject.
func (ct *Contract) SetRoyalties(royalties int64) {
	ct.royalties = royalties
}

// Apply validates every field present in p and only then assigns them.
// When any field fails, the contract is left untouched.
func (ct *Contract) Apply(p ContractPatch) error {
	if p.Author != nil {
		if err := check(FieldAuthor, p.Author, ct.catalog.authorRules()...); err != nil {
			return err
		}
	}
	if p.Book != nil {
		if err := check(FieldBook, p.Book, ct.catalog.bookRules()...); err != nil {
			return err
		}
	}
	if p.Date != nil {
		if err := check(FieldDate, *p.Date, dateRules...); err != nil {
			return err
		}
	}

	if p.Author != nil {
		ct.author = p.Author
	}
	if p.Book != nil {
		ct.book = p.Book
	}
	if p.Date != nil {
		ct.date = *p.Date
	}
	if p.Royalties != nil {
		ct.royalties = *p.Royalties
	}
	return nil
}

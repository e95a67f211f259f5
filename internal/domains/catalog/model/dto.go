package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// ========================================
// REQUEST DTOs
// ========================================

// CreateAuthorRequest - new author
type CreateAuthorRequest struct {
	Name string `json:"name"`
}

func (r CreateAuthorRequest) Validate() error {
	return fromStructErrors(validation.ValidateStruct(&r,
		validation.Field(&r.Name, nameRules...),
	))
}

// CreateBookRequest - new book
type CreateBookRequest struct {
	Title string `json:"title"`
}

func (r CreateBookRequest) Validate() error {
	return fromStructErrors(validation.ValidateStruct(&r,
		validation.Field(&r.Title, titleRules...),
	))
}

// SignContractRequest - author signs a contract for a book
type SignContractRequest struct {
	AuthorID  uuid.UUID `json:"author_id"`
	BookID    uuid.UUID `json:"book_id"`
	Date      string    `json:"date"`
	Royalties int64     `json:"royalties"` // Negative values allowed (adjustments)
}

func (r SignContractRequest) Validate() error {
	return fromStructErrors(validation.ValidateStruct(&r,
		validation.Field(&r.AuthorID, validation.NotIn(uuid.Nil).Error(msgMissingID)),
		validation.Field(&r.BookID, validation.NotIn(uuid.Nil).Error(msgMissingID)),
		validation.Field(&r.Date, dateRules...),
	))
}

// UpdateContractRequest - partial update, nil fields are left unchanged
type UpdateContractRequest struct {
	AuthorID  *uuid.UUID `json:"author_id,omitempty"`
	BookID    *uuid.UUID `json:"book_id,omitempty"`
	Date      *string    `json:"date,omitempty"`
	Royalties *int64     `json:"royalties,omitempty"`
}

func (r UpdateContractRequest) Validate() error {
	if r.IsEmpty() {
		return newValidationError("request", msgEmptyUpdate)
	}
	return fromStructErrors(validation.ValidateStruct(&r,
		validation.Field(&r.AuthorID, validation.NotIn(uuid.Nil).Error(msgMissingID)),
		validation.Field(&r.BookID, validation.NotIn(uuid.Nil).Error(msgMissingID)),
		validation.Field(&r.Date, dateRules...),
	))
}

// IsEmpty reports whether the request changes nothing
func (r UpdateContractRequest) IsEmpty() bool {
	return r.AuthorID == nil && r.BookID == nil && r.Date == nil && r.Royalties == nil
}

// ========================================
// RESPONSE DTOs
// ========================================

type AuthorResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// AuthorDetailResponse - author with derived views
type AuthorDetailResponse struct {
	AuthorResponse
	Books          []BookResponse `json:"books"` // One entry per contract, duplicates kept
	ContractCount  int            `json:"contract_count"`
	TotalRoyalties int64          `json:"total_royalties"`
}

type BookResponse struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

// BookDetailResponse - book with the authors under contract for it
type BookDetailResponse struct {
	BookResponse
	Authors       []AuthorResponse `json:"authors"`
	ContractCount int              `json:"contract_count"`
}

type ContractResponse struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"author_id"`
	BookID    uuid.UUID `json:"book_id"`
	Date      string    `json:"date"`
	Royalties int64     `json:"royalties"`
}

// Conversion methods

func (a *Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{ID: a.id, Name: a.name}
}

// ToDetailResponse converts Author with its books and royalty total
func (a *Author) ToDetailResponse() *AuthorDetailResponse {
	books := a.Books()
	resp := &AuthorDetailResponse{
		AuthorResponse: *a.ToResponse(),
		Books:          make([]BookResponse, 0, len(books)),
		ContractCount:  len(books),
		TotalRoyalties: a.TotalRoyalties(),
	}
	for _, b := range books {
		resp.Books = append(resp.Books, *b.ToResponse())
	}
	return resp
}

func (b *Book) ToResponse() *BookResponse {
	return &BookResponse{ID: b.id, Title: b.title}
}

// ToDetailResponse converts Book with its authors
func (b *Book) ToDetailResponse() *BookDetailResponse {
	authors := b.Authors()
	resp := &BookDetailResponse{
		BookResponse:  *b.ToResponse(),
		Authors:       make([]AuthorResponse, 0, len(authors)),
		ContractCount: len(authors),
	}
	for _, a := range authors {
		resp.Authors = append(resp.Authors, *a.ToResponse())
	}
	return resp
}

func (ct *Contract) ToResponse() *ContractResponse {
	return &ContractResponse{
		ID:        ct.id,
		AuthorID:  ct.author.id,
		BookID:    ct.book.id,
		Date:      ct.date,
		Royalties: ct.royalties,
	}
}

package service

import (
	"bookstore-contracts/internal/domains/catalog/model"

	"github.com/google/uuid"
)

// ServiceInterface defines the catalog operations addressed by identifier.
// Entities are resolved in the injected model.Catalog; results are returned as
// response DTOs so callers never hold mutable entities.
type ServiceInterface interface {
	// CreateAuthor registers a new author
	// Errors: *model.ValidationError
	CreateAuthor(req model.CreateAuthorRequest) (*model.AuthorResponse, error)

	// CreateBook registers a new book
	// Errors: *model.ValidationError
	CreateBook(req model.CreateBookRequest) (*model.BookResponse, error)

	// SignContract has the author sign a contract for the book
	// Errors: *model.ValidationError, ErrAuthorNotFound, ErrBookNotFound
	SignContract(req model.SignContractRequest) (*model.ContractResponse, error)

	// UpdateContract applies a partial update; all given fields are validated
	// before any is written
	// Errors: *model.ValidationError, ErrContractNotFound, ErrAuthorNotFound, ErrBookNotFound
	UpdateContract(id uuid.UUID, req model.UpdateContractRequest) (*model.ContractResponse, error)

	// GetAuthor returns the author with books and total royalties
	GetAuthor(id uuid.UUID) (*model.AuthorDetailResponse, error)

	// GetBook returns the book with its authors
	GetBook(id uuid.UUID) (*model.BookDetailResponse, error)

	// ListContractsByDate returns contracts dated exactly date, in signing order
	ListContractsByDate(date string) []model.ContractResponse

	// RoyaltyStatement reports each contract's royalties and share of the author's total
	RoyaltyStatement(authorID uuid.UUID) (*RoyaltyStatement, error)
}

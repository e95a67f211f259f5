// internal/domains/catalog/service/catalog_service.go
package service

import (
	"bookstore-contracts/internal/domains/catalog/model"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// catalogService implements ServiceInterface on top of a model.Catalog
type catalogService struct {
	catalog *model.Catalog // Registry owner (injected)
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(catalog *model.Catalog) ServiceInterface {
	return &catalogService{
		catalog: catalog,
	}
}

func (s *catalogService) CreateAuthor(req model.CreateAuthorRequest) (*model.AuthorResponse, error) {
	if err := req.Validate(); err != nil {
		log.Warn().Err(err).Msg("create author rejected")
		return nil, err
	}

	a, err := s.catalog.NewAuthor(req.Name)
	if err != nil {
		log.Warn().Err(err).Msg("create author rejected")
		return nil, err
	}

	log.Info().
		Str("author_id", a.ID().String()).
		Str("name", a.Name()).
		Int("registered_authors", len(s.catalog.Authors())).
		Msg("author created")
	return a.ToResponse(), nil
}

func (s *catalogService) CreateBook(req model.CreateBookRequest) (*model.BookResponse, error) {
	if err := req.Validate(); err != nil {
		log.Warn().Err(err).Msg("create book rejected")
		return nil, err
	}

	b, err := s.catalog.NewBook(req.Title)
	if err != nil {
		log.Warn().Err(err).Msg("create book rejected")
		return nil, err
	}

	log.Info().
		Str("book_id", b.ID().String()).
		Str("title", b.Title()).
		Int("registered_books", len(s.catalog.Books())).
		Msg("book created")
	return b.ToResponse(), nil
}

func (s *catalogService) SignContract(req model.SignContractRequest) (*model.ContractResponse, error) {
	if err := req.Validate(); err != nil {
		log.Warn().Err(err).Msg("sign contract rejected")
		return nil, err
	}

	a, err := s.catalog.AuthorByID(req.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("sign contract: author %s: %w", req.AuthorID, err)
	}
	b, err := s.catalog.BookByID(req.BookID)
	if err != nil {
		return nil, fmt.Errorf("sign contract: book %s: %w", req.BookID, err)
	}

	c, err := a.SignContract(b, req.Date, req.Royalties)
	if err != nil {
		log.Warn().Err(err).Str("author_id", req.AuthorID.String()).Msg("sign contract rejected")
		return nil, err
	}

	log.Info().
		Str("contract_id", c.ID().String()).
		Str("author_id", a.ID().String()).
		Str("book_id", b.ID().String()).
		Str("date", c.Date()).
		Int64("royalties", c.Royalties()).
		Msg("contract signed")
	return c.ToResponse(), nil
}

func (s *catalogService) UpdateContract(id uuid.UUID, req model.UpdateContractRequest) (*model.ContractResponse, error) {
	// ═══════════════════════════════════════════════════════════
	// STEP 1: VALIDATE REQUEST + FETCH CURRENT CONTRACT
	// ═══════════════════════════════════════════════════════════
	if err := req.Validate(); err != nil {
		log.Warn().Err(err).Str("contract_id", id.String()).Msg("update contract rejected")
		return nil, err
	}

	c, err := s.catalog.ContractByID(id)
	if err != nil {
		return nil, fmt.Errorf("update contract %s: %w", id, err)
	}

	// ═══════════════════════════════════════════════════════════
	// STEP 2: RESOLVE REFERENCES
	// ═══════════════════════════════════════════════════════════
	patch := model.ContractPatch{
		Date:      req.Date,
		Royalties: req.Royalties,
	}
	if req.AuthorID != nil {
		if patch.Author, err = s.catalog.AuthorByID(*req.AuthorID); err != nil {
			return nil, fmt.Errorf("update contract %s: author %s: %w", id, *req.AuthorID, err)
		}
	}
	if req.BookID != nil {
		if patch.Book, err = s.catalog.BookByID(*req.BookID); err != nil {
			return nil, fmt.Errorf("update contract %s: book %s: %w", id, *req.BookID, err)
		}
	}

	// ═══════════════════════════════════════════════════════════
	// STEP 3: APPLY (ALL OR NOTHING)
	// ═══════════════════════════════════════════════════════════
	if err := c.Apply(patch); err != nil {
		log.Warn().Err(err).Str("contract_id", id.String()).Msg("update contract rejected")
		return nil, err
	}

	log.Info().
		Str("contract_id", id.String()).
		Str("author_id", c.Author().ID().String()).
		Str("book_id", c.Book().ID().String()).
		Str("date", c.Date()).
		Int64("royalties", c.Royalties()).
		Msg("contract updated")
	return c.ToResponse(), nil
}

func (s *catalogService) GetAuthor(id uuid.UUID) (*model.AuthorDetailResponse, error) {
	a, err := s.catalog.AuthorByID(id)
	if err != nil {
		return nil, err
	}
	return a.ToDetailResponse(), nil
}

func (s *catalogService) GetBook(id uuid.UUID) (*model.BookDetailResponse, error) {
	b, err := s.catalog.BookByID(id)
	if err != nil {
		return nil, err
	}
	return b.ToDetailResponse(), nil
}

func (s *catalogService) ListContractsByDate(date string) []model.ContractResponse {
	contracts := s.catalog.ContractsByDate(date)

	result := make([]model.ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		result = append(result, *c.ToResponse())
	}

	log.Debug().Str("date", date).Int("matched", len(result)).Msg("contracts listed by date")
	return result
}

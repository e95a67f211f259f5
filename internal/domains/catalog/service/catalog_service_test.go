package service_test

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-contracts/internal/domains/catalog/model"
	"bookstore-contracts/internal/domains/catalog/service"
)

type seeded struct {
	catalog *model.Catalog
	svc     service.ServiceInterface
	author  *model.AuthorResponse
	book    *model.BookResponse
}

func seed(t *testing.T) seeded {
	t.Helper()
	catalog := model.NewCatalog()
	svc := service.NewCatalogService(catalog)

	author, err := svc.CreateAuthor(model.CreateAuthorRequest{Name: "Jane Austen"})
	require.NoError(t, err)
	book, err := svc.CreateBook(model.CreateBookRequest{Title: "Emma"})
	require.NoError(t, err)

	return seeded{catalog: catalog, svc: svc, author: author, book: book}
}

func Test_Service_Scenario(t *testing.T) {
	s := seed(t)

	contract, err := s.svc.SignContract(model.SignContractRequest{
		AuthorID:  s.author.ID,
		BookID:    s.book.ID,
		Date:      "2020-01-01",
		Royalties: 1000,
	})
	require.NoError(t, err)
	assert.Equal(t, s.author.ID, contract.AuthorID)
	assert.Equal(t, s.book.ID, contract.BookID)

	author, err := s.svc.GetAuthor(s.author.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.BookResponse{*s.book}, author.Books)
	assert.Equal(t, int64(1000), author.TotalRoyalties)

	book, err := s.svc.GetBook(s.book.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.AuthorResponse{*s.author}, book.Authors)

	assert.Equal(t, []model.ContractResponse{*contract}, s.svc.ListContractsByDate("2020-01-01"))
	assert.Empty(t, s.svc.ListContractsByDate("2020-01-02"))
}

func Test_Service_CreateRejectsInvalidInput(t *testing.T) {
	s := seed(t)

	_, err := s.svc.CreateAuthor(model.CreateAuthorRequest{Name: ""})
	assert.ErrorIs(t, err, model.ErrValidation)
	assert.Len(t, s.catalog.Authors(), 1)

	_, err = s.svc.CreateBook(model.CreateBookRequest{Title: "\xff"})
	assert.ErrorIs(t, err, model.ErrValidation)
	assert.Len(t, s.catalog.Books(), 1)
}

func Test_Service_SignContract_Errors(t *testing.T) {
	s := seed(t)

	tests := []struct {
		name    string
		req     model.SignContractRequest
		wantErr error
	}{
		{name: "missing_ids", req: model.SignContractRequest{}, wantErr: model.ErrValidation},
		{name: "unknown_author", req: model.SignContractRequest{AuthorID: uuid.New(), BookID: s.book.ID}, wantErr: model.ErrAuthorNotFound},
		{name: "unknown_book", req: model.SignContractRequest{AuthorID: s.author.ID, BookID: uuid.New()}, wantErr: model.ErrBookNotFound},
		{name: "book_id_used_as_author", req: model.SignContractRequest{AuthorID: s.book.ID, BookID: s.book.ID}, wantErr: model.ErrAuthorNotFound},
		{name: "non_text_date", req: model.SignContractRequest{AuthorID: s.author.ID, BookID: s.book.ID, Date: "\xff"}, wantErr: model.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := s.svc.SignContract(tt.req)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, s.catalog.Contracts())
		})
	}
}

func Test_Service_UpdateContract(t *testing.T) {
	s := seed(t)
	contract, err := s.svc.SignContract(model.SignContractRequest{
		AuthorID: s.author.ID, BookID: s.book.ID, Date: "2020-01-01", Royalties: 1000,
	})
	require.NoError(t, err)
	persuasion, err := s.svc.CreateBook(model.CreateBookRequest{Title: "Persuasion"})
	require.NoError(t, err)

	unknown := uuid.New()
	badDate := "\xff"
	_, err = s.svc.UpdateContract(contract.ID, model.UpdateContractRequest{BookID: &persuasion.ID, AuthorID: &unknown})
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)

	_, err = s.svc.UpdateContract(contract.ID, model.UpdateContractRequest{BookID: &persuasion.ID, Date: &badDate})
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = s.svc.UpdateContract(uuid.New(), model.UpdateContractRequest{BookID: &persuasion.ID})
	assert.ErrorIs(t, err, model.ErrContractNotFound)

	_, err = s.svc.UpdateContract(contract.ID, model.UpdateContractRequest{})
	assert.ErrorIs(t, err, model.ErrValidation)

	unchanged, err := s.svc.GetBook(s.book.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, unchanged.ContractCount)

	royalties := int64(-50)
	date := "2020-03-01"
	updated, err := s.svc.UpdateContract(contract.ID, model.UpdateContractRequest{
		BookID: &persuasion.ID, Date: &date, Royalties: &royalties,
	})
	require.NoError(t, err)
	assert.Equal(t, persuasion.ID, updated.BookID)
	assert.Equal(t, s.author.ID, updated.AuthorID)
	assert.Equal(t, date, updated.Date)
	assert.Equal(t, royalties, updated.Royalties)

	author, err := s.svc.GetAuthor(s.author.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(-50), author.TotalRoyalties)
	assert.Empty(t, s.svc.ListContractsByDate("2020-01-01"))
}

func Test_Service_GetUnknown(t *testing.T) {
	s := seed(t)

	_, err := s.svc.GetAuthor(s.book.ID)
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
	_, err = s.svc.GetBook(s.author.ID)
	assert.ErrorIs(t, err, model.ErrBookNotFound)
	_, err = s.svc.RoyaltyStatement(uuid.New())
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func Test_Service_LogsSignedContract(t *testing.T) {
	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = previous })

	s := seed(t)
	_, err := s.svc.SignContract(model.SignContractRequest{
		AuthorID: s.author.ID, BookID: s.book.ID, Date: "2020-01-01", Royalties: 1000,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"message":"contract signed"`)
	assert.Contains(t, out, `"royalties":1000`)
	assert.Contains(t, out, `"author_id":"`+s.author.ID.String()+`"`)
}

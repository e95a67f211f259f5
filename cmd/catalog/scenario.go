package main

import (
	"bookstore-contracts/internal/config"
	"bookstore-contracts/internal/domains/catalog/model"
	"bookstore-contracts/internal/domains/catalog/service"
	"fmt"
)

// ScenarioResult holds the views read back after the scenario contract is signed
type ScenarioResult struct {
	Contract        *model.ContractResponse
	Author          *model.AuthorDetailResponse
	Book            *model.BookDetailResponse
	ContractsOnDate []model.ContractResponse
	Statement       *service.RoyaltyStatement
}

// RunScenario creates the configured author and book, signs one contract and
// reads every derived view back.
func RunScenario(svc service.ServiceInterface, sc config.ScenarioConfig) (*ScenarioResult, error) {
	author, err := svc.CreateAuthor(model.CreateAuthorRequest{Name: sc.AuthorName})
	if err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}
	book, err := svc.CreateBook(model.CreateBookRequest{Title: sc.BookTitle})
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	contract, err := svc.SignContract(model.SignContractRequest{
		AuthorID:  author.ID,
		BookID:    book.ID,
		Date:      sc.Date,
		Royalties: sc.Royalties,
	})
	if err != nil {
		return nil, fmt.Errorf("sign contract: %w", err)
	}

	result := &ScenarioResult{
		Contract:        contract,
		ContractsOnDate: svc.ListContractsByDate(sc.Date),
	}
	if result.Author, err = svc.GetAuthor(author.ID); err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	if result.Book, err = svc.GetBook(book.ID); err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	if result.Statement, err = svc.RoyaltyStatement(author.ID); err != nil {
		return nil, fmt.Errorf("royalty statement: %w", err)
	}
	return result, nil
}

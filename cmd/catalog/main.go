package main

import (
	"os"

	"bookstore-contracts/pkg/container"
	"bookstore-contracts/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// ========================================
	// LOAD ENVIRONMENT VARIABLES
	// ========================================
	// .env is optional; system environment variables take over when absent
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using system environment variables")
	}

	appContainer, err := container.NewContainer()
	if err != nil {
		logger.Error("failed to initialize container", err)
		os.Exit(1)
	}

	// ========================================
	// RUN SCENARIO
	// ========================================
	result, err := RunScenario(appContainer.CatalogService, appContainer.Config.Scenario)
	if err != nil {
		logger.Error("scenario failed", err)
		os.Exit(1)
	}

	books := make([]string, 0, len(result.Author.Books))
	for _, b := range result.Author.Books {
		books = append(books, b.Title)
	}
	authors := make([]string, 0, len(result.Book.Authors))
	for _, a := range result.Book.Authors {
		authors = append(authors, a.Name)
	}

	logger.Info("scenario complete", map[string]interface{}{
		"author":            result.Author.Name,
		"books":             books,
		"book":              result.Book.Title,
		"authors":           authors,
		"total_royalties":   result.Author.TotalRoyalties,
		"contracts_on_date": len(result.ContractsOnDate),
	})
	for _, line := range result.Statement.Lines {
		log.Info().
			Str("book", line.BookTitle).
			Str("date", line.Date).
			Int64("royalties", line.Royalties).
			Str("share_percent", line.Share.StringFixed(2)).
			Msg("royalty line")
	}
}

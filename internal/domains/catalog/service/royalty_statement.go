package service

import (
	"bookstore-contracts/internal/domains/catalog/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// sharePlaces is the rounding applied to percentage shares
const sharePlaces = 2

var hundred = decimal.NewFromInt(100)

// RoyaltyLine is one contract in a statement
type RoyaltyLine struct {
	ContractID uuid.UUID       `json:"contract_id"`
	BookID     uuid.UUID       `json:"book_id"`
	BookTitle  string          `json:"book_title"`
	Date       string          `json:"date"`
	Royalties  int64           `json:"royalties"`
	Share      decimal.Decimal `json:"share_percent"` // |royalties| / sum(|royalties|) * 100
}

// RoyaltyStatement lists an author's contracts with their share of the total
type RoyaltyStatement struct {
	AuthorID   uuid.UUID     `json:"author_id"`
	AuthorName string        `json:"author_name"`
	Lines      []RoyaltyLine `json:"lines"`
	Total      int64         `json:"total"`
}

func (s *catalogService) RoyaltyStatement(authorID uuid.UUID) (*RoyaltyStatement, error) {
	a, err := s.catalog.AuthorByID(authorID)
	if err != nil {
		return nil, err
	}
	return buildStatement(a), nil
}

// buildStatement computes shares against the sum of absolute royalties so a
// negative adjustment never produces a zero or negative denominator.
func buildStatement(a *model.Author) *RoyaltyStatement {
	contracts := a.Contracts()

	volume := decimal.Zero
	for _, c := range contracts {
		volume = volume.Add(decimal.NewFromInt(c.Royalties()).Abs())
	}

	stmt := &RoyaltyStatement{
		AuthorID:   a.ID(),
		AuthorName: a.Name(),
		Lines:      make([]RoyaltyLine, 0, len(contracts)),
		Total:      a.TotalRoyalties(),
	}
	for _, c := range contracts {
		share := decimal.Zero
		if !volume.IsZero() {
			share = decimal.NewFromInt(c.Royalties()).Abs().
				Div(volume).
				Mul(hundred).
				Round(sharePlaces)
		}
		stmt.Lines = append(stmt.Lines, RoyaltyLine{
			ContractID: c.ID(),
			BookID:     c.Book().ID(),
			BookTitle:  c.Book().Title(),
			Date:       c.Date(),
			Royalties:  c.Royalties(),
			Share:      share,
		})
	}
	return stmt
}

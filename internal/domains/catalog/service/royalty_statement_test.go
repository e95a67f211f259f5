package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-contracts/internal/domains/catalog/model"
)

func Test_RoyaltyStatement_Shares(t *testing.T) {
	tests := []struct {
		name       string
		royalties  []int64
		wantShares []string
		wantTotal  int64
	}{
		{name: "no_contracts", royalties: nil, wantShares: []string{}, wantTotal: 0},
		{name: "single_contract", royalties: []int64{1000}, wantShares: []string{"100"}, wantTotal: 1000},
		{name: "quarter_split", royalties: []int64{1000, 3000}, wantShares: []string{"25", "75"}, wantTotal: 4000},
		{name: "thirds_are_rounded", royalties: []int64{1, 1, 1}, wantShares: []string{"33.33", "33.33", "33.33"}, wantTotal: 3},
		{name: "negative_adjustment", royalties: []int64{300, -100}, wantShares: []string{"75", "25"}, wantTotal: 200},
		{name: "all_zero", royalties: []int64{0, 0}, wantShares: []string{"0", "0"}, wantTotal: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := seed(t)
			for _, r := range tt.royalties {
				_, err := s.svc.SignContract(model.SignContractRequest{
					AuthorID: s.author.ID, BookID: s.book.ID, Date: "2020-01-01", Royalties: r,
				})
				require.NoError(t, err)
			}

			stmt, err := s.svc.RoyaltyStatement(s.author.ID)
			require.NoError(t, err)

			assert.Equal(t, s.author.ID, stmt.AuthorID)
			assert.Equal(t, "Jane Austen", stmt.AuthorName)
			assert.Equal(t, tt.wantTotal, stmt.Total)
			require.Len(t, stmt.Lines, len(tt.wantShares))
			for i, want := range tt.wantShares {
				line := stmt.Lines[i]
				assert.True(t, decimal.RequireFromString(want).Equal(line.Share), "line %d: want %s, got %s", i, want, line.Share)
				assert.Equal(t, tt.royalties[i], line.Royalties)
				assert.Equal(t, "Emma", line.BookTitle)
			}
		})
	}
}

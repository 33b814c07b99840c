package application

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/gostorefront/go-order-api/internal/domains/ledger/adapters/memory"
	"github.com/gostorefront/go-order-api/internal/domains/ledger/domain"
)

func record(t *testing.T, svc *Service, title string, amount float64, entryType domain.EntryType) {
	t.Helper()
	entry, err := domain.NewEntry(title, decimal.NewFromFloat(amount), entryType)
	require.NoError(t, err)
	_, err = svc.Record(context.Background(), entry)
	require.NoError(t, err)
}

func TestRecord_AssignsIdentifier(t *testing.T) {
	svc := NewService(memory.NewRepository())

	entry, err := domain.NewEntry("order abc", decimal.NewFromInt(25), domain.TypeIncome)
	require.NoError(t, err)

	saved, err := svc.Record(context.Background(), entry)
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
}

func TestRecord_RejectsInvalidEntries(t *testing.T) {
	svc := NewService(memory.NewRepository())

	cases := map[string]*domain.Entry{
		"empty title":     {Title: " ", Amount: decimal.NewFromInt(1), Type: domain.TypeIncome},
		"zero amount":     {Title: "x", Amount: decimal.Zero, Type: domain.TypeIncome},
		"negative amount": {Title: "x", Amount: decimal.NewFromInt(-5), Type: domain.TypeOutcome},
		"unknown type":    {Title: "x", Amount: decimal.NewFromInt(1), Type: "transfer"},
	}
	for name, entry := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Record(context.Background(), entry)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestBalance_RollsUpIncomeAndOutcome(t *testing.T) {
	svc := NewService(memory.NewRepository())

	record(t, svc, "order 1", 100.50, domain.TypeIncome)
	record(t, svc, "order 2", 49.50, domain.TypeIncome)
	record(t, svc, "restock", 60, domain.TypeOutcome)

	balance, err := svc.Balance(context.Background())
	require.NoError(t, err)
	require.True(t, balance.Income.Equal(decimal.NewFromInt(150)), "income was %s", balance.Income)
	require.True(t, balance.Outcome.Equal(decimal.NewFromInt(60)), "outcome was %s", balance.Outcome)
	require.True(t, balance.Total.Equal(decimal.NewFromInt(90)), "total was %s", balance.Total)
}

func TestAll_PreservesInsertionOrder(t *testing.T) {
	svc := NewService(memory.NewRepository())

	record(t, svc, "first", 1, domain.TypeIncome)
	record(t, svc, "second", 2, domain.TypeIncome)

	entries, err := svc.All(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "first", entries[0].Title)
	require.Equal(t, "second", entries[1].Title)
}

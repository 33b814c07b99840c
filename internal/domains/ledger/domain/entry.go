package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EntryType classifies a ledger entry as money in or money out.
type EntryType string

const (
	TypeIncome  EntryType = "income"
	TypeOutcome EntryType = "outcome"
)

var (
	ErrEmptyTitle        = errors.New("entry title is required")
	ErrNonPositiveAmount = errors.New("entry amount must be positive")
	ErrInvalidType       = errors.New("entry type must be income or outcome")
)

// Entry is a single bookkeeping record.
type Entry struct {
	ID        string
	Title     string
	Amount    decimal.Decimal
	Type      EntryType
	CreatedAt time.Time
}

// NewEntry validates and constructs an entry.
func NewEntry(title string, amount decimal.Decimal, entryType EntryType) (*Entry, error) {
	entry := &Entry{Title: strings.TrimSpace(title), Amount: amount, Type: entryType}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	return entry, nil
}

// Validate enforces ledger invariants.
func (e *Entry) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyTitle
	}
	if !e.Amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	if e.Type != TypeIncome && e.Type != TypeOutcome {
		return ErrInvalidType
	}
	return nil
}

// Balance is the income/outcome rollup over all entries.
type Balance struct {
	Income  decimal.Decimal
	Outcome decimal.Decimal
	Total   decimal.Decimal
}

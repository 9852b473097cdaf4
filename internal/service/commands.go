package service

import (
	"time"

	"github.com/shopspring/decimal"
)

type RegisterCommand struct {
	Email    string
	Password string
	Role     string
}

type CreateOfferCommand struct {
	AccountID   int64
	Name        string
	Description string
	Count       int64
	Price       decimal.Decimal
	CategoryID  int64
	ArchiveAt   time.Time
}

type CreatePurchaseCommand struct {
	UserID  int64
	OfferID int64
	Count   int64
	Paid    decimal.Decimal
}

type Page struct {
	Number int
	Size   int
}

const defaultPageSize = 20
const maxPageSize = 100

// Pagination is 1-indexed; out-of-range values fall back to sane defaults.
func (p Page) Limit() int {
	if p.Size < 1 || p.Size > maxPageSize {
		return defaultPageSize
	}
	return p.Size
}

func (p Page) Offset() int {
	number := p.Number
	if number < 1 {
		number = 1
	}
	return (number - 1) * p.Limit()
}

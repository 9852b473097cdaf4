package v1

import (
	"time"

	"github.com/shopspring/decimal"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TopUpRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateOfferRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Count       int64           `json:"count"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int64           `json:"category_id"`
	ArchiveAt   time.Time       `json:"archive_at"`
}

type CreatePurchaseRequest struct {
	OfferID int64           `json:"offer_id"`
	Count   int64           `json:"count"`
	Paid    decimal.Decimal `json:"paid"`
}

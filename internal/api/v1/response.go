package v1

import (
	"time"

	"github.com/markethub/offers/internal/model"
	"github.com/shopspring/decimal"
)

type AccountResponse struct {
	ID       int64            `json:"id"`
	Email    string           `json:"email"`
	Role     string           `json:"role"`
	Balance  *decimal.Decimal `json:"balance,omitempty"`
	IsActive *bool            `json:"is_active,omitempty"`
	PhotoURL string           `json:"photo_url,omitempty"`
}

func NewAccountResponse(account *model.Account) AccountResponse {
	resp := AccountResponse{
		ID:    account.ID,
		Email: account.Email,
		Role:  string(account.Role),
	}

	if account.UserDetail != nil {
		resp.Balance = &account.UserDetail.Balance
	}

	if account.CompanyDetail != nil {
		resp.IsActive = &account.CompanyDetail.IsActive
		resp.PhotoURL = account.CompanyDetail.PhotoURL
	}

	return resp
}

type BalanceResponse struct {
	AccountID int64           `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func NewCategoryResponse(category *model.Category) CategoryResponse {
	return CategoryResponse{ID: category.ID, Name: category.Name, Description: category.Description}
}

type OfferResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Count       int64           `json:"count"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int64           `json:"category_id"`
	ArchiveAt   time.Time       `json:"archive_at"`
	IsArchived  bool            `json:"is_archived"`
	CreatedAt   time.Time       `json:"created_at"`
}

func NewOfferResponse(offer *model.Offer) OfferResponse {
	return OfferResponse{
		ID:          offer.ID,
		Name:        offer.Name,
		Description: offer.Description,
		Count:       offer.Count,
		Price:       offer.Price,
		CategoryID:  offer.CategoryID,
		ArchiveAt:   offer.ArchiveAt,
		IsArchived:  offer.IsArchived,
		CreatedAt:   offer.CreatedAt,
	}
}

type TransactionResponse struct {
	ID        int64           `json:"id"`
	OfferID   int64           `json:"offer_id"`
	Count     int64           `json:"count"`
	Paid      decimal.Decimal `json:"paid"`
	CreatedAt time.Time       `json:"created_at"`
}

func NewTransactionResponse(transaction *model.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        transaction.ID,
		OfferID:   transaction.OfferID,
		Count:     transaction.Count,
		Paid:      transaction.Paid,
		CreatedAt: transaction.CreatedAt,
	}
}

type PageResponse[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

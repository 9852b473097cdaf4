package v1

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/markethub/offers/internal/api/middleware"
	"github.com/markethub/offers/internal/constants"
	"github.com/markethub/offers/internal/service"
	"github.com/markethub/offers/pkg/storage"
	"go.uber.org/zap"
)

type Handler struct {
	accounts   service.AccountService
	categories service.CategoryService
	offers     service.OfferService
	purchases  service.PurchaseService
	storage    *storage.Storage
	logger     *zap.Logger
}

func NewHandler(accounts service.AccountService, categories service.CategoryService,
	offers service.OfferService, purchases service.PurchaseService,
	storage *storage.Storage, logger *zap.Logger) *Handler {
	return &Handler{accounts: accounts, categories: categories, offers: offers,
		purchases: purchases, storage: storage, logger: logger}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) Register(c *fiber.Ctx) error {
	var request RegisterRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c)
	}

	if request.Email == "" || request.Password == "" {
		return badRequest(c)
	}

	account, err := h.accounts.Register(c.UserContext(), service.RegisterCommand{
		Email:    request.Email,
		Password: request.Password,
		Role:     request.Role,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(NewAccountResponse(account))
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var request LoginRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c)
	}

	signed, err := h.accounts.Login(c.UserContext(), request.Email, request.Password)
	if err != nil {
		return err
	}

	return c.JSON(TokenResponse{Token: signed})
}

func (h *Handler) Me(c *fiber.Ctx) error {
	account, err := h.accounts.Me(c.UserContext(), accountID(c))
	if err != nil {
		return err
	}

	return c.JSON(NewAccountResponse(account))
}

func (h *Handler) TopUp(c *fiber.Ctx) error {
	var request TopUpRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c)
	}

	detail, err := h.accounts.TopUp(c.UserContext(), accountID(c), request.Amount)
	if err != nil {
		return err
	}

	return c.JSON(BalanceResponse{AccountID: detail.AccountID, Balance: detail.Balance})
}

func (h *Handler) UploadPhoto(c *fiber.Ctx) error {
	file, err := c.FormFile("photo")
	if err != nil {
		return badRequest(c)
	}

	url, err := h.storage.Save(file)
	if err != nil {
		h.logger.Error("Failed to store uploaded photo", zap.Error(err))
		return service.NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	if err := h.accounts.UpdatePhoto(c.UserContext(), accountID(c), url); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"photo_url": url})
}

func (h *Handler) ActivateCompany(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c)
	}

	if err := h.accounts.ActivateCompany(c.UserContext(), int64(id)); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) CreateCategory(c *fiber.Ctx) error {
	var request CreateCategoryRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c)
	}

	if request.Name == "" {
		return badRequest(c)
	}

	category, err := h.categories.Create(c.UserContext(), request.Name, request.Description)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(NewCategoryResponse(category))
}

func (h *Handler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.categories.List(c.UserContext())
	if err != nil {
		return err
	}

	items := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		items = append(items, NewCategoryResponse(&categories[i]))
	}

	return c.JSON(items)
}

func (h *Handler) CreateOffer(c *fiber.Ctx) error {
	var request CreateOfferRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c)
	}

	if request.Name == "" || request.CategoryID == 0 {
		return badRequest(c)
	}

	offer, err := h.offers.Create(c.UserContext(), service.CreateOfferCommand{
		AccountID:   accountID(c),
		Name:        request.Name,
		Description: request.Description,
		Count:       request.Count,
		Price:       request.Price,
		CategoryID:  request.CategoryID,
		ArchiveAt:   request.ArchiveAt,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(NewOfferResponse(offer))
}

func (h *Handler) GetOffersByCategories(c *fiber.Ctx) error {
	ids, err := parseIDList(c.Query("categories"))
	if err != nil {
		return badRequest(c)
	}

	offers, err := h.offers.GetOffersByCategories(c.UserContext(), ids)
	if err != nil {
		return err
	}

	items := make([]OfferResponse, 0, len(offers))
	for i := range offers {
		items = append(items, NewOfferResponse(&offers[i]))
	}

	return c.JSON(items)
}

func (h *Handler) GetMyOffers(c *fiber.Ctx) error {
	page := pageFromQuery(c)

	offers, total, err := h.offers.GetMyOffers(c.UserContext(), accountID(c), page)
	if err != nil {
		return err
	}

	items := make([]OfferResponse, 0, len(offers))
	for i := range offers {
		items = append(items, NewOfferResponse(&offers[i]))
	}

	return c.JSON(PageResponse[OfferResponse]{
		Items:    items,
		Total:    total,
		Page:     page.Number,
		PageSize: page.Limit(),
	})
}

func (h *Handler) GetMyOffer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c)
	}

	offer, err := h.offers.GetMyOffer(c.UserContext(), int64(id), accountID(c))
	if err != nil {
		return err
	}

	return c.JSON(NewOfferResponse(offer))
}

func (h *Handler) DeleteOffer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c)
	}

	if err := h.offers.Delete(c.UserContext(), int64(id), accountID(c)); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) CreatePurchase(c *fiber.Ctx) error {
	var request CreatePurchaseRequest
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c)
	}

	transaction, err := h.purchases.Create(c.UserContext(), service.CreatePurchaseCommand{
		UserID:  accountID(c),
		OfferID: request.OfferID,
		Count:   request.Count,
		Paid:    request.Paid,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(NewTransactionResponse(transaction))
}

func (h *Handler) GetMyTransactions(c *fiber.Ctx) error {
	page := pageFromQuery(c)

	transactions, total, err := h.purchases.GetMyTransactions(c.UserContext(), accountID(c), page)
	if err != nil {
		return err
	}

	items := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		items = append(items, NewTransactionResponse(&transactions[i]))
	}

	return c.JSON(PageResponse[TransactionResponse]{
		Items:    items,
		Total:    total,
		Page:     page.Number,
		PageSize: page.Limit(),
	})
}

func (h *Handler) GetMyTransaction(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c)
	}

	transaction, err := h.purchases.GetMyTransaction(c.UserContext(), int64(id), accountID(c))
	if err != nil {
		return err
	}

	return c.JSON(NewTransactionResponse(transaction))
}

func (h *Handler) RefundTransaction(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c)
	}

	if err := h.purchases.Refund(c.UserContext(), int64(id), accountID(c)); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func accountID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(middleware.LocalAccountID).(int64)
	return id
}

func pageFromQuery(c *fiber.Ctx) service.Page {
	return service.Page{
		Number: c.QueryInt("page", 1),
		Size:   c.QueryInt("page_size", 0),
	}
}

func parseIDList(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func badRequest(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"code":    constants.ErrCodeInvalidRequestBody,
		"message": constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
	})
}

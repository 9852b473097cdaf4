package constants

const (
	ErrCodeInvalidRequestBody = "INVALID_REQUEST_BODY"
	ErrCodeInvalidAmount      = "INVALID_AMOUNT"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"

	ErrCodeAccountNotFound     = "ACCOUNT_NOT_FOUND"
	ErrCodeUserNotFound        = "USER_NOT_FOUND"
	ErrCodeCompanyNotFound     = "COMPANY_NOT_FOUND"
	ErrCodeCategoryNotFound    = "CATEGORY_NOT_FOUND"
	ErrCodeOfferNotFound       = "OFFER_NOT_FOUND"
	ErrCodeTransactionNotFound = "TRANSACTION_NOT_FOUND"

	ErrCodeOfferAccessDenied       = "OFFER_ACCESS_DENIED"
	ErrCodeTransactionAccessDenied = "TRANSACTION_ACCESS_DENIED"

	ErrCodeEmailAlreadyExists       = "EMAIL_ALREADY_EXISTS"
	ErrCodeCategoryAlreadyExists    = "CATEGORY_ALREADY_EXISTS"
	ErrCodeCompanyNotActive         = "COMPANY_NOT_ACTIVE"
	ErrCodeCompanyAlreadyActive     = "COMPANY_ALREADY_ACTIVE"
	ErrCodeOfferExpired             = "OFFER_EXPIRED"
	ErrCodeRefundWindowExpired      = "REFUND_WINDOW_EXPIRED"
	ErrCodeOfferDeleteWindowExpired = "OFFER_DELETE_WINDOW_EXPIRED"
	ErrCodeInsufficientBalance      = "INSUFFICIENT_BALANCE"
	ErrCodeInsufficientStock        = "INSUFFICIENT_STOCK"

	ErrCodeDepositInconsistency  = "DEPOSIT_INCONSISTENCY"
	ErrCodeWithdrawInconsistency = "WITHDRAW_INCONSISTENCY"
	ErrCodeStockInconsistency    = "STOCK_INCONSISTENCY"

	ErrCodeTransactionCreateFailed = "TRANSACTION_CREATE_FAILED"
	ErrCodeRefundFailed            = "REFUND_FAILED"
	ErrCodeOfferCreateFailed       = "OFFER_CREATE_FAILED"
	ErrCodeOfferDeleteFailed       = "OFFER_DELETE_FAILED"
	ErrCodeOperationFailed         = "OPERATION_FAILED"
	ErrCodeInternalError           = "INTERNAL_ERROR"
)

var errorMessages = map[string]string{
	ErrCodeInvalidRequestBody: "failed to parse request body",
	ErrCodeInvalidAmount:      "amount is invalid",
	ErrCodeInvalidCredentials: "email or password is incorrect",
	ErrCodeUnauthorized:       "missing or invalid credentials",
	ErrCodeForbidden:          "insufficient permissions",

	ErrCodeAccountNotFound:     "account not found",
	ErrCodeUserNotFound:        "user not found",
	ErrCodeCompanyNotFound:     "company not found",
	ErrCodeCategoryNotFound:    "category not found",
	ErrCodeOfferNotFound:       "offer not found",
	ErrCodeTransactionNotFound: "transaction not found",

	ErrCodeOfferAccessDenied:       "offer belongs to another company",
	ErrCodeTransactionAccessDenied: "transaction belongs to another user",

	ErrCodeEmailAlreadyExists:       "email already registered",
	ErrCodeCategoryAlreadyExists:    "category name already exists",
	ErrCodeCompanyNotActive:         "company is not active",
	ErrCodeCompanyAlreadyActive:     "company is already active",
	ErrCodeOfferExpired:             "offer is archived",
	ErrCodeRefundWindowExpired:      "refund window has expired",
	ErrCodeOfferDeleteWindowExpired: "offer deletion window has expired",
	ErrCodeInsufficientBalance:      "insufficient balance",
	ErrCodeInsufficientStock:        "insufficient stock",

	ErrCodeDepositInconsistency:  "deposit did not apply consistently",
	ErrCodeWithdrawInconsistency: "withdraw did not apply consistently",
	ErrCodeStockInconsistency:    "stock change did not apply consistently",

	ErrCodeTransactionCreateFailed: "failed to create transaction",
	ErrCodeRefundFailed:            "failed to refund transactions",
	ErrCodeOfferCreateFailed:       "failed to create offer",
	ErrCodeOfferDeleteFailed:       "failed to delete offer",
	ErrCodeOperationFailed:         "operation failed",
	ErrCodeInternalError:           "Internal server error",
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return errorMessages[ErrCodeInternalError]
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequestBody, ErrCodeInvalidAmount:
		return 400
	case ErrCodeInvalidCredentials, ErrCodeUnauthorized:
		return 401
	case ErrCodeForbidden, ErrCodeOfferAccessDenied, ErrCodeTransactionAccessDenied:
		return 403
	case ErrCodeAccountNotFound, ErrCodeUserNotFound, ErrCodeCompanyNotFound,
		ErrCodeCategoryNotFound, ErrCodeOfferNotFound, ErrCodeTransactionNotFound:
		return 404
	case ErrCodeEmailAlreadyExists, ErrCodeCategoryAlreadyExists,
		ErrCodeCompanyNotActive, ErrCodeCompanyAlreadyActive,
		ErrCodeOfferExpired, ErrCodeRefundWindowExpired, ErrCodeOfferDeleteWindowExpired,
		ErrCodeInsufficientBalance, ErrCodeInsufficientStock:
		return 409
	default:
		return 500
	}
}

package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/markethub/offers/internal/constants"
	"github.com/markethub/offers/internal/mocks"
	"github.com/markethub/offers/internal/model"
	"github.com/markethub/offers/internal/repository"
	"github.com/markethub/offers/internal/service"
	"github.com/markethub/offers/pkg/token"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newAccountService(accounts *mocks.AccountRepository, txManager *mocks.TxManager,
	ledger *mocks.Ledger) service.AccountService {
	tokens := token.NewMaker("test-secret", time.Hour)
	return service.NewAccountService(accounts, txManager, ledger, tokens, zap.NewNop())
}

func TestAccount_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("user registration creates a detail row with zero balance", func(t *testing.T) {
		mockAccounts := &mocks.AccountRepository{}
		svc := newAccountService(mockAccounts, &mocks.TxManager{}, &mocks.Ledger{})

		mockAccounts.On("Create", ctx, mock.MatchedBy(func(account *model.Account) bool {
			return account.Role == model.RoleUser &&
				account.UserDetail != nil &&
				account.UserDetail.Balance.IsZero() &&
				account.CompanyDetail == nil
		})).Return(nil)

		account, err := svc.Register(ctx, service.RegisterCommand{
			Email: "buyer@example.com", Password: "secret", Role: "USER",
		})

		assert.NoError(t, err)
		assert.True(t, account.IsUser())
		mockAccounts.AssertExpectations(t)
	})

	t.Run("company registration starts inactive", func(t *testing.T) {
		mockAccounts := &mocks.AccountRepository{}
		svc := newAccountService(mockAccounts, &mocks.TxManager{}, &mocks.Ledger{})

		mockAccounts.On("Create", ctx, mock.MatchedBy(func(account *model.Account) bool {
			return account.Role == model.RoleCompany &&
				account.CompanyDetail != nil &&
				!account.CompanyDetail.IsActive &&
				account.UserDetail == nil
		})).Return(nil)

		account, err := svc.Register(ctx, service.RegisterCommand{
			Email: "shop@example.com", Password: "secret", Role: "COMPANY",
		})

		assert.NoError(t, err)
		assert.False(t, account.IsActiveCompany())
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		mockAccounts := &mocks.AccountRepository{}
		svc := newAccountService(mockAccounts, &mocks.TxManager{}, &mocks.Ledger{})

		mockAccounts.On("Create", ctx, mock.AnythingOfType("*model.Account")).
			Return(repository.ErrAccountDuplicate)

		_, err := svc.Register(ctx, service.RegisterCommand{
			Email: "buyer@example.com", Password: "secret", Role: "USER",
		})

		assert.Equal(t, constants.ErrCodeEmailAlreadyExists, errorCode(t, err))
	})
}

func TestAccount_Login(t *testing.T) {
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	stored := &model.Account{ID: 1, Email: "buyer@example.com",
		PasswordHash: string(hash), Role: model.RoleUser}

	t.Run("valid credentials yield a token", func(t *testing.T) {
		mockAccounts := &mocks.AccountRepository{}
		svc := newAccountService(mockAccounts, &mocks.TxManager{}, &mocks.Ledger{})

		mockAccounts.On("GetByEmail", "buyer@example.com").Return(stored, nil)

		signed, err := svc.Login(ctx, "buyer@example.com", "correct-password")

		assert.NoError(t, err)
		assert.NotEmpty(t, signed)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		mockAccounts := &mocks.AccountRepository{}
		svc := newAccountService(mockAccounts, &mocks.TxManager{}, &mocks.Ledger{})

		mockAccounts.On("GetByEmail", "buyer@example.com").Return(stored, nil)

		_, err := svc.Login(ctx, "buyer@example.com", "wrong")

		assert.Equal(t, constants.ErrCodeInvalidCredentials, errorCode(t, err))
	})

	t.Run("unknown email is rejected with the same code", func(t *testing.T) {
		mockAccounts := &mocks.AccountRepository{}
		svc := newAccountService(mockAccounts, &mocks.TxManager{}, &mocks.Ledger{})

		mockAccounts.On("GetByEmail", "nobody@example.com").
			Return((*model.Account)(nil), repository.ErrAccountNotFound)

		_, err := svc.Login(ctx, "nobody@example.com", "secret")

		assert.Equal(t, constants.ErrCodeInvalidCredentials, errorCode(t, err))
	})
}

func TestAccount_TopUp(t *testing.T) {
	ctx := context.Background()

	t.Run("top-up deposits inside a unit of work", func(t *testing.T) {
		mockAccounts := &mocks.AccountRepository{}
		mockTxManager := &mocks.TxManager{}
		mockLedger := &mocks.Ledger{}
		svc := newAccountService(mockAccounts, mockTxManager, mockLedger)

		amount := decimal.NewFromInt(100)

		mockTxManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		mockLedger.On("Deposit", ctx, int64(1), eq(amount)).
			Return(&model.UserDetail{AccountID: 1, Balance: amount}, nil)

		detail, err := svc.TopUp(ctx, 1, amount)

		assert.NoError(t, err)
		assert.True(t, detail.Balance.Equal(amount))
		mockLedger.AssertExpectations(t)
		mockTxManager.AssertExpectations(t)
	})
}

func TestAccount_ActivateCompany(t *testing.T) {
	ctx := context.Background()

	t.Run("inactive company becomes active", func(t *testing.T) {
		mockAccounts := &mocks.AccountRepository{}
		svc := newAccountService(mockAccounts, &mocks.TxManager{}, &mocks.Ledger{})

		mockAccounts.On("GetByID", ctx, int64(2)).Return(companyAccount(2, false), nil)
		mockAccounts.On("UpdateCompanyActive", ctx, int64(2), true).Return(nil)

		err := svc.ActivateCompany(ctx, 2)

		assert.NoError(t, err)
		mockAccounts.AssertExpectations(t)
	})

	t.Run("already active company is rejected", func(t *testing.T) {
		mockAccounts := &mocks.AccountRepository{}
		svc := newAccountService(mockAccounts, &mocks.TxManager{}, &mocks.Ledger{})

		mockAccounts.On("GetByID", ctx, int64(2)).Return(companyAccount(2, true), nil)

		err := svc.ActivateCompany(ctx, 2)

		assert.Equal(t, constants.ErrCodeCompanyAlreadyActive, errorCode(t, err))
		mockAccounts.AssertNotCalled(t, "UpdateCompanyActive", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("user account is not a company", func(t *testing.T) {
		mockAccounts := &mocks.AccountRepository{}
		svc := newAccountService(mockAccounts, &mocks.TxManager{}, &mocks.Ledger{})

		user := &model.Account{ID: 1, Role: model.RoleUser,
			UserDetail: &model.UserDetail{AccountID: 1}}
		mockAccounts.On("GetByID", ctx, int64(1)).Return(user, nil)

		err := svc.ActivateCompany(ctx, 1)

		assert.Equal(t, constants.ErrCodeCompanyNotFound, errorCode(t, err))
	})
}

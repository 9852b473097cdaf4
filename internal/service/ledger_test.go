package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/markethub/offers/internal/constants"
	"github.com/markethub/offers/internal/mocks"
	"github.com/markethub/offers/internal/model"
	"github.com/markethub/offers/internal/repository"
	"github.com/markethub/offers/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func eq(expected decimal.Decimal) interface{} {
	return mock.MatchedBy(func(actual decimal.Decimal) bool {
		return actual.Equal(expected)
	})
}

func errorCode(t *testing.T, err error) string {
	t.Helper()

	var serviceErr service.Error
	assert.ErrorAs(t, err, &serviceErr)
	return serviceErr.Code
}

func TestLedger_Deposit(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("deposit increases balance by exact amount", func(t *testing.T) {
		mockAccounts := &mocks.AccountRepository{}
		ledger := service.NewLedger(mockAccounts, logger)

		mockAccounts.On("GetUserDetail", ctx, int64(1)).
			Return(&model.UserDetail{AccountID: 1, Balance: decimal.NewFromInt(100)}, nil).Once()
		mockAccounts.On("UpdateBalance", ctx, int64(1), eq(decimal.NewFromInt(150))).Return(nil)
		mockAccounts.On("GetUserDetail", ctx, int64(1)).
			Return(&model.UserDetail{AccountID: 1, Balance: decimal.NewFromInt(150)}, nil).Once()

		detail, err := ledger.Deposit(ctx, 1, decimal.NewFromInt(50))

		assert.NoError(t, err)
		assert.True(t, detail.Balance.Equal(decimal.NewFromInt(150)))
		mockAccounts.AssertExpectations(t)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		mockAccounts := &mocks.AccountRepository{}
		ledger := service.NewLedger(mockAccounts, logger)

		_, err := ledger.Deposit(ctx, 1, decimal.Zero)

		assert.Equal(t, constants.ErrCodeInvalidAmount, errorCode(t, err))
		mockAccounts.AssertNotCalled(t, "UpdateBalance")
	})

	t.Run("fails when account has no user detail", func(t *testing.T) {
		mockAccounts := &mocks.AccountRepository{}
		ledger := service.NewLedger(mockAccounts, logger)

		mockAccounts.On("GetUserDetail", ctx, int64(9)).
			Return((*model.UserDetail)(nil), repository.ErrUserDetailNotFound)

		_, err := ledger.Deposit(ctx, 9, decimal.NewFromInt(10))

		assert.Equal(t, constants.ErrCodeUserNotFound, errorCode(t, err))
		mockAccounts.AssertNotCalled(t, "UpdateBalance")
	})

	t.Run("surfaces inconsistency when observed delta mismatches", func(t *testing.T) {
		mockAccounts := &mocks.AccountRepository{}
		ledger := service.NewLedger(mockAccounts, logger)

		mockAccounts.On("GetUserDetail", ctx, int64(1)).
			Return(&model.UserDetail{AccountID: 1, Balance: decimal.NewFromInt(100)}, nil).Once()
		mockAccounts.On("UpdateBalance", ctx, int64(1), eq(decimal.NewFromInt(150))).Return(nil)
		mockAccounts.On("GetUserDetail", ctx, int64(1)).
			Return(&model.UserDetail{AccountID: 1, Balance: decimal.NewFromInt(140)}, nil).Once()

		_, err := ledger.Deposit(ctx, 1, decimal.NewFromInt(50))

		assert.Equal(t, constants.ErrCodeDepositInconsistency, errorCode(t, err))
	})
}

func TestLedger_Withdraw(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("withdraw decreases balance by exact amount", func(t *testing.T) {
		mockAccounts := &mocks.AccountRepository{}
		ledger := service.NewLedger(mockAccounts, logger)

		mockAccounts.On("GetUserDetail", ctx, int64(1)).
			Return(&model.UserDetail{AccountID: 1, Balance: decimal.NewFromInt(300)}, nil).Once()
		mockAccounts.On("UpdateBalance", ctx, int64(1), eq(decimal.NewFromInt(250))).Return(nil)
		mockAccounts.On("GetUserDetail", ctx, int64(1)).
			Return(&model.UserDetail{AccountID: 1, Balance: decimal.NewFromInt(250)}, nil).Once()

		detail, err := ledger.Withdraw(ctx, 1, decimal.NewFromInt(50))

		assert.NoError(t, err)
		assert.True(t, detail.Balance.Equal(decimal.NewFromInt(250)))
		mockAccounts.AssertExpectations(t)
	})

	t.Run("fails when balance is insufficient", func(t *testing.T) {
		mockAccounts := &mocks.AccountRepository{}
		ledger := service.NewLedger(mockAccounts, logger)

		mockAccounts.On("GetUserDetail", ctx, int64(1)).
			Return(&model.UserDetail{AccountID: 1, Balance: decimal.NewFromInt(30)}, nil).Once()

		_, err := ledger.Withdraw(ctx, 1, decimal.NewFromInt(50))

		assert.Equal(t, constants.ErrCodeInsufficientBalance, errorCode(t, err))
		mockAccounts.AssertNotCalled(t, "UpdateBalance")
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		mockAccounts := &mocks.AccountRepository{}
		ledger := service.NewLedger(mockAccounts, logger)

		_, err := ledger.Withdraw(ctx, 1, decimal.NewFromInt(-5))

		assert.Equal(t, constants.ErrCodeInvalidAmount, errorCode(t, err))
		mockAccounts.AssertNotCalled(t, "GetUserDetail")
	})

	t.Run("surfaces inconsistency when observed delta mismatches", func(t *testing.T) {
		mockAccounts := &mocks.AccountRepository{}
		ledger := service.NewLedger(mockAccounts, logger)

		mockAccounts.On("GetUserDetail", ctx, int64(1)).
			Return(&model.UserDetail{AccountID: 1, Balance: decimal.NewFromInt(300)}, nil).Once()
		mockAccounts.On("UpdateBalance", ctx, int64(1), eq(decimal.NewFromInt(250))).Return(nil)
		mockAccounts.On("GetUserDetail", ctx, int64(1)).
			Return(&model.UserDetail{AccountID: 1, Balance: decimal.NewFromInt(300)}, nil).Once()

		_, err := ledger.Withdraw(ctx, 1, decimal.NewFromInt(50))

		assert.Equal(t, constants.ErrCodeWithdrawInconsistency, errorCode(t, err))
	})

	t.Run("withdraw then deposit restores the original balance", func(t *testing.T) {
		mockAccounts := &mocks.AccountRepository{}
		ledger := service.NewLedger(mockAccounts, logger)

		amount := decimal.NewFromInt(75)

		mockAccounts.On("GetUserDetail", ctx, int64(1)).
			Return(&model.UserDetail{AccountID: 1, Balance: decimal.NewFromInt(300)}, nil).Once()
		mockAccounts.On("UpdateBalance", ctx, int64(1), eq(decimal.NewFromInt(225))).Return(nil).Once()
		mockAccounts.On("GetUserDetail", ctx, int64(1)).
			Return(&model.UserDetail{AccountID: 1, Balance: decimal.NewFromInt(225)}, nil).Once()

		mockAccounts.On("GetUserDetail", ctx, int64(1)).
			Return(&model.UserDetail{AccountID: 1, Balance: decimal.NewFromInt(225)}, nil).Once()
		mockAccounts.On("UpdateBalance", ctx, int64(1), eq(decimal.NewFromInt(300))).Return(nil).Once()
		mockAccounts.On("GetUserDetail", ctx, int64(1)).
			Return(&model.UserDetail{AccountID: 1, Balance: decimal.NewFromInt(300)}, nil).Once()

		_, err := ledger.Withdraw(ctx, 1, amount)
		assert.NoError(t, err)

		detail, err := ledger.Deposit(ctx, 1, amount)
		assert.NoError(t, err)
		assert.True(t, detail.Balance.Equal(decimal.NewFromInt(300)))
		mockAccounts.AssertExpectations(t)
	})
}

func TestLedger_DatabaseError(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	mockAccounts := &mocks.AccountRepository{}
	ledger := service.NewLedger(mockAccounts, logger)

	mockAccounts.On("GetUserDetail", ctx, int64(1)).
		Return((*model.UserDetail)(nil), errors.New("connection refused"))

	_, err := ledger.Deposit(ctx, 1, decimal.NewFromInt(10))

	assert.Equal(t, constants.ErrCodeOperationFailed, errorCode(t, err))
}

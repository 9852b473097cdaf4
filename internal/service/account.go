package service

import (
	"context"
	"errors"

	"github.com/markethub/offers/internal/constants"
	"github.com/markethub/offers/internal/model"
	"github.com/markethub/offers/internal/repository"
	"github.com/markethub/offers/pkg/token"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AccountService interface {
	Register(ctx context.Context, cmd RegisterCommand) (*model.Account, error)
	Login(ctx context.Context, email, password string) (string, error)
	Me(ctx context.Context, accountID int64) (*model.Account, error)
	TopUp(ctx context.Context, accountID int64, amount decimal.Decimal) (*model.UserDetail, error)
	ActivateCompany(ctx context.Context, accountID int64) error
	UpdatePhoto(ctx context.Context, accountID int64, url string) error
}

type accountService struct {
	accounts  repository.AccountRepository
	txManager repository.TxManager
	ledger    Ledger
	tokens    *token.Maker
	logger    *zap.Logger
}

func NewAccountService(accounts repository.AccountRepository, txManager repository.TxManager,
	ledger Ledger, tokens *token.Maker, logger *zap.Logger) AccountService {
	return &accountService{accounts: accounts, txManager: txManager, ledger: ledger,
		tokens: tokens, logger: logger}
}

func (s *accountService) Register(ctx context.Context, cmd RegisterCommand) (*model.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	var account *model.Account
	switch model.Role(cmd.Role) {
	case model.RoleCompany:
		account = model.NewCompanyAccount(cmd.Email, string(hash))
	case model.RoleAdmin:
		account = model.NewAdminAccount(cmd.Email, string(hash))
	default:
		account = model.NewUserAccount(cmd.Email, string(hash))
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAccountDuplicate) {
			return nil, NewServiceError(constants.ErrCodeEmailAlreadyExists, err)
		}

		s.logger.Error("error creating account",
			zap.String("email", cmd.Email),
			zap.Error(err))
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	s.logger.Info("Account registered",
		zap.Int64("accountID", account.ID),
		zap.String("role", string(account.Role)))

	return account, nil
}

func (s *accountService) Login(ctx context.Context, email, password string) (string, error) {
	account, err := s.accounts.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return "", NewServiceError(constants.ErrCodeInvalidCredentials, err)
		}
		return "", NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", NewServiceError(constants.ErrCodeInvalidCredentials, err)
	}

	signed, err := s.tokens.Create(account.ID, string(account.Role))
	if err != nil {
		s.logger.Error("error signing token", zap.Error(err))
		return "", NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return signed, nil
}

func (s *accountService) Me(ctx context.Context, accountID int64) (*model.Account, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, NewServiceError(constants.ErrCodeAccountNotFound, err)
		}
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return account, nil
}

func (s *accountService) TopUp(ctx context.Context, accountID int64, amount decimal.Decimal) (*model.UserDetail, error) {
	var detail *model.UserDetail

	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		detail, err = s.ledger.Deposit(ctx, accountID, amount)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Balance topped up",
		zap.Int64("accountID", accountID),
		zap.String("amount", amount.String()))

	return detail, nil
}

func (s *accountService) ActivateCompany(ctx context.Context, accountID int64) error {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil || !account.IsCompany() {
		if err != nil && !errors.Is(err, repository.ErrAccountNotFound) {
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}
		return NewServiceError(constants.ErrCodeCompanyNotFound, repository.ErrAccountNotFound)
	}

	if account.CompanyDetail.IsActive {
		return NewServiceError(constants.ErrCodeCompanyAlreadyActive, ErrAlreadyActive)
	}

	if err := s.accounts.UpdateCompanyActive(ctx, accountID, true); err != nil {
		s.logger.Error("error activating company",
			zap.Int64("accountID", accountID),
			zap.Error(err))
		return NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	s.logger.Info("Company activated", zap.Int64("accountID", accountID))

	return nil
}

func (s *accountService) UpdatePhoto(ctx context.Context, accountID int64, url string) error {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil || !account.IsCompany() {
		if err != nil && !errors.Is(err, repository.ErrAccountNotFound) {
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}
		return NewServiceError(constants.ErrCodeCompanyNotFound, repository.ErrAccountNotFound)
	}

	if err := s.accounts.UpdatePhotoURL(ctx, accountID, url); err != nil {
		s.logger.Error("error updating company photo",
			zap.Int64("accountID", accountID),
			zap.Error(err))
		return NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return nil
}

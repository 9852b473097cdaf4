package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleUser    Role = "USER"
	RoleCompany Role = "COMPANY"
	RoleAdmin   Role = "ADMIN"
)

type Account struct {
	ID           int64  `gorm:"primaryKey;autoIncrement;<-:create"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Role         Role   `gorm:"type:enum('USER','COMPANY','ADMIN');not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	UserDetail    *UserDetail    `gorm:"foreignKey:AccountID"`
	CompanyDetail *CompanyDetail `gorm:"foreignKey:AccountID"`
}

type UserDetail struct {
	AccountID int64           `gorm:"primaryKey;<-:create"`
	Balance   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	UpdatedAt time.Time
}

type CompanyDetail struct {
	AccountID int64  `gorm:"primaryKey;<-:create"`
	IsActive  bool   `gorm:"not null;default:false"`
	PhotoURL  string `gorm:"type:varchar(512)"`
	UpdatedAt time.Time
}

// Accounts are only built through these constructors so the detail row
// always matches the role.

func NewUserAccount(email, passwordHash string) *Account {
	return &Account{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         RoleUser,
		UserDetail:   &UserDetail{Balance: decimal.Zero},
	}
}

func NewCompanyAccount(email, passwordHash string) *Account {
	return &Account{
		Email:         email,
		PasswordHash:  passwordHash,
		Role:          RoleCompany,
		CompanyDetail: &CompanyDetail{IsActive: false},
	}
}

func NewAdminAccount(email, passwordHash string) *Account {
	return &Account{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         RoleAdmin,
	}
}

func (a *Account) IsUser() bool {
	return a.Role == RoleUser && a.UserDetail != nil
}

func (a *Account) IsCompany() bool {
	return a.Role == RoleCompany && a.CompanyDetail != nil
}

func (a *Account) IsActiveCompany() bool {
	return a.IsCompany() && a.CompanyDetail.IsActive
}

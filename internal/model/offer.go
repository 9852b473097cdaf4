package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Offer struct {
	ID          int64           `gorm:"primaryKey;autoIncrement;<-:create"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	Count       int64           `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	AccountID   int64           `gorm:"not null;index;<-:create"`
	CategoryID  int64           `gorm:"not null;index"`
	ArchiveAt   time.Time       `gorm:"not null"`
	IsArchived  bool            `gorm:"not null;default:false"`
	CreatedAt   time.Time       `gorm:"<-:create"`
	UpdatedAt   time.Time

	Category *Category `gorm:"foreignKey:CategoryID"`
}

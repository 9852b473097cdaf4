package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Paid is frozen at purchase time and refunded verbatim; later price changes
// on the offer never affect it.
type Transaction struct {
	ID        int64           `gorm:"primaryKey;autoIncrement;<-:create"`
	UserID    int64           `gorm:"not null;index;<-:create"`
	OfferID   int64           `gorm:"not null;index;<-:create"`
	Count     int64           `gorm:"not null;<-:create"`
	Paid      decimal.Decimal `gorm:"type:decimal(12,2);not null;<-:create"`
	CreatedAt time.Time       `gorm:"<-:create"`
}

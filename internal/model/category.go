package model

type Category struct {
	ID          int64  `gorm:"primaryKey;autoIncrement;<-:create"`
	Name        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
}

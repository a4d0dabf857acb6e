package entities

import "time"

// User models the persisted marketplace account. Rows are written by the
// external registration flow; this service reads them for principal
// resolution and enrichment.
type User struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	Subject     string    `gorm:"size:128;uniqueIndex;not null"`
	Name        string    `gorm:"size:256;not null"`
	Email       string    `gorm:"size:256;uniqueIndex;not null"`
	Role        string    `gorm:"size:32;not null;index"`
	CompanyName string    `gorm:"size:256"`
	Bio         string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

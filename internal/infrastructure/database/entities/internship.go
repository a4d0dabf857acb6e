package entities

import "time"

// Internship models the persisted listing record.
type Internship struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	Title        string `gorm:"size:256;not null"`
	Company      string `gorm:"size:256;not null"`
	Location     string `gorm:"size:256;not null;index"`
	Description  string `gorm:"type:text;not null"`
	Requirements string `gorm:"type:text;not null"`
	Stipend      string `gorm:"size:128"`
	Duration     string `gorm:"size:128;not null"`
	PostedByID   string `gorm:"type:uuid;not null;index"`
	PostedBy     *User  `gorm:"foreignKey:PostedByID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Internship) TableName() string {
	return "internships"
}

package dto

import "time"

// FileDTO is an uploaded image a product can point at.
type FileDTO struct {
	ID           int64     `json:"id" gorm:"column:id"`
	AccountID    string    `json:"accountId" gorm:"column:account_id"`
	Path         string    `json:"path" gorm:"column:path"`
	OriginalName string    `json:"originalName" gorm:"column:original_name"`
	CreatedAt    time.Time `json:"createdAt" gorm:"column:created_at"`
}

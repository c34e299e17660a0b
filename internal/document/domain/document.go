package domain

import (
	"time"

	authdomain "journeyhome-backend/internal/auth/domain"
)

// Document is shared cohort material. FilePath is the object-storage
// key; downloads go through time-limited signed URLs.
type Document struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	CohortID    string    `json:"cohort_id" gorm:"index;not null"`
	UploadedBy  string    `json:"uploaded_by" gorm:"not null"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description,omitempty"`
	FilePath    string    `json:"file_path"`
	FileType    string    `json:"file_type"`
	FileSize    int64     `json:"file_size"`
	CreatedAt   time.Time `json:"created_at"`

	Uploader *authdomain.Profile `json:"uploader,omitempty" gorm:"foreignKey:UploadedBy;references:ID"`
}

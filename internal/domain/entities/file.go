package entities

import (
	"time"

	"github.com/google/uuid"
)

// File is metadata for an uploaded avatar
type File struct {
	ID           uuid.UUID `json:"_id"`
	UserID       uuid.UUID `json:"user"`
	OriginalName string    `json:"originalName"`
	Filename     string    `json:"filename"`
	Path         string    `json:"path"`
	Size         int64     `json:"size"`
	Type         string    `json:"type"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UploadedAvatar is returned after a successful avatar upload
type UploadedAvatar struct {
	OriginalName string `json:"originalName"`
	Filename     string `json:"filename"`
	UserAvatar   string `json:"useravatar"`
}

package domain

import "time"

type Image struct {
	ID         uint      `json:"id"`
	EntityType OwnerType `json:"entity_type"`
	EntityID   uint      `json:"entity_id"`
	Filename   string    `json:"filename"`
	Path       string    `json:"-"`
	URL        string    `json:"url"`
	CreatedAt  time.Time `json:"created_at"`
}

type Document struct {
	ID         uint      `json:"id"`
	EntityType OwnerType `json:"entity_type"`
	EntityID   uint      `json:"entity_id"`
	Filename   string    `json:"filename"`
	FilePath   string    `json:"file_path"`
	FileType   string    `json:"file_type"`
	FileSize   int64     `json:"file_size"`
	URL        string    `json:"url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

const (
	ContactPhone = "phone"
	ContactEmail = "email"
)

type Contact struct {
	ID           uint      `json:"id"`
	EntityType   OwnerType `json:"entity_type"`
	EntityID     uint      `json:"entity_id"`
	ContactType  string    `json:"contact_type"`
	ContactValue string    `json:"contact_value"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

package fun

import (
	"time"

	"santix-backoffice/internal/domain/assets"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusArchived = "archived"
)

// Item is a promotional content card shown on the consumer "fun" surface.
type Item struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Title        string  `gorm:"not null" json:"title"`
	Subtitle     *string `json:"subtitle"`
	Description  *string `json:"description"`
	ImageAssetID *uint   `json:"imageAssetId"`
	Image        *assets.Asset `gorm:"foreignKey:ImageAssetID" json:"-"`
	LinkURL      *string `gorm:"column:link_url" json:"linkUrl"`
	Status       string  `gorm:"not null;default:'active'" json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (Item) TableName() string { return "fun_items" }

func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusInactive || s == StatusArchived
}

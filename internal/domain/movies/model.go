package movies

import (
	"time"

	"santix-backoffice/internal/domain/assets"
)

const (
	StatusNowShowing = "now_showing"
	StatusComingSoon = "coming_soon"
	StatusArchived   = "archived"
)

type Movie struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Title         string  `gorm:"not null" json:"title"`
	Genre         *string `json:"genre"`
	DurationMin   *int    `json:"durationMin"`
	Rating        *string `json:"rating"`
	Status        string  `gorm:"not null;default:'coming_soon'" json:"status"`
	PosterAssetID *uint   `json:"posterAssetId"`
	PosterAsset   *assets.Asset `gorm:"foreignKey:PosterAssetID" json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
}

func ValidStatus(s string) bool {
	return s == StatusNowShowing || s == StatusComingSoon || s == StatusArchived
}

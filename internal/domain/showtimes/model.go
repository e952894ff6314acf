package showtimes

import (
	"time"

	"santix-backoffice/internal/domain/movies"
	"santix-backoffice/internal/domain/theaters"
)

const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCanceled  = "canceled"
)

type Showtime struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MovieID   uint      `gorm:"not null" json:"movieId"`
	TheaterID uint      `gorm:"not null" json:"theaterId"`
	Movie     *movies.Movie     `gorm:"foreignKey:MovieID" json:"movie,omitempty"`
	Theater   *theaters.Theater `gorm:"foreignKey:TheaterID" json:"theater,omitempty"`
	StartsAt  time.Time `gorm:"not null" json:"startsAt"`
	Lang      string    `gorm:"not null;default:'ID'" json:"lang"`
	Type      string    `gorm:"not null;default:'2D'" json:"type"`
	Status    string    `gorm:"not null;default:'scheduled'" json:"status"`
}

func ValidStatus(s string) bool {
	return s == StatusScheduled || s == StatusCompleted || s == StatusCanceled
}

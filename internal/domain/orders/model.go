package orders

import (
	"time"

	"santix-backoffice/internal/domain/showtimes"
)

const (
	StatusPaid     = "paid"
	StatusPending  = "pending"
	StatusRefunded = "refunded"
)

// Order is a back-office ticket order (seat count + total), distinct from the
// Midtrans payment transactions tracked in the payments package.
type Order struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ShowtimeID uint   `gorm:"not null" json:"showtimeId"`
	Showtime   *showtimes.Showtime `gorm:"foreignKey:ShowtimeID" json:"showtime,omitempty"`
	Customer   string `gorm:"not null" json:"customer"`
	Seats      int    `gorm:"not null" json:"seats"`
	Total      int    `gorm:"not null" json:"total"`
	Status     string `gorm:"not null;default:'pending'" json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

func ValidStatus(s string) bool {
	return s == StatusPaid || s == StatusPending || s == StatusRefunded
}

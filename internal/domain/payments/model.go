package payments

import (
	"time"

	"santix-backoffice/internal/domain/showtimes"
	"santix-backoffice/internal/domain/users"
)

// Payment tracks one Midtrans Snap checkout attempt. The row is created when
// the Snap transaction is opened and mutated only by the webhook handler (or
// the status-poll fallback), which moves Status out of "pending".
type Payment struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	OrderID       string  `gorm:"not null;uniqueIndex:idx_payments_order_id" json:"orderId"`
	UserID        *uint   `json:"userId"`
	ShowtimeID    *uint   `json:"showtimeId"`
	User          *users.User         `gorm:"foreignKey:UserID" json:"-"`
	Showtime      *showtimes.Showtime `gorm:"foreignKey:ShowtimeID" json:"-"`
	MovieTitle    *string `json:"movieTitle"`
	Cinema        *string `json:"cinema"`
	Seats         string  `gorm:"not null" json:"seats"` // JSON array of seat codes
	CustomerName  *string `json:"customerName"`
	CustomerEmail *string `json:"customerEmail"`
	Amount        int     `gorm:"not null" json:"amount"`
	Status        string  `gorm:"not null;default:'pending'" json:"status"`

	MidtransTransactionID *string `gorm:"column:midtrans_transaction_id" json:"midtransTransactionId"`
	PaymentType           *string `json:"paymentType"`
	SnapToken             *string `json:"snapToken"`
	SnapRedirectURL       *string `gorm:"column:snap_redirect_url" json:"snapRedirectUrl"`

	PaidAt    *time.Time `json:"paidAt"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

package payments

import (
	"net/http"
	"time"

	"santix-backoffice/database"
	"santix-backoffice/internal/api/httpx"
	paymentsdomain "santix-backoffice/internal/domain/payments"

	"github.com/gin-gonic/gin"
)

type ticket struct {
	ID          uint       `json:"id"`
	OrderID     string     `json:"orderId"`
	MovieTitle  *string    `json:"movieTitle"`
	Cinema      *string    `json:"cinema"`
	Seats       []string   `json:"seats"`
	Amount      int        `json:"amount"`
	Status      string     `json:"status"`
	PaymentType *string    `json:"paymentType"`
	PaidAt      *time.Time `json:"paidAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	ShowtimeID  *uint      `json:"showtimeId"`
}

// GET /payments/history?email=
//
// Paid tickets for a customer, newest payment first.
func GetPaymentHistory(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		httpx.Error(c, http.StatusBadRequest, "Email is required")
		return
	}
	if !isEmailValid(email) {
		httpx.Error(c, http.StatusBadRequest, "Invalid email format")
		return
	}

	var rows []paymentsdomain.Payment
	if err := database.DB.
		Where("customer_email = ? AND status = ?", email, paymentsdomain.StatusPaid).
		Order("paid_at DESC").
		Find(&rows).Error; err != nil {
		httpx.Error(c, http.StatusInternalServerError, "Failed to fetch payment history")
		return
	}

	tickets := make([]ticket, 0, len(rows))
	for _, p := range rows {
		tickets = append(tickets, ticket{
			ID:          p.ID,
			OrderID:     p.OrderID,
			MovieTitle:  p.MovieTitle,
			Cinema:      p.Cinema,
			Seats:       decodeSeats(p.Seats),
			Amount:      p.Amount,
			Status:      p.Status,
			PaymentType: p.PaymentType,
			PaidAt:      p.PaidAt,
			CreatedAt:   p.CreatedAt,
			ShowtimeID:  p.ShowtimeID,
		})
	}

	httpx.OK(c, http.StatusOK, gin.H{"tickets": tickets})
}

package payments

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"santix-backoffice/config"
	"santix-backoffice/database"
	"santix-backoffice/internal/api/httpx"
	paymentsdomain "santix-backoffice/internal/domain/payments"
	"santix-backoffice/internal/infra/midtrans"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func decodeSeats(raw string) []string {
	var seats []string
	if err := json.Unmarshal([]byte(raw), &seats); err != nil || seats == nil {
		return []string{}
	}
	return seats
}

func snapshot(p *paymentsdomain.Payment) gin.H {
	return gin.H{
		"orderId":     p.OrderID,
		"status":      p.Status,
		"amount":      p.Amount,
		"paymentType": p.PaymentType,
		"movieTitle":  p.MovieTitle,
		"cinema":      p.Cinema,
		"seats":       decodeSeats(p.Seats),
		"paidAt":      p.PaidAt,
		"createdAt":   p.CreatedAt,
	}
}

// GET /payments/:orderId/status
func GetPaymentStatus(c *gin.Context) {
	orderID := c.Param("orderId")

	var payment paymentsdomain.Payment
	if err := database.DB.Where("order_id = ?", orderID).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.Error(c, http.StatusNotFound, "Payment not found")
			return
		}
		httpx.Error(c, http.StatusInternalServerError, "Failed to get payment status")
		return
	}

	httpx.OK(c, http.StatusOK, snapshot(&payment))
}

// POST /payments/:orderId/sync
//
// Fallback when a webhook delivery is in doubt: poll the provider and apply
// the result through the same guarded transition the webhook uses.
func SyncPaymentStatus(c *gin.Context) {
	orderID := c.Param("orderId")

	var payment paymentsdomain.Payment
	if err := database.DB.Where("order_id = ?", orderID).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.Error(c, http.StatusNotFound, "Payment not found")
			return
		}
		httpx.Error(c, http.StatusInternalServerError, "Failed to load payment")
		return
	}

	client := midtrans.NewClient(config.MIDTRANS_SERVER_KEY, config.MIDTRANS_IS_PRODUCTION)
	n, err := client.TransactionStatus(c.Request.Context(), orderID)
	if err != nil {
		log.Println("Status poll failed:", err)
		httpx.Error(c, http.StatusBadGateway, "Failed to query payment provider")
		return
	}

	if err := applyNotification(n); err != nil {
		log.Println("Status sync error:", err)
		httpx.Error(c, http.StatusInternalServerError, "Failed to apply payment status")
		return
	}

	if err := database.DB.Where("order_id = ?", orderID).First(&payment).Error; err != nil {
		httpx.Error(c, http.StatusInternalServerError, "Failed to reload payment")
		return
	}
	httpx.OK(c, http.StatusOK, snapshot(&payment))
}

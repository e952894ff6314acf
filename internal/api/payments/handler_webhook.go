package payments

import (
	"errors"
	"log"
	"net/http"
	"time"

	"santix-backoffice/config"
	"santix-backoffice/database"
	"santix-backoffice/internal/api/httpx"
	paymentsdomain "santix-backoffice/internal/domain/payments"
	"santix-backoffice/internal/infra/midtrans"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// POST /payments/webhook
//
// Midtrans retries deliveries until it sees a 2xx, so this handler must stay
// safe under replays and out-of-order notifications: terminal rows are never
// modified.
func PaymentWebhook(c *gin.Context) {
	var n midtrans.Notification
	if err := c.ShouldBindJSON(&n); err != nil {
		httpx.Error(c, http.StatusBadRequest, "Invalid notification payload")
		return
	}

	if !midtrans.VerifySignature(n.OrderID, n.StatusCode, n.GrossAmount, config.MIDTRANS_SERVER_KEY, n.SignatureKey) {
		log.Println("Invalid webhook signature for order:", n.OrderID)
		httpx.Error(c, http.StatusForbidden, "Invalid signature")
		return
	}

	if err := applyNotification(&n); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.Error(c, http.StatusNotFound, "Payment not found")
			return
		}
		log.Println("Webhook processing error:", err)
		httpx.Error(c, http.StatusInternalServerError, "Webhook processing failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// applyNotification maps the provider status and applies it under the guarded
// transition rule. The UPDATE is keyed on the status we read, so a concurrent
// delivery racing this one leaves exactly one winner and no regression.
func applyNotification(n *midtrans.Notification) error {
	var payment paymentsdomain.Payment
	if err := database.DB.Where("order_id = ?", n.OrderID).First(&payment).Error; err != nil {
		return err
	}

	mapped := midtrans.MapStatus(n.TransactionStatus, n.FraudStatus)
	next, apply := paymentsdomain.NextStatus(payment.Status, mapped)
	if !apply {
		log.Printf("Payment %s already %s, ignoring %s notification", n.OrderID, payment.Status, n.TransactionStatus)
		return nil
	}

	updates := map[string]interface{}{
		"status":                  next,
		"midtrans_transaction_id": n.TransactionID,
		"payment_type":            n.PaymentType,
		"paid_at":                 nil,
	}
	if next == paymentsdomain.StatusPaid {
		updates["paid_at"] = time.Now()
	}

	res := database.DB.Model(&paymentsdomain.Payment{}).
		Where("order_id = ? AND status = ?", n.OrderID, payment.Status).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Lost the race to a concurrent delivery; the row already moved on.
		return nil
	}

	log.Printf("Payment %s updated to %s", n.OrderID, next)
	return nil
}

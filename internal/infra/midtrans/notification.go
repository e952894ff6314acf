package midtrans

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"

	"santix-backoffice/internal/domain/payments"
)

// Notification is the webhook payload Midtrans POSTs on every transaction
// status change. The same shape comes back from the status-poll endpoint.
type Notification struct {
	TransactionTime   string `json:"transaction_time"`
	TransactionStatus string `json:"transaction_status"`
	TransactionID     string `json:"transaction_id"`
	StatusMessage     string `json:"status_message"`
	StatusCode        string `json:"status_code"`
	SignatureKey      string `json:"signature_key"`
	PaymentType       string `json:"payment_type"`
	OrderID           string `json:"order_id"`
	MerchantID        string `json:"merchant_id"`
	GrossAmount       string `json:"gross_amount"`
	FraudStatus       string `json:"fraud_status"`
	Currency          string `json:"currency"`
}

// VerifySignature recomputes SHA-512(order_id + status_code + gross_amount +
// serverKey) and compares it to the supplied signature in constant time.
func VerifySignature(orderID, statusCode, grossAmount, serverKey, signature string) bool {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	expected := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}

// MapStatus translates the Midtrans transaction-status vocabulary into the
// local payment status. Unknown statuses stay pending so a later notification
// can still settle them.
func MapStatus(transactionStatus, fraudStatus string) string {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "accept" {
			return payments.StatusPaid
		}
		return payments.StatusPending
	case "settlement":
		return payments.StatusPaid
	case "pending":
		return payments.StatusPending
	case "deny", "cancel":
		return payments.StatusFailed
	case "expire":
		return payments.StatusExpired
	default:
		return payments.StatusPending
	}
}

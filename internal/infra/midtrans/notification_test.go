package midtrans

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"santix-backoffice/internal/domain/payments"
)

func signatureFor(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

func TestVerifySignature(t *testing.T) {
	const (
		orderID     = "SANTIX-1700000000000-AB12CD"
		statusCode  = "200"
		grossAmount = "150000.00"
		serverKey   = "SB-Mid-server-secret"
	)
	sig := signatureFor(orderID, statusCode, grossAmount, serverKey)

	if !VerifySignature(orderID, statusCode, grossAmount, serverKey, sig) {
		t.Fatal("valid signature rejected")
	}

	// Any single-field mutation must invalidate the signature.
	mutations := []struct {
		name                                       string
		orderID, statusCode, grossAmount, serverKey string
	}{
		{"order id", orderID + "X", statusCode, grossAmount, serverKey},
		{"status code", orderID, "201", grossAmount, serverKey},
		{"gross amount", orderID, statusCode, "150000.01", serverKey},
		{"server key", orderID, statusCode, grossAmount, serverKey + "x"},
	}
	for _, m := range mutations {
		t.Run(m.name, func(t *testing.T) {
			if VerifySignature(m.orderID, m.statusCode, m.grossAmount, m.serverKey, sig) {
				t.Error("mutated input accepted")
			}
		})
	}

	if VerifySignature(orderID, statusCode, grossAmount, serverKey, sig[:64]) {
		t.Error("truncated signature accepted")
	}
}

func TestMapStatus(t *testing.T) {
	tests := []struct {
		transaction string
		fraud       string
		want        string
	}{
		{"capture", "accept", payments.StatusPaid},
		{"capture", "challenge", payments.StatusPending},
		{"capture", "", payments.StatusPending},
		{"settlement", "", payments.StatusPaid},
		{"settlement", "accept", payments.StatusPaid},
		{"pending", "", payments.StatusPending},
		{"deny", "", payments.StatusFailed},
		{"cancel", "", payments.StatusFailed},
		{"expire", "", payments.StatusExpired},
		{"refund", "", payments.StatusPending},
		{"", "", payments.StatusPending},
	}
	for _, tt := range tests {
		name := tt.transaction + "/" + tt.fraud
		t.Run(name, func(t *testing.T) {
			if got := MapStatus(tt.transaction, tt.fraud); got != tt.want {
				t.Fatalf("MapStatus(%q, %q) = %q, want %q", tt.transaction, tt.fraud, got, tt.want)
			}
		})
	}
}

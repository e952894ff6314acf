package payments

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"log"
	"math/big"
	"net/http"
	"regexp"
	"strings"
	"time"

	"santix-backoffice/config"
	"santix-backoffice/database"
	"santix-backoffice/internal/api/httpx"
	paymentsdomain "santix-backoffice/internal/domain/payments"
	"santix-backoffice/internal/infra/midtrans"

	"github.com/gin-gonic/gin"
)

type createRequest struct {
	MovieID         uint     `json:"movieId"`
	MovieTitle      string   `json:"movieTitle"`
	ShowtimeID      *uint    `json:"showtimeId"`
	Cinema          string   `json:"cinema"`
	Seats           []string `json:"seats"`
	Amount          int      `json:"amount"`
	CustomerName    string   `json:"customerName"`
	CustomerEmail   string   `json:"customerEmail"`
	CustomerPhone   string   `json:"customerPhone"`
	EnabledPayments []string `json:"enabledPayments"`
}

func (r *createRequest) validate() map[string]string {
	fields := map[string]string{}
	if r.MovieID == 0 {
		fields["movieId"] = "must be a positive integer"
	}
	if r.MovieTitle == "" {
		fields["movieTitle"] = "is required"
	}
	if r.ShowtimeID != nil && *r.ShowtimeID == 0 {
		fields["showtimeId"] = "must be a positive integer"
	}
	if r.Cinema == "" {
		fields["cinema"] = "is required"
	}
	if len(r.Seats) == 0 {
		fields["seats"] = "at least one seat is required"
	}
	if r.Amount <= 0 {
		fields["amount"] = "must be a positive integer"
	}
	if r.CustomerName == "" {
		fields["customerName"] = "is required"
	}
	if !isEmailValid(r.CustomerEmail) {
		fields["customerEmail"] = "must be a valid email address"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func isEmailValid(email string) bool {
	pattern := `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`
	matched, _ := regexp.MatchString(pattern, email)
	return matched
}

// newOrderID builds a process-unique Midtrans order reference:
// SANTIX-<unix millis>-<6 random base36 chars>.
func newOrderID() string {
	const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	suffix := make([]byte, 6)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			n = big.NewInt(time.Now().UnixNano() % int64(len(alphabet)))
		}
		suffix[i] = alphabet[n.Int64()]
	}
	return fmt.Sprintf("SANTIX-%d-%s", time.Now().UnixMilli(), suffix)
}

// buildSnapRequest shapes the hosted-checkout request: one item covering all
// seats, priced at floor(amount/seats). The remainder from uneven splits is
// intentionally dropped, the gross amount stays authoritative.
func buildSnapRequest(orderID string, req *createRequest) midtrans.SnapRequest {
	return midtrans.SnapRequest{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:     orderID,
			GrossAmount: req.Amount,
		},
		CustomerDetails: &midtrans.CustomerDetails{
			FirstName: req.CustomerName,
			Email:     req.CustomerEmail,
			Phone:     req.CustomerPhone,
		},
		ItemDetails: []midtrans.ItemDetails{
			{
				ID:       fmt.Sprintf("MOVIE-%d", req.MovieID),
				Price:    req.Amount / len(req.Seats),
				Quantity: len(req.Seats),
				Name:     fmt.Sprintf("%s - %s", req.MovieTitle, strings.Join(req.Seats, ", ")),
			},
		},
		EnabledPayments: req.EnabledPayments,
	}
}

// POST /payments/create
func CreatePayment(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if fields := req.validate(); fields != nil {
		httpx.ValidationError(c, fields)
		return
	}

	orderID := newOrderID()

	client := midtrans.NewClient(config.MIDTRANS_SERVER_KEY, config.MIDTRANS_IS_PRODUCTION)
	snap, err := client.CreateTransaction(c.Request.Context(), buildSnapRequest(orderID, &req))
	if err != nil {
		log.Println("Snap transaction failed:", err)
		httpx.Error(c, http.StatusInternalServerError, "Failed to create payment")
		return
	}

	seatsJSON, _ := json.Marshal(req.Seats)
	payment := paymentsdomain.Payment{
		OrderID:         orderID,
		ShowtimeID:      req.ShowtimeID,
		MovieTitle:      &req.MovieTitle,
		Cinema:          &req.Cinema,
		Seats:           string(seatsJSON),
		CustomerName:    &req.CustomerName,
		CustomerEmail:   &req.CustomerEmail,
		Amount:          req.Amount,
		Status:          paymentsdomain.StatusPending,
		SnapToken:       &snap.Token,
		SnapRedirectURL: &snap.RedirectURL,
	}
	if err := database.DB.Create(&payment).Error; err != nil {
		log.Println("Failed to persist payment:", err)
		httpx.Error(c, http.StatusInternalServerError, "Failed to create payment")
		return
	}

	httpx.OK(c, http.StatusCreated, gin.H{
		"orderId":     orderID,
		"token":       snap.Token,
		"redirectUrl": snap.RedirectURL,
		"paymentId":   payment.ID,
	})
}

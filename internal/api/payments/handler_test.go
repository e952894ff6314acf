package payments

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"santix-backoffice/config"

	"github.com/gin-gonic/gin"
)

func postJSON(t *testing.T, handler gin.HandlerFunc, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	r := gin.New()
	r.POST(path, handler)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreatePaymentValidation(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantFields []string
	}{
		{
			"empty object",
			`{}`,
			[]string{"movieId", "movieTitle", "cinema", "seats", "amount", "customerName", "customerEmail"},
		},
		{
			"non-positive amount",
			`{"movieId":1,"movieTitle":"Dune","cinema":"Central","seats":["A1"],"amount":0,"customerName":"Budi","customerEmail":"budi@example.com"}`,
			[]string{"amount"},
		},
		{
			"malformed email",
			`{"movieId":1,"movieTitle":"Dune","cinema":"Central","seats":["A1"],"amount":50000,"customerName":"Budi","customerEmail":"not-an-email"}`,
			[]string{"customerEmail"},
		},
		{
			"empty seat list",
			`{"movieId":1,"movieTitle":"Dune","cinema":"Central","seats":[],"amount":50000,"customerName":"Budi","customerEmail":"budi@example.com"}`,
			[]string{"seats"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, CreatePayment, "/payments/create", []byte(tt.body))
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			var resp struct {
				Details map[string]string `json:"details"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			for _, f := range tt.wantFields {
				if _, ok := resp.Details[f]; !ok {
					t.Errorf("missing field error for %q in %v", f, resp.Details)
				}
			}
		})
	}
}

func TestCreatePaymentRejectsMalformedJSON(t *testing.T) {
	w := postJSON(t, CreatePayment, "/payments/create", []byte(`{"movieId":`))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestNewOrderIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^SANTIX-\d{13,}-[0-9A-Z]{6}$`)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := newOrderID()
		if !pattern.MatchString(id) {
			t.Fatalf("order id %q does not match expected format", id)
		}
		if seen[id] {
			t.Fatalf("duplicate order id %q", id)
		}
		seen[id] = true
	}
}

func TestBuildSnapRequestSplitsAmountPerSeat(t *testing.T) {
	req := &createRequest{
		MovieID:       7,
		MovieTitle:    "Dune",
		Cinema:        "Central Park",
		Seats:         []string{"A1", "A2"},
		Amount:        150000,
		CustomerName:  "Budi",
		CustomerEmail: "budi@example.com",
	}
	snap := buildSnapRequest("SANTIX-1-ABCDEF", req)

	if snap.TransactionDetails.GrossAmount != 150000 {
		t.Errorf("gross amount = %d", snap.TransactionDetails.GrossAmount)
	}
	item := snap.ItemDetails[0]
	if item.Price != 75000 || item.Quantity != 2 {
		t.Errorf("item = %+v, want price 75000 quantity 2", item)
	}
	if item.ID != "MOVIE-7" {
		t.Errorf("item id = %q", item.ID)
	}
	if item.Name != "Dune - A1, A2" {
		t.Errorf("item name = %q", item.Name)
	}
}

func TestBuildSnapRequestFloorsUnevenSplit(t *testing.T) {
	req := &createRequest{
		MovieID:       1,
		MovieTitle:    "Dune",
		Cinema:        "Central",
		Seats:         []string{"A1", "A2", "A3"},
		Amount:        100000,
		CustomerName:  "Budi",
		CustomerEmail: "budi@example.com",
	}
	snap := buildSnapRequest("SANTIX-2-ABCDEF", req)
	if got := snap.ItemDetails[0].Price; got != 33333 {
		t.Fatalf("price = %d, want 33333 (floor, remainder dropped)", got)
	}
}

func TestPaymentWebhookRejectsBadSignature(t *testing.T) {
	config.MIDTRANS_SERVER_KEY = "server-key"

	n := map[string]string{
		"order_id":           "SANTIX-1-ABCDEF",
		"status_code":        "200",
		"gross_amount":       "150000.00",
		"transaction_status": "settlement",
		"transaction_id":     "tx-1",
		"signature_key":      "definitely-wrong",
	}
	body, _ := json.Marshal(n)

	w := postJSON(t, PaymentWebhook, "/payments/webhook", body)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestPaymentWebhookRejectsMalformedBody(t *testing.T) {
	w := postJSON(t, PaymentWebhook, "/payments/webhook", []byte(`not json`))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

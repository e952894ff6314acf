package midtrans

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient("server-key", false)
	c.baseURL = srv.URL
	return c
}

func TestCreateTransaction(t *testing.T) {
	var got SnapRequest
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/snap/v1/transactions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("server-key:"))
		if r.Header.Get("Authorization") != wantAuth {
			t.Errorf("auth header = %q", r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"token":"snap-token","redirect_url":"https://app.sandbox.midtrans.com/snap/v3/redirection/snap-token"}`))
	})

	resp, err := c.CreateTransaction(context.Background(), SnapRequest{
		TransactionDetails: TransactionDetails{OrderID: "SANTIX-1-ABCDEF", GrossAmount: 150000},
		CustomerDetails:    &CustomerDetails{FirstName: "Budi", Email: "budi@example.com"},
		ItemDetails: []ItemDetails{
			{ID: "MOVIE-1", Price: 75000, Quantity: 2, Name: "Dune - A1, A2"},
		},
	})
	if err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}
	if resp.Token != "snap-token" || !strings.Contains(resp.RedirectURL, "snap-token") {
		t.Fatalf("unexpected response: %+v", resp)
	}

	if len(got.EnabledPayments) != len(DefaultEnabledPayments) {
		t.Errorf("enabled_payments not defaulted: %v", got.EnabledPayments)
	}
	if got.CreditCard == nil || !got.CreditCard.Secure {
		t.Error("credit_card.secure not set")
	}
}

func TestCreateTransactionKeepsCallerPayments(t *testing.T) {
	var got SnapRequest
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"token":"tok","redirect_url":"https://example.test/tok"}`))
	})

	_, err := c.CreateTransaction(context.Background(), SnapRequest{
		TransactionDetails: TransactionDetails{OrderID: "SANTIX-2-ABCDEF", GrossAmount: 50000},
		EnabledPayments:    []string{"gopay"},
	})
	if err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}
	if len(got.EnabledPayments) != 1 || got.EnabledPayments[0] != "gopay" {
		t.Errorf("enabled_payments overridden: %v", got.EnabledPayments)
	}
}

func TestCreateTransactionUpstreamError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error_messages":["Access denied"]}`))
	})

	_, err := c.CreateTransaction(context.Background(), SnapRequest{
		TransactionDetails: TransactionDetails{OrderID: "SANTIX-3-ABCDEF", GrossAmount: 1000},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("error should carry upstream status: %v", err)
	}
}

func TestTransactionStatus(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/SANTIX-4-ABCDEF/status" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"order_id":"SANTIX-4-ABCDEF","transaction_status":"settlement","transaction_id":"tx-1","gross_amount":"150000.00","status_code":"200"}`))
	})

	n, err := c.TransactionStatus(context.Background(), "SANTIX-4-ABCDEF")
	if err != nil {
		t.Fatalf("TransactionStatus: %v", err)
	}
	if n.TransactionStatus != "settlement" || n.OrderID != "SANTIX-4-ABCDEF" {
		t.Fatalf("unexpected notification: %+v", n)
	}
}

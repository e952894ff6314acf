package httpx

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func ctxWithQuery(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		page     int
		pageSize int
		offset   int
	}{
		{"defaults", "", 1, 20, 0},
		{"explicit", "page=3&limit=10", 3, 10, 20},
		{"pageSize alias", "page=2&pageSize=5", 2, 5, 5},
		{"clamped above", "limit=500", 1, 100, 0},
		{"clamped below", "page=0&limit=0", 1, 1, 0},
		{"garbage", "page=abc&limit=xyz", 1, 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParsePagination(ctxWithQuery(t, tt.query))
			if p.Page != tt.page || p.PageSize != tt.pageSize || p.Offset != tt.offset {
				t.Fatalf("got %+v, want page=%d pageSize=%d offset=%d", p, tt.page, tt.pageSize, tt.offset)
			}
		})
	}
}

func TestParseSort(t *testing.T) {
	allowed := map[string]string{"id": "id", "created_at": "created_at"}

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"missing", "", "id ASC"},
		{"asc default", "sort=created_at", "created_at ASC"},
		{"desc", "sort=created_at:desc", "created_at DESC"},
		{"unknown field", "sort=password:desc", "id ASC"},
		{"injection attempt", "sort=id%3Bdrop+table", "id ASC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseSort(ctxWithQuery(t, tt.query), allowed, "id ASC"); got != tt.want {
				t.Fatalf("ParseSort(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

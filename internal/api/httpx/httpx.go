// Package httpx carries the response envelopes and list-query helpers shared
// by every resource handler: {data}, {data, meta} and {error, details}.
package httpx

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

type ListMeta struct {
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
	Total    int64 `json:"total"`
}

func OK(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"data": data})
}

func OKList(c *gin.Context, data any, meta ListMeta) {
	c.JSON(http.StatusOK, gin.H{"data": data, "meta": meta})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// ValidationError reports a 400 with per-field messages, mirroring the shape
// the admin UI expects.
func ValidationError(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": fields})
}

type Pagination struct {
	Page     int
	PageSize int
	Offset   int
	Limit    int
}

// ParsePagination reads page/limit (pageSize accepted as an alias), clamping
// the page size to 1..100 with a default of 20.
func ParsePagination(c *gin.Context) Pagination {
	page := clampInt(c.Query("page"), 1, 0)
	if page == 0 {
		page = 1
	}
	rawSize := c.Query("limit")
	if rawSize == "" {
		rawSize = c.Query("pageSize")
	}
	pageSize := clampInt(rawSize, 1, 100)
	if pageSize == 0 {
		pageSize = 20
	}
	return Pagination{
		Page:     page,
		PageSize: pageSize,
		Offset:   (page - 1) * pageSize,
		Limit:    pageSize,
	}
}

// ParseSort maps sort=field:dir onto an ORDER BY clause using a per-resource
// column allow-list. Unknown fields fall back to the given default.
func ParseSort(c *gin.Context, allowed map[string]string, fallback string) string {
	sort := c.Query("sort")
	if sort == "" {
		return fallback
	}
	field, dir, _ := strings.Cut(sort, ":")
	col, ok := allowed[field]
	if !ok {
		return fallback
	}
	if strings.EqualFold(dir, "desc") {
		return col + " DESC"
	}
	return col + " ASC"
}

// ParseID normalizes the :id route parameter.
func ParseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// IsForeignKeyViolation reports whether err is a Postgres 23503, i.e. a
// delete blocked by a referencing row.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

func clampInt(raw string, min, max int) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	if n < min {
		n = min
	}
	if max > 0 && n > max {
		n = max
	}
	return n
}

package showtimes

import (
	"net/http"
	"strconv"
	"time"

	"santix-backoffice/database"
	"santix-backoffice/internal/api/httpx"
	"santix-backoffice/internal/domain/showtimes"

	"github.com/gin-gonic/gin"
)

var sortColumns = map[string]string{
	"id":        "id",
	"starts_at": "starts_at",
	"status":    "status",
}

func queryUint(c *gin.Context, name string) *uint {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		return nil
	}
	v := uint(n)
	return &v
}

// GET /showtimes
func ListShowtimes(c *gin.Context) {
	p := httpx.ParsePagination(c)
	order := httpx.ParseSort(c, sortColumns, "starts_at ASC")

	q := database.DB.Model(&showtimes.Showtime{})
	if movieID := queryUint(c, "movieId"); movieID != nil {
		q = q.Where("movie_id = ?", *movieID)
	}
	if theaterID := queryUint(c, "theaterId"); theaterID != nil {
		q = q.Where("theater_id = ?", *theaterID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httpx.Error(c, http.StatusInternalServerError, "Failed to load showtimes")
		return
	}

	var rows []showtimes.Showtime
	if err := q.Preload("Movie").Preload("Theater").
		Order(order).Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		httpx.Error(c, http.StatusInternalServerError, "Failed to load showtimes")
		return
	}

	httpx.OKList(c, rows, httpx.ListMeta{Page: p.Page, PageSize: p.PageSize, Total: total})
}

// GET /showtimes/:id
func GetShowtime(c *gin.Context) {
	id, ok := httpx.ParseID(c)
	if !ok {
		httpx.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}

	var row showtimes.Showtime
	if err := database.DB.Preload("Movie").Preload("Theater").First(&row, id).Error; err != nil {
		httpx.Error(c, http.StatusNotFound, "Not found")
		return
	}
	httpx.OK(c, http.StatusOK, row)
}

type showtimeRequest struct {
	MovieID   *uint   `json:"movieId"`
	TheaterID *uint   `json:"theaterId"`
	StartsAt  *string `json:"startsAt"`
	Lang      *string `json:"lang"`
	Type      *string `json:"type"`
	Status    *string `json:"status"`
}

func (r *showtimeRequest) validate(create bool) (time.Time, map[string]string) {
	fields := map[string]string{}
	var startsAt time.Time

	if create && (r.MovieID == nil || *r.MovieID == 0) {
		fields["movieId"] = "must be a positive integer"
	}
	if !create && r.MovieID != nil && *r.MovieID == 0 {
		fields["movieId"] = "must be a positive integer"
	}
	if create && (r.TheaterID == nil || *r.TheaterID == 0) {
		fields["theaterId"] = "must be a positive integer"
	}
	if !create && r.TheaterID != nil && *r.TheaterID == 0 {
		fields["theaterId"] = "must be a positive integer"
	}
	if create && r.StartsAt == nil {
		fields["startsAt"] = "is required"
	}
	if r.StartsAt != nil {
		t, err := time.Parse(time.RFC3339, *r.StartsAt)
		if err != nil {
			fields["startsAt"] = "must be an RFC 3339 timestamp"
		} else {
			startsAt = t
		}
	}
	if r.Lang != nil && *r.Lang == "" {
		fields["lang"] = "must not be empty"
	}
	if r.Type != nil && *r.Type == "" {
		fields["type"] = "must not be empty"
	}
	if r.Status != nil && !showtimes.ValidStatus(*r.Status) {
		fields["status"] = "must be one of scheduled, completed, canceled"
	}

	if len(fields) == 0 {
		return startsAt, nil
	}
	return startsAt, fields
}

// POST /showtimes
func CreateShowtime(c *gin.Context) {
	var req showtimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	startsAt, fields := req.validate(true)
	if fields != nil {
		httpx.ValidationError(c, fields)
		return
	}

	row := showtimes.Showtime{
		MovieID:   *req.MovieID,
		TheaterID: *req.TheaterID,
		StartsAt:  startsAt,
		Lang:      "ID",
		Type:      "2D",
		Status:    showtimes.StatusScheduled,
	}
	if req.Lang != nil {
		row.Lang = *req.Lang
	}
	if req.Type != nil {
		row.Type = *req.Type
	}
	if req.Status != nil {
		row.Status = *req.Status
	}

	if err := database.DB.Create(&row).Error; err != nil {
		if httpx.IsForeignKeyViolation(err) {
			httpx.Error(c, http.StatusConflict, "Unknown movie or theater reference")
			return
		}
		httpx.Error(c, http.StatusInternalServerError, "Failed to create showtime")
		return
	}
	httpx.OK(c, http.StatusCreated, row)
}

// PUT /showtimes/:id
func UpdateShowtime(c *gin.Context) {
	id, ok := httpx.ParseID(c)
	if !ok {
		httpx.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}

	var req showtimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	startsAt, fields := req.validate(false)
	if fields != nil {
		httpx.ValidationError(c, fields)
		return
	}

	var row showtimes.Showtime
	if err := database.DB.First(&row, id).Error; err != nil {
		httpx.Error(c, http.StatusNotFound, "Not found")
		return
	}

	updates := map[string]interface{}{}
	if req.MovieID != nil {
		updates["movie_id"] = *req.MovieID
	}
	if req.TheaterID != nil {
		updates["theater_id"] = *req.TheaterID
	}
	if req.StartsAt != nil {
		updates["starts_at"] = startsAt
	}
	if req.Lang != nil {
		updates["lang"] = *req.Lang
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&row).Updates(updates).Error; err != nil {
			if httpx.IsForeignKeyViolation(err) {
				httpx.Error(c, http.StatusConflict, "Unknown movie or theater reference")
				return
			}
			httpx.Error(c, http.StatusInternalServerError, "Failed to update showtime")
			return
		}
	}
	httpx.OK(c, http.StatusOK, row)
}

// DELETE /showtimes/:id
func DeleteShowtime(c *gin.Context) {
	id, ok := httpx.ParseID(c)
	if !ok {
		httpx.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}

	res := database.DB.Delete(&showtimes.Showtime{}, id)
	if res.Error != nil {
		if httpx.IsForeignKeyViolation(res.Error) {
			httpx.Error(c, http.StatusConflict, "Cannot delete showtime: referenced by orders. Delete related orders first.")
			return
		}
		httpx.Error(c, http.StatusInternalServerError, "Failed to delete showtime")
		return
	}
	if res.RowsAffected == 0 {
		httpx.Error(c, http.StatusNotFound, "Not found")
		return
	}
	httpx.OK(c, http.StatusOK, gin.H{"ok": true})
}

package movies

import (
	"net/http"

	"santix-backoffice/database"
	"santix-backoffice/internal/api/httpx"
	"santix-backoffice/internal/domain/movies"

	"github.com/gin-gonic/gin"
)

var sortColumns = map[string]string{
	"id":         "id",
	"title":      "title",
	"created_at": "created_at",
	"status":     "status",
}

// GET /movies
func ListMovies(c *gin.Context) {
	p := httpx.ParsePagination(c)
	order := httpx.ParseSort(c, sortColumns, "id ASC")

	q := database.DB.Model(&movies.Movie{})
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httpx.Error(c, http.StatusInternalServerError, "Failed to load movies")
		return
	}

	var rows []movies.Movie
	if err := q.Order(order).Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		httpx.Error(c, http.StatusInternalServerError, "Failed to load movies")
		return
	}

	httpx.OKList(c, rows, httpx.ListMeta{Page: p.Page, PageSize: p.PageSize, Total: total})
}

// GET /movies/:id
func GetMovie(c *gin.Context) {
	id, ok := httpx.ParseID(c)
	if !ok {
		httpx.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}

	var row movies.Movie
	if err := database.DB.First(&row, id).Error; err != nil {
		httpx.Error(c, http.StatusNotFound, "Not found")
		return
	}
	httpx.OK(c, http.StatusOK, row)
}

type movieRequest struct {
	Title         *string `json:"title"`
	Genre         *string `json:"genre"`
	DurationMin   *int    `json:"durationMin"`
	Rating        *string `json:"rating"`
	Status        *string `json:"status"`
	PosterAssetID *uint   `json:"posterAssetId"`
}

func (r *movieRequest) validate(create bool) map[string]string {
	fields := map[string]string{}
	if create && (r.Title == nil || *r.Title == "") {
		fields["title"] = "is required"
	}
	if !create && r.Title != nil && *r.Title == "" {
		fields["title"] = "must not be empty"
	}
	if r.DurationMin != nil && *r.DurationMin <= 0 {
		fields["durationMin"] = "must be a positive integer"
	}
	if r.Status != nil && !movies.ValidStatus(*r.Status) {
		fields["status"] = "must be one of now_showing, coming_soon, archived"
	}
	if r.PosterAssetID != nil && *r.PosterAssetID == 0 {
		fields["posterAssetId"] = "must be a positive integer"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// POST /movies
func CreateMovie(c *gin.Context) {
	var req movieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if fields := req.validate(true); fields != nil {
		httpx.ValidationError(c, fields)
		return
	}

	row := movies.Movie{
		Title:         *req.Title,
		Genre:         req.Genre,
		DurationMin:   req.DurationMin,
		Rating:        req.Rating,
		Status:        movies.StatusComingSoon,
		PosterAssetID: req.PosterAssetID,
	}
	if req.Status != nil {
		row.Status = *req.Status
	}

	if err := database.DB.Create(&row).Error; err != nil {
		httpx.Error(c, http.StatusInternalServerError, "Failed to create movie")
		return
	}
	httpx.OK(c, http.StatusCreated, row)
}

// PUT /movies/:id
func UpdateMovie(c *gin.Context) {
	id, ok := httpx.ParseID(c)
	if !ok {
		httpx.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}

	var req movieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if fields := req.validate(false); fields != nil {
		httpx.ValidationError(c, fields)
		return
	}

	var row movies.Movie
	if err := database.DB.First(&row, id).Error; err != nil {
		httpx.Error(c, http.StatusNotFound, "Not found")
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Genre != nil {
		updates["genre"] = *req.Genre
	}
	if req.DurationMin != nil {
		updates["duration_min"] = *req.DurationMin
	}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.PosterAssetID != nil {
		updates["poster_asset_id"] = *req.PosterAssetID
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&row).Updates(updates).Error; err != nil {
			httpx.Error(c, http.StatusInternalServerError, "Failed to update movie")
			return
		}
	}
	httpx.OK(c, http.StatusOK, row)
}

// DELETE /movies/:id
func DeleteMovie(c *gin.Context) {
	id, ok := httpx.ParseID(c)
	if !ok {
		httpx.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}

	res := database.DB.Delete(&movies.Movie{}, id)
	if res.Error != nil {
		if httpx.IsForeignKeyViolation(res.Error) {
			httpx.Error(c, http.StatusConflict, "Cannot delete movie: referenced by showtimes. Delete related showtimes first.")
			return
		}
		httpx.Error(c, http.StatusInternalServerError, "Failed to delete movie")
		return
	}
	if res.RowsAffected == 0 {
		httpx.Error(c, http.StatusNotFound, "Not found")
		return
	}
	httpx.OK(c, http.StatusOK, gin.H{"ok": true})
}

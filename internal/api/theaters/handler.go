package theaters

import (
	"net/http"

	"santix-backoffice/database"
	"santix-backoffice/internal/api/httpx"
	"santix-backoffice/internal/domain/theaters"

	"github.com/gin-gonic/gin"
)

var sortColumns = map[string]string{
	"id":       "id",
	"name":     "name",
	"location": "location",
	"seats":    "seats",
}

// GET /theaters
func ListTheaters(c *gin.Context) {
	p := httpx.ParsePagination(c)
	order := httpx.ParseSort(c, sortColumns, "id ASC")

	q := database.DB.Model(&theaters.Theater{})
	if search := c.Query("q"); search != "" {
		q = q.Where("name ILIKE ? OR location ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httpx.Error(c, http.StatusInternalServerError, "Failed to load theaters")
		return
	}

	var rows []theaters.Theater
	if err := q.Order(order).Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		httpx.Error(c, http.StatusInternalServerError, "Failed to load theaters")
		return
	}

	httpx.OKList(c, rows, httpx.ListMeta{Page: p.Page, PageSize: p.PageSize, Total: total})
}

// GET /theaters/:id
func GetTheater(c *gin.Context) {
	id, ok := httpx.ParseID(c)
	if !ok {
		httpx.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}

	var row theaters.Theater
	if err := database.DB.First(&row, id).Error; err != nil {
		httpx.Error(c, http.StatusNotFound, "Not found")
		return
	}
	httpx.OK(c, http.StatusOK, row)
}

type theaterRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Rooms    *int    `json:"rooms"`
	Seats    *int    `json:"seats"`
}

func (r *theaterRequest) validate(create bool) map[string]string {
	fields := map[string]string{}
	if create && (r.Name == nil || *r.Name == "") {
		fields["name"] = "is required"
	}
	if !create && r.Name != nil && *r.Name == "" {
		fields["name"] = "must not be empty"
	}
	if create && (r.Location == nil || *r.Location == "") {
		fields["location"] = "is required"
	}
	if !create && r.Location != nil && *r.Location == "" {
		fields["location"] = "must not be empty"
	}
	if r.Rooms != nil && *r.Rooms < 1 {
		fields["rooms"] = "must be at least 1"
	}
	if r.Seats != nil && *r.Seats < 0 {
		fields["seats"] = "must not be negative"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// POST /theaters
func CreateTheater(c *gin.Context) {
	var req theaterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if fields := req.validate(true); fields != nil {
		httpx.ValidationError(c, fields)
		return
	}

	row := theaters.Theater{Name: *req.Name, Location: *req.Location, Rooms: 1}
	if req.Rooms != nil {
		row.Rooms = *req.Rooms
	}
	if req.Seats != nil {
		row.Seats = *req.Seats
	}

	if err := database.DB.Create(&row).Error; err != nil {
		httpx.Error(c, http.StatusInternalServerError, "Failed to create theater")
		return
	}
	httpx.OK(c, http.StatusCreated, row)
}

// PUT /theaters/:id
func UpdateTheater(c *gin.Context) {
	id, ok := httpx.ParseID(c)
	if !ok {
		httpx.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}

	var req theaterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if fields := req.validate(false); fields != nil {
		httpx.ValidationError(c, fields)
		return
	}

	var row theaters.Theater
	if err := database.DB.First(&row, id).Error; err != nil {
		httpx.Error(c, http.StatusNotFound, "Not found")
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Rooms != nil {
		updates["rooms"] = *req.Rooms
	}
	if req.Seats != nil {
		updates["seats"] = *req.Seats
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&row).Updates(updates).Error; err != nil {
			httpx.Error(c, http.StatusInternalServerError, "Failed to update theater")
			return
		}
	}
	httpx.OK(c, http.StatusOK, row)
}

// DELETE /theaters/:id
func DeleteTheater(c *gin.Context) {
	id, ok := httpx.ParseID(c)
	if !ok {
		httpx.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}

	res := database.DB.Delete(&theaters.Theater{}, id)
	if res.Error != nil {
		if httpx.IsForeignKeyViolation(res.Error) {
			httpx.Error(c, http.StatusConflict, "Cannot delete theater: referenced by showtimes. Delete related showtimes first.")
			return
		}
		httpx.Error(c, http.StatusInternalServerError, "Failed to delete theater")
		return
	}
	if res.RowsAffected == 0 {
		httpx.Error(c, http.StatusNotFound, "Not found")
		return
	}
	httpx.OK(c, http.StatusOK, gin.H{"ok": true})
}

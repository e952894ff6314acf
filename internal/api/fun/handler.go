package fun

import (
	"net/http"
	"net/url"

	"santix-backoffice/database"
	"santix-backoffice/internal/api/httpx"
	"santix-backoffice/internal/domain/fun"

	"github.com/gin-gonic/gin"
)

var sortColumns = map[string]string{
	"id":         "id",
	"title":      "title",
	"created_at": "created_at",
	"status":     "status",
}

// GET /fun
func ListItems(c *gin.Context) {
	p := httpx.ParsePagination(c)
	order := httpx.ParseSort(c, sortColumns, "id ASC")

	q := database.DB.Model(&fun.Item{})
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httpx.Error(c, http.StatusInternalServerError, "Failed to load fun items")
		return
	}

	var rows []fun.Item
	if err := q.Order(order).Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		httpx.Error(c, http.StatusInternalServerError, "Failed to load fun items")
		return
	}

	httpx.OKList(c, rows, httpx.ListMeta{Page: p.Page, PageSize: p.PageSize, Total: total})
}

// GET /fun/:id
func GetItem(c *gin.Context) {
	id, ok := httpx.ParseID(c)
	if !ok {
		httpx.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}

	var row fun.Item
	if err := database.DB.First(&row, id).Error; err != nil {
		httpx.Error(c, http.StatusNotFound, "Not found")
		return
	}
	httpx.OK(c, http.StatusOK, row)
}

type itemRequest struct {
	Title        *string `json:"title"`
	Subtitle     *string `json:"subtitle"`
	Description  *string `json:"description"`
	ImageAssetID *uint   `json:"imageAssetId"`
	LinkURL      *string `json:"linkUrl"`
	Status       *string `json:"status"`
}

func isURLValid(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func (r *itemRequest) validate(create bool) map[string]string {
	fields := map[string]string{}
	if create && (r.Title == nil || *r.Title == "") {
		fields["title"] = "is required"
	}
	if !create && r.Title != nil && *r.Title == "" {
		fields["title"] = "must not be empty"
	}
	if r.ImageAssetID != nil && *r.ImageAssetID == 0 {
		fields["imageAssetId"] = "must be a positive integer"
	}
	if r.LinkURL != nil && !isURLValid(*r.LinkURL) {
		fields["linkUrl"] = "must be a valid http(s) URL"
	}
	if r.Status != nil && !fun.ValidStatus(*r.Status) {
		fields["status"] = "must be one of active, inactive, archived"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// POST /fun
func CreateItem(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if fields := req.validate(true); fields != nil {
		httpx.ValidationError(c, fields)
		return
	}

	row := fun.Item{
		Title:        *req.Title,
		Subtitle:     req.Subtitle,
		Description:  req.Description,
		ImageAssetID: req.ImageAssetID,
		LinkURL:      req.LinkURL,
		Status:       fun.StatusActive,
	}
	if req.Status != nil {
		row.Status = *req.Status
	}

	if err := database.DB.Create(&row).Error; err != nil {
		httpx.Error(c, http.StatusInternalServerError, "Failed to create fun item")
		return
	}
	httpx.OK(c, http.StatusCreated, row)
}

// PUT /fun/:id
func UpdateItem(c *gin.Context) {
	id, ok := httpx.ParseID(c)
	if !ok {
		httpx.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}

	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if fields := req.validate(false); fields != nil {
		httpx.ValidationError(c, fields)
		return
	}

	var row fun.Item
	if err := database.DB.First(&row, id).Error; err != nil {
		httpx.Error(c, http.StatusNotFound, "Not found")
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Subtitle != nil {
		updates["subtitle"] = *req.Subtitle
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ImageAssetID != nil {
		updates["image_asset_id"] = *req.ImageAssetID
	}
	if req.LinkURL != nil {
		updates["link_url"] = *req.LinkURL
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&row).Updates(updates).Error; err != nil {
			httpx.Error(c, http.StatusInternalServerError, "Failed to update fun item")
			return
		}
	}
	httpx.OK(c, http.StatusOK, row)
}

// DELETE /fun/:id
func DeleteItem(c *gin.Context) {
	id, ok := httpx.ParseID(c)
	if !ok {
		httpx.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}

	res := database.DB.Delete(&fun.Item{}, id)
	if res.Error != nil {
		httpx.Error(c, http.StatusInternalServerError, "Failed to delete fun item")
		return
	}
	if res.RowsAffected == 0 {
		httpx.Error(c, http.StatusNotFound, "Not found")
		return
	}
	httpx.OK(c, http.StatusOK, gin.H{"ok": true})
}

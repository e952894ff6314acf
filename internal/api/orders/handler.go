package orders

import (
	"net/http"
	"strconv"

	"santix-backoffice/database"
	"santix-backoffice/internal/api/httpx"
	"santix-backoffice/internal/domain/orders"

	"github.com/gin-gonic/gin"
)

var sortColumns = map[string]string{
	"id":         "id",
	"created_at": "created_at",
	"status":     "status",
	"total":      "total",
}

// GET /orders
func ListOrders(c *gin.Context) {
	p := httpx.ParsePagination(c)
	order := httpx.ParseSort(c, sortColumns, "created_at ASC")

	q := database.DB.Model(&orders.Order{})
	if raw := c.Query("showtimeId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil && id > 0 {
			q = q.Where("showtime_id = ?", uint(id))
		}
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httpx.Error(c, http.StatusInternalServerError, "Failed to load orders")
		return
	}

	var rows []orders.Order
	if err := q.Order(order).Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		httpx.Error(c, http.StatusInternalServerError, "Failed to load orders")
		return
	}

	httpx.OKList(c, rows, httpx.ListMeta{Page: p.Page, PageSize: p.PageSize, Total: total})
}

// GET /orders/:id
func GetOrder(c *gin.Context) {
	id, ok := httpx.ParseID(c)
	if !ok {
		httpx.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}

	var row orders.Order
	if err := database.DB.Preload("Showtime").First(&row, id).Error; err != nil {
		httpx.Error(c, http.StatusNotFound, "Not found")
		return
	}
	httpx.OK(c, http.StatusOK, row)
}

type orderRequest struct {
	ShowtimeID *uint   `json:"showtimeId"`
	Customer   *string `json:"customer"`
	Seats      *int    `json:"seats"`
	Total      *int    `json:"total"`
	Status     *string `json:"status"`
}

func (r *orderRequest) validate(create bool) map[string]string {
	fields := map[string]string{}
	if create && (r.ShowtimeID == nil || *r.ShowtimeID == 0) {
		fields["showtimeId"] = "must be a positive integer"
	}
	if !create && r.ShowtimeID != nil && *r.ShowtimeID == 0 {
		fields["showtimeId"] = "must be a positive integer"
	}
	if create && (r.Customer == nil || *r.Customer == "") {
		fields["customer"] = "is required"
	}
	if !create && r.Customer != nil && *r.Customer == "" {
		fields["customer"] = "must not be empty"
	}
	if create && (r.Seats == nil || *r.Seats <= 0) {
		fields["seats"] = "must be a positive integer"
	}
	if !create && r.Seats != nil && *r.Seats <= 0 {
		fields["seats"] = "must be a positive integer"
	}
	if create && (r.Total == nil || *r.Total < 0) {
		fields["total"] = "must not be negative"
	}
	if !create && r.Total != nil && *r.Total < 0 {
		fields["total"] = "must not be negative"
	}
	if r.Status != nil && !orders.ValidStatus(*r.Status) {
		fields["status"] = "must be one of paid, pending, refunded"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// POST /orders
func CreateOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if fields := req.validate(true); fields != nil {
		httpx.ValidationError(c, fields)
		return
	}

	row := orders.Order{
		ShowtimeID: *req.ShowtimeID,
		Customer:   *req.Customer,
		Seats:      *req.Seats,
		Total:      *req.Total,
		Status:     orders.StatusPending,
	}
	if req.Status != nil {
		row.Status = *req.Status
	}

	if err := database.DB.Create(&row).Error; err != nil {
		if httpx.IsForeignKeyViolation(err) {
			httpx.Error(c, http.StatusConflict, "Unknown showtime reference")
			return
		}
		httpx.Error(c, http.StatusInternalServerError, "Failed to create order")
		return
	}
	httpx.OK(c, http.StatusCreated, row)
}

// PUT /orders/:id
func UpdateOrder(c *gin.Context) {
	id, ok := httpx.ParseID(c)
	if !ok {
		httpx.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}

	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if fields := req.validate(false); fields != nil {
		httpx.ValidationError(c, fields)
		return
	}

	var row orders.Order
	if err := database.DB.First(&row, id).Error; err != nil {
		httpx.Error(c, http.StatusNotFound, "Not found")
		return
	}

	updates := map[string]interface{}{}
	if req.ShowtimeID != nil {
		updates["showtime_id"] = *req.ShowtimeID
	}
	if req.Customer != nil {
		updates["customer"] = *req.Customer
	}
	if req.Seats != nil {
		updates["seats"] = *req.Seats
	}
	if req.Total != nil {
		updates["total"] = *req.Total
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&row).Updates(updates).Error; err != nil {
			if httpx.IsForeignKeyViolation(err) {
				httpx.Error(c, http.StatusConflict, "Unknown showtime reference")
				return
			}
			httpx.Error(c, http.StatusInternalServerError, "Failed to update order")
			return
		}
	}
	httpx.OK(c, http.StatusOK, row)
}

// DELETE /orders/:id
func DeleteOrder(c *gin.Context) {
	id, ok := httpx.ParseID(c)
	if !ok {
		httpx.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}

	res := database.DB.Delete(&orders.Order{}, id)
	if res.Error != nil {
		httpx.Error(c, http.StatusInternalServerError, "Failed to delete order")
		return
	}
	if res.RowsAffected == 0 {
		httpx.Error(c, http.StatusNotFound, "Not found")
		return
	}
	httpx.OK(c, http.StatusOK, gin.H{"ok": true})
}

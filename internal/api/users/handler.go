package users

import (
	"net/http"
	"regexp"

	"santix-backoffice/database"
	"santix-backoffice/internal/api/httpx"
	"santix-backoffice/internal/domain/users"

	"github.com/gin-gonic/gin"
)

var sortColumns = map[string]string{
	"id":    "id",
	"email": "email",
	"role":  "role",
}

func isEmailValid(email string) bool {
	pattern := `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`
	matched, _ := regexp.MatchString(pattern, email)
	return matched
}

// GET /users
func ListUsers(c *gin.Context) {
	p := httpx.ParsePagination(c)
	order := httpx.ParseSort(c, sortColumns, "id ASC")

	q := database.DB.Model(&users.User{})
	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if search := c.Query("q"); search != "" {
		q = q.Where("email ILIKE ? OR name ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httpx.Error(c, http.StatusInternalServerError, "Failed to load users")
		return
	}

	var rows []users.User
	if err := q.Order(order).Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		httpx.Error(c, http.StatusInternalServerError, "Failed to load users")
		return
	}

	httpx.OKList(c, rows, httpx.ListMeta{Page: p.Page, PageSize: p.PageSize, Total: total})
}

// GET /users/:id
func GetUser(c *gin.Context) {
	id, ok := httpx.ParseID(c)
	if !ok {
		httpx.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}

	var row users.User
	if err := database.DB.First(&row, id).Error; err != nil {
		httpx.Error(c, http.StatusNotFound, "Not found")
		return
	}
	httpx.OK(c, http.StatusOK, row)
}

type userRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Role   *string `json:"role"`
	Status *string `json:"status"`
}

func (r *userRequest) validate(create bool) map[string]string {
	fields := map[string]string{}
	if create && r.Email == nil {
		fields["email"] = "is required"
	}
	if r.Email != nil && !isEmailValid(*r.Email) {
		fields["email"] = "must be a valid email address"
	}
	if r.Role != nil && !users.ValidRole(*r.Role) {
		fields["role"] = "must be one of admin, staff, customer"
	}
	if r.Status != nil && !users.ValidStatus(*r.Status) {
		fields["status"] = "must be one of active, disabled"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// POST /users
func CreateUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if fields := req.validate(true); fields != nil {
		httpx.ValidationError(c, fields)
		return
	}

	row := users.User{
		Name:   req.Name,
		Email:  *req.Email,
		Role:   users.RoleStaff,
		Status: users.StatusActive,
	}
	if req.Role != nil {
		row.Role = *req.Role
	}
	if req.Status != nil {
		row.Status = *req.Status
	}

	if err := database.DB.Create(&row).Error; err != nil {
		httpx.Error(c, http.StatusConflict, "Email may already exist")
		return
	}
	httpx.OK(c, http.StatusCreated, row)
}

// PUT /users/:id
func UpdateUser(c *gin.Context) {
	id, ok := httpx.ParseID(c)
	if !ok {
		httpx.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}

	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if fields := req.validate(false); fields != nil {
		httpx.ValidationError(c, fields)
		return
	}

	var row users.User
	if err := database.DB.First(&row, id).Error; err != nil {
		httpx.Error(c, http.StatusNotFound, "Not found")
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&row).Updates(updates).Error; err != nil {
			httpx.Error(c, http.StatusConflict, "Email may already exist")
			return
		}
	}
	httpx.OK(c, http.StatusOK, row)
}

// DELETE /users/:id
func DeleteUser(c *gin.Context) {
	id, ok := httpx.ParseID(c)
	if !ok {
		httpx.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}

	res := database.DB.Delete(&users.User{}, id)
	if res.Error != nil {
		if httpx.IsForeignKeyViolation(res.Error) {
			httpx.Error(c, http.StatusConflict, "Cannot delete user: referenced by payments.")
			return
		}
		httpx.Error(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	if res.RowsAffected == 0 {
		httpx.Error(c, http.StatusNotFound, "Not found")
		return
	}
	httpx.OK(c, http.StatusOK, gin.H{"ok": true})
}

package assets

import (
	"encoding/base64"
	"io"
	"net/http"
	"strconv"

	"santix-backoffice/database"
	"santix-backoffice/internal/api/httpx"
	"santix-backoffice/internal/domain/assets"

	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 10 << 20

// POST /assets
func UploadAsset(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		httpx.ValidationError(c, map[string]string{"file": "is required"})
		return
	}
	if header.Size > maxUploadBytes {
		httpx.Error(c, http.StatusBadRequest, "File exceeds the 10 MB limit")
		return
	}

	f, err := header.Open()
	if err != nil {
		httpx.Error(c, http.StatusInternalServerError, "Failed to read upload")
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil || len(raw) > maxUploadBytes {
		httpx.Error(c, http.StatusBadRequest, "File exceeds the 10 MB limit")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(raw)
	}

	row := assets.Asset{
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        len(raw),
		Data:        base64.StdEncoding.EncodeToString(raw),
	}
	if err := database.DB.Create(&row).Error; err != nil {
		httpx.Error(c, http.StatusInternalServerError, "Failed to store asset")
		return
	}
	httpx.OK(c, http.StatusCreated, gin.H{"id": row.ID})
}

// GET /assets/:id
func GetAsset(c *gin.Context) {
	id, ok := httpx.ParseID(c)
	if !ok {
		httpx.Error(c, http.StatusBadRequest, "Invalid id")
		return
	}

	var row assets.Asset
	if err := database.DB.First(&row, id).Error; err != nil {
		httpx.Error(c, http.StatusNotFound, "Not found")
		return
	}

	raw, err := base64.StdEncoding.DecodeString(row.Data)
	if err != nil {
		httpx.Error(c, http.StatusInternalServerError, "Stored asset is corrupt")
		return
	}

	c.Header("Content-Type", row.ContentType)
	c.Header("Content-Length", strconv.Itoa(len(raw)))
	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.Data(http.StatusOK, row.ContentType, raw)
}

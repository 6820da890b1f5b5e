package upload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Amitsjoysm/LEADGENIE/internal/models"
	"github.com/Amitsjoysm/LEADGENIE/internal/services"
	"github.com/Amitsjoysm/LEADGENIE/internal/utils"
)

const maxUploadSize = 20 << 20 // 20 MiB

// Template godoc
// @Summary Download a bulk upload CSV template
// @Tags admin-upload
// @Produce  text/csv
// @Security ApiKeyAuth
// @Param   kind   path  string  true  "Template kind"  Enums(profiles, companies)
// @Success 200 {string} string "CSV content"
// @Failure 400 {object} utils.Response
// @Router /admin/upload/template/{kind} [get]
func Template(c *gin.Context) {
	kind := c.Param("kind")

	data, err := services.GenerateUploadTemplate(kind)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s_template.csv", kind))
	c.Data(http.StatusOK, "text/csv", data)
}

// Upload godoc
// @Summary Queue a bulk CSV import
// @Description Accept a CSV file plus an optional column-to-field mapping and queue it for the background worker
// @Tags admin-upload
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   kind           formData  string  true   "Import kind"  Enums(profiles, companies)
// @Param   file           formData  file    true   "CSV file"
// @Param   field_mapping  formData  string  false  "JSON object mapping CSV columns to fields"
// @Success 202 {object} utils.Response{data=models.UploadTask}
// @Failure 400 {object} utils.Response
// @Router /admin/upload [post]
func Upload(c *gin.Context) {
	kind := c.PostForm("kind")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Missing CSV file"))
		return
	}
	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "File too large"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to read file"))
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to read file"))
		return
	}

	var fieldMapping map[string]string
	if mappingStr := c.PostForm("field_mapping"); mappingStr != "" {
		if err := json.Unmarshal([]byte(mappingStr), &fieldMapping); err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid field_mapping JSON"))
			return
		}
	}

	var creatorID uint
	creatorName := "admin"
	if v, ok := c.Get("user"); ok {
		if u, ok := v.(models.User); ok {
			creatorID = u.ID
			creatorName = u.Email
		}
	}

	task, err := services.CreateUploadTask(kind, raw, fieldMapping, creatorID, creatorName)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTemplateKind) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusAccepted, utils.NewSuccessResponse("Upload queued", task))
}

// Status godoc
// @Summary Get a bulk upload task
// @Tags admin-upload
// @Produce  json
// @Security ApiKeyAuth
// @Param   id   path  int  true  "Task ID"
// @Success 200 {object} utils.Response{data=models.UploadTask}
// @Failure 404 {object} utils.Response
// @Router /admin/upload/{id} [get]
func Status(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid task ID"))
		return
	}

	task, err := services.GetUploadTask(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", task))
}

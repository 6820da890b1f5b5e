package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/Amitsjoysm/LEADGENIE/internal/database"
	"github.com/Amitsjoysm/LEADGENIE/internal/models"
)

const UploadQueueKey = "bulk_upload_queue"

var ErrUploadTaskNotFound = errors.New("upload task not found")
var ErrInvalidTemplateKind = errors.New("invalid template kind, use 'profiles' or 'companies'")

var uploadTemplates = map[string][]string{
	"profiles": {
		"first_name", "last_name", "job_title", "company_name", "company_domain",
		"industry", "emails", "phones", "city", "state", "country", "linkedin_url",
	},
	"companies": {
		"name", "domain", "industry", "employee_size", "revenue", "linkedin_url",
		"description", "city", "state", "country",
	},
}

var uploadExampleRows = map[string][]string{
	"profiles": {
		"John", "Doe", "CEO", "TechCorp Inc", "techcorp.com",
		"Technology", "john.doe@techcorp.com", "+1-555-123-4567",
		"San Francisco", "CA", "USA", "https://linkedin.com/in/johndoe",
	},
	"companies": {
		"TechCorp Inc", "techcorp.com", "Technology", "100-500", "$10M-$50M",
		"https://linkedin.com/company/techcorp", "Leading tech company",
		"San Francisco", "CA", "USA",
	},
}

// GenerateUploadTemplate builds the CSV template (header + one example
// row) for a bulk upload kind.
func GenerateUploadTemplate(kind string) ([]byte, error) {
	header, ok := uploadTemplates[kind]
	if !ok {
		return nil, ErrInvalidTemplateKind
	}

	b := &bytes.Buffer{}
	w := csv.NewWriter(b)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.Write(uploadExampleRows[kind]); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// CreateUploadTask stores the raw CSV and queues it for the worker.
func CreateUploadTask(kind string, raw []byte, fieldMapping map[string]string, creatorID uint, creatorName string) (*models.UploadTask, error) {
	if _, ok := uploadTemplates[kind]; !ok {
		return nil, ErrInvalidTemplateKind
	}

	rows, err := parseCSV(raw)
	if err != nil {
		return nil, err
	}

	mappingJSON, err := json.Marshal(fieldMapping)
	if err != nil {
		return nil, err
	}

	task := &models.UploadTask{
		CreatorID:    creatorID,
		CreatorName:  creatorName,
		Kind:         kind,
		FieldMapping: datatypes.JSON(mappingJSON),
		RawData:      raw,
		Status:       models.UploadStatusPending,
		TotalRows:    len(rows),
	}

	if err := database.DB.Create(task).Error; err != nil {
		return nil, err
	}

	if err := database.RedisClient.RPush(database.Ctx, UploadQueueKey, task.ID).Err(); err != nil {
		return task, fmt.Errorf("upload task created but failed to queue: %v", err)
	}

	return task, nil
}

// GetUploadTask retrieves a single upload task by ID
func GetUploadTask(id uint) (*models.UploadTask, error) {
	var task models.UploadTask
	if err := database.DB.First(&task, id).Error; err != nil {
		return nil, ErrUploadTaskNotFound
	}
	return &task, nil
}

// StartUploadWorker runs the background worker loop.
func StartUploadWorker() {
	zap.L().Info("bulk upload worker started")
	for {
		result, err := database.RedisClient.BLPop(context.Background(), 0*time.Second, UploadQueueKey).Result()
		if err != nil {
			zap.L().Error("upload queue pop failed", zap.Error(err))
			time.Sleep(1 * time.Second) // Prevent tight loop on error
			continue
		}

		// result[0] is the key, result[1] is the value
		taskID, err := strconv.Atoi(result[1])
		if err != nil {
			zap.L().Warn("invalid upload task id", zap.String("value", result[1]))
			continue
		}

		if err := ProcessUploadTask(uint(taskID)); err != nil {
			zap.L().Error("upload task failed", zap.Int("task_id", taskID), zap.Error(err))
		}
	}
}

// ProcessUploadTask imports every row of a queued task, tracking
// per-row success and failure counts on the task record.
func ProcessUploadTask(id uint) error {
	task, err := GetUploadTask(id)
	if err != nil {
		return err
	}

	database.DB.Model(task).Update("status", models.UploadStatusProcessing)

	var mapping map[string]string
	if len(task.FieldMapping) > 0 {
		if err := json.Unmarshal(task.FieldMapping, &mapping); err != nil {
			database.DB.Model(task).Updates(map[string]interface{}{
				"status": models.UploadStatusFailed, "error_log": err.Error(),
			})
			return err
		}
	}

	rows, err := parseCSV(task.RawData)
	if err != nil {
		database.DB.Model(task).Updates(map[string]interface{}{
			"status": models.UploadStatusFailed, "error_log": err.Error(),
		})
		return err
	}

	var success, failed int
	var errLog strings.Builder
	for i, row := range rows {
		mapped := applyFieldMapping(row, mapping)

		var rowErr error
		if task.Kind == "companies" {
			rowErr = importCompanyRow(mapped)
		} else {
			rowErr = importProfileRow(mapped)
		}

		if rowErr != nil {
			failed++
			fmt.Fprintf(&errLog, "row %d: %v\n", i+2, rowErr)
		} else {
			success++
		}

		database.DB.Model(task).Updates(map[string]interface{}{
			"processed_rows": i + 1,
			"success_count":  success,
			"error_count":    failed,
		})
	}

	status := models.UploadStatusCompleted
	if success == 0 && failed > 0 {
		status = models.UploadStatusFailed
	}
	return database.DB.Model(task).Updates(map[string]interface{}{
		"status":    status,
		"error_log": errLog.String(),
	}).Error
}

func parseCSV(raw []byte) ([]map[string]string, error) {
	r := csv.NewReader(bytes.NewReader(raw))
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %v", err)
	}

	var rows []map[string]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[strings.TrimSpace(col)] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// applyFieldMapping renames CSV columns to model fields. Columns
// without a mapping entry keep their name.
func applyFieldMapping(row map[string]string, mapping map[string]string) map[string]string {
	if len(mapping) == 0 {
		return row
	}
	out := make(map[string]string, len(row))
	for col, val := range row {
		if field, ok := mapping[col]; ok {
			out[field] = val
		} else {
			out[col] = val
		}
	}
	return out
}

func importProfileRow(row map[string]string) error {
	if row["first_name"] == "" || row["last_name"] == "" {
		return errors.New("first_name and last_name are required")
	}

	_, err := CreateProfile(ProfileInput{
		FirstName:          row["first_name"],
		LastName:           row["last_name"],
		JobTitle:           row["job_title"],
		Industry:           row["industry"],
		CompanyName:        row["company_name"],
		CompanyDomain:      row["company_domain"],
		ProfileLinkedinURL: row["linkedin_url"],
		Emails:             splitMulti(row["emails"]),
		Phones:             splitMulti(row["phones"]),
		City:               row["city"],
		State:              row["state"],
		Country:            row["country"],
	})
	return err
}

func importCompanyRow(row map[string]string) error {
	if row["name"] == "" || row["domain"] == "" {
		return errors.New("name and domain are required")
	}

	// Re-importing a known domain updates nothing; the domain is the
	// company's identity.
	existing, err := UpsertCompanyByDomain(row["name"], row["domain"])
	if err != nil {
		return err
	}
	if existing.Industry != "" {
		return nil
	}

	_, err = UpdateCompany(existing.ID, map[string]interface{}{
		"industry":      row["industry"],
		"employee_size": row["employee_size"],
		"revenue":       row["revenue"],
		"linkedin_url":  row["linkedin_url"],
		"description":   row["description"],
		"city":          row["city"],
		"state":         row["state"],
		"country":       row["country"],
	})
	return err
}

func splitMulti(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.FieldsFunc(value, func(r rune) bool { return r == ';' || r == ',' })
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

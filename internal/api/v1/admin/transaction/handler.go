package transaction

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Amitsjoysm/LEADGENIE/internal/models"
	"github.com/Amitsjoysm/LEADGENIE/internal/services"
	"github.com/Amitsjoysm/LEADGENIE/internal/utils"
)

func parseFilter(c *gin.Context) services.TransactionFilter {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 20
	}

	filter := services.TransactionFilter{Page: page, Limit: limit}

	if userIDStr := c.Query("user_id"); userIDStr != "" {
		if userID, err := strconv.ParseUint(userIDStr, 10, 32); err == nil {
			id := uint(userID)
			filter.UserID = &id
		}
	}
	if t := c.Query("type"); t != "" {
		txType := models.TransactionType(t)
		filter.Type = &txType
	}
	if s := c.Query("start_time"); s != "" {
		if ts, err := time.Parse(time.RFC3339, s); err == nil {
			filter.StartTime = &ts
		}
	}
	if e := c.Query("end_time"); e != "" {
		if ts, err := time.Parse(time.RFC3339, e); err == nil {
			filter.EndTime = &ts
		}
	}

	return filter
}

// List godoc
// @Summary List ledger rows
// @Description List credit transactions across all users with filtering
// @Tags admin-transactions
// @Produce  json
// @Security ApiKeyAuth
// @Param   page        query  int     false  "Page number (default 1)"
// @Param   limit       query  int     false  "Page size (default 20)"
// @Param   user_id     query  int     false  "User filter"
// @Param   type        query  string  false  "Transaction type filter"
// @Param   start_time  query  string  false  "RFC3339 lower bound"
// @Param   end_time    query  string  false  "RFC3339 upper bound"
// @Success 200 {object} utils.Response{data=TransactionListResponse}
// @Failure 403 {object} utils.Response
// @Router /admin/transactions [get]
func List(c *gin.Context) {
	filter := parseFilter(c)

	transactions, total, err := services.FindTransactions(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch transactions"))
		return
	}

	items := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		items = append(items, toTransactionResponse(&transactions[i]))
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", TransactionListResponse{
		Transactions: items,
		Total:        total,
		Page:         filter.Page,
		Limit:        filter.Limit,
	}))
}

// Export godoc
// @Summary Export ledger rows as CSV
// @Tags admin-transactions
// @Produce  text/csv
// @Security ApiKeyAuth
// @Param   user_id     query  int     false  "User filter"
// @Param   type        query  string  false  "Transaction type filter"
// @Param   start_time  query  string  false  "RFC3339 lower bound"
// @Param   end_time    query  string  false  "RFC3339 upper bound"
// @Success 200 {string} string "CSV content"
// @Failure 403 {object} utils.Response
// @Router /admin/transactions/export [get]
func Export(c *gin.Context) {
	filter := parseFilter(c)
	filter.Page = 1
	filter.Limit = 100000 // Export cap

	transactions, _, err := services.FindTransactions(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch transactions"))
		return
	}

	data, err := services.GenerateTransactionCSV(transactions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to generate CSV"))
		return
	}

	filename := fmt.Sprintf("transactions_%s.csv", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv", data)
}

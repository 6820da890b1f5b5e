package credits

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Amitsjoysm/LEADGENIE/internal/models"
	"github.com/Amitsjoysm/LEADGENIE/internal/services"
	"github.com/Amitsjoysm/LEADGENIE/internal/utils"
)

// GetBalance godoc
// @Summary Current credit balance
// @Tags credits
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=BalanceResponse}
// @Failure 401 {object} utils.Response
// @Router /credits/balance [get]
func GetBalance(c *gin.Context) {
	u := c.MustGet("user").(models.User)

	balance, err := services.GetBalance(u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch balance"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", BalanceResponse{UserID: u.ID, Balance: balance}))
}

// ListTransactions godoc
// @Summary Own ledger history
// @Description List the caller's credit transactions, newest first
// @Tags credits
// @Produce  json
// @Security ApiKeyAuth
// @Param   page   query  int     false  "Page number (default 1)"
// @Param   limit  query  int     false  "Page size (default 20)"
// @Param   type   query  string  false  "Transaction type filter"
// @Success 200 {object} utils.Response{data=TransactionListResponse}
// @Failure 401 {object} utils.Response
// @Router /credits/transactions [get]
func ListTransactions(c *gin.Context) {
	u := c.MustGet("user").(models.User)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	filter := services.TransactionFilter{
		UserID: &u.ID,
		Page:   page,
		Limit:  limit,
	}
	if t := c.Query("type"); t != "" {
		txType := models.TransactionType(t)
		filter.Type = &txType
	}

	transactions, total, err := services.FindTransactions(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch transactions"))
		return
	}

	items := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		items = append(items, TransactionResponse{
			ID:            t.ID,
			Amount:        t.Amount,
			BalanceBefore: t.BalanceBefore,
			BalanceAfter:  t.BalanceAfter,
			Type:          string(t.Type),
			ReferenceID:   t.ReferenceID,
			Reason:        t.Reason,
			CreatedAt:     t.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", TransactionListResponse{
		Transactions: items,
		Total:        total,
		Page:         page,
		Limit:        limit,
	}))
}

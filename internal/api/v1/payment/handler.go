package payment

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Amitsjoysm/LEADGENIE/internal/services"
	"github.com/Amitsjoysm/LEADGENIE/internal/utils"
)

// ListMethods godoc
// @Summary List enabled payment methods
// @Tags payment
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=[]PaymentMethodResponse}
// @Router /payment/methods [get]
func ListMethods(c *gin.Context) {
	methods, err := services.GetPaymentMethods()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch payment methods"))
		return
	}

	items := make([]PaymentMethodResponse, 0, len(methods))
	for _, m := range methods {
		items = append(items, PaymentMethodResponse{
			UUID:          m.UUID,
			Name:          m.Name,
			PaymentMethod: m.PaymentMethod,
		})
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", items))
}

// Notify handles the asynchronous gateway callback. The gateway expects
// the literal body "success" on acceptance and retries otherwise, so a
// replayed callback must also answer "success"; the order completion is
// conditional on the pending state and grants credits only once.
func Notify(c *gin.Context) {
	paymentUUID := c.Param("uuid")

	params := make(map[string]interface{})
	if err := c.Request.ParseForm(); err == nil {
		for k, v := range c.Request.Form {
			if len(v) > 0 {
				params[k] = v[0]
			}
		}
	}
	for k, v := range c.Request.URL.Query() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}

	if err := services.HandlePaymentNotify(paymentUUID, params); err != nil {
		if err == services.ErrOrderNotPayable {
			// Already completed; acknowledge the replay.
			c.String(http.StatusOK, "success")
			return
		}
		zap.L().Warn("payment notify rejected",
			zap.String("payment_uuid", paymentUUID),
			zap.Error(err))
		c.String(http.StatusBadRequest, "fail")
		return
	}

	c.String(http.StatusOK, "success")
}

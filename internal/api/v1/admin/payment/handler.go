package payment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amitsjoysm/LEADGENIE/internal/models"
	"github.com/Amitsjoysm/LEADGENIE/internal/services"
	"github.com/Amitsjoysm/LEADGENIE/internal/utils"
)

// CreateConfig godoc
// @Summary Register a payment gateway configuration
// @Tags admin-payment
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   input     body   CreateConfigInput  true  "Config Input"
// @Success 201 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Router /admin/payment/configs [post]
func CreateConfig(c *gin.Context) {
	var input CreateConfigInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	cfg, err := services.CreatePaymentConfig(input.Name, input.PaymentMethod, input.Config, input.Enable)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create payment config"))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Payment config created", cfg))
}

// CompleteOrder godoc
// @Summary Manually complete a pending order
// @Description Flip a pending order to paid and grant its credits. Used when a gateway callback was lost.
// @Tags admin-payment
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   input     body   CompleteOrderInput  true  "Order Input"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /admin/payment/orders/complete [post]
func CompleteOrder(c *gin.Context) {
	var input CompleteOrderInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	operator := "admin"
	if v, ok := c.Get("user"); ok {
		if u, ok := v.(models.User); ok {
			operator = u.Email
		}
	}

	if err := services.CompleteOrder(input.OrderID, operator); err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrOrderNotPayable):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to complete order"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Order completed", nil))
}

package plan

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amitsjoysm/LEADGENIE/internal/models"
	"github.com/Amitsjoysm/LEADGENIE/internal/services"
	"github.com/Amitsjoysm/LEADGENIE/internal/utils"
)

// List godoc
// @Summary List active plans
// @Tags plans
// @Produce  json
// @Success 200 {object} utils.Response{data=[]PlanResponse}
// @Router /plans [get]
func List(c *gin.Context) {
	plans, err := services.FindPlans(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch plans"))
		return
	}

	items := make([]PlanResponse, 0, len(plans))
	for i := range plans {
		items = append(items, toPlanResponse(&plans[i]))
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", items))
}

// Get godoc
// @Summary Get one plan
// @Tags plans
// @Produce  json
// @Param   id   path  string  true  "Plan ID"
// @Success 200 {object} utils.Response{data=PlanResponse}
// @Failure 404 {object} utils.Response
// @Router /plans/{id} [get]
func Get(c *gin.Context) {
	p, err := services.FindPlanByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch plan"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", toPlanResponse(p)))
}

// Purchase godoc
// @Summary Purchase a plan
// @Description Open a pending order for the plan's credit package and return the gateway payment URL
// @Tags plans
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id        path  string         true  "Plan ID"
// @Param   input     body  PurchaseInput  true  "Purchase Input"
// @Success 200 {object} utils.Response{data=PurchaseResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /plans/{id}/purchase [post]
func Purchase(c *gin.Context) {
	u := c.MustGet("user").(models.User)

	var input PurchaseInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	order, err := services.CreatePlanOrder(u.ID, c.Param("id"), input.PaymentUUID)
	if err != nil {
		if errors.Is(err, services.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create order"))
		return
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	notifyBaseURL := fmt.Sprintf("%s://%s/api/v1/payment/notify", scheme, c.Request.Host)

	payURL, err := services.GetPaymentJumpURL(order.ID, input.PaymentUUID, input.PaymentChannel, notifyBaseURL, input.ReturnURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Order created", PurchaseResponse{
		OrderID: order.ID,
		Credits: order.Credits,
		Amount:  order.Amount,
		Status:  order.Status,
		PayURL:  payURL,
	}))
}

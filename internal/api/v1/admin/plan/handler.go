package plan

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amitsjoysm/LEADGENIE/internal/services"
	"github.com/Amitsjoysm/LEADGENIE/internal/utils"
)

// Create godoc
// @Summary Create a plan
// @Tags admin-plans
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   input     body   services.PlanInput  true  "Plan Input"
// @Success 201 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Router /admin/plans [post]
func Create(c *gin.Context) {
	var input services.PlanInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	p, err := services.CreatePlan(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create plan"))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Plan created", p))
}

// List godoc
// @Summary List all plans including inactive
// @Tags admin-plans
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Router /admin/plans [get]
func List(c *gin.Context) {
	plans, err := services.FindPlans(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch plans"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", plans))
}

// Update godoc
// @Summary Update a plan
// @Tags admin-plans
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id      path  string                  true  "Plan ID"
// @Param   input   body  map[string]interface{}  true  "Fields to update"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/plans/{id} [put]
func Update(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid request body"))
		return
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "No fields to update"))
		return
	}

	p, err := services.UpdatePlan(c.Param("id"), updates)
	if err != nil {
		if errors.Is(err, services.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update plan"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Plan updated", p))
}

// Delete godoc
// @Summary Deactivate a plan
// @Description Soft delete; purchased history keeps referencing the plan
// @Tags admin-plans
// @Produce  json
// @Security ApiKeyAuth
// @Param   id   path  string  true  "Plan ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/plans/{id} [delete]
func Delete(c *gin.Context) {
	if err := services.DeletePlan(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to deactivate plan"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Plan deactivated", nil))
}

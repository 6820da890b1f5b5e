package company

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amitsjoysm/LEADGENIE/internal/services"
	"github.com/Amitsjoysm/LEADGENIE/internal/utils"
)

// Create godoc
// @Summary Create a company
// @Tags admin-companies
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   input     body   services.CompanyInput  true  "Company Input"
// @Success 201 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Router /admin/companies [post]
func Create(c *gin.Context) {
	var input services.CompanyInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	co, err := services.CreateCompany(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create company"))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Company created", co))
}

// Update godoc
// @Summary Update a company
// @Tags admin-companies
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id      path  string                  true  "Company ID"
// @Param   input   body  map[string]interface{}  true  "Fields to update"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/companies/{id} [put]
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

	co, err := services.UpdateCompany(c.Param("id"), updates)
	if err != nil {
		if errors.Is(err, services.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update company"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Company updated", co))
}

// Delete godoc
// @Summary Delete a company
// @Tags admin-companies
// @Produce  json
// @Security ApiKeyAuth
// @Param   id   path  string  true  "Company ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/companies/{id} [delete]
func Delete(c *gin.Context) {
	if err := services.DeleteCompany(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete company"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Company deleted", nil))
}

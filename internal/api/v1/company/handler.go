package company

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amitsjoysm/LEADGENIE/internal/services"
	"github.com/Amitsjoysm/LEADGENIE/internal/utils"
)

// Search godoc
// @Summary Search companies
// @Tags companies
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   input     body   SearchInput  true  "Search Input"
// @Success 200 {object} utils.Response{data=SearchResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /companies/search [post]
func Search(c *gin.Context) {
	var input SearchInput
	if !utils.BindAndValidate(c, &input) {
		return
	}
	if input.Page < 1 {
		input.Page = 1
	}
	if input.PageSize < 1 || input.PageSize > 100 {
		input.PageSize = 20
	}

	companies, total, err := services.SearchCompanies(services.CompanyFilter{
		Name:         input.Name,
		Industry:     input.Industry,
		Revenue:      input.Revenue,
		EmployeeSize: input.EmployeeSize,
		City:         input.City,
		Country:      input.Country,
		Page:         input.Page,
		PageSize:     input.PageSize,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to search companies"))
		return
	}

	items := make([]CompanyResponse, 0, len(companies))
	for i := range companies {
		items = append(items, toCompanyResponse(&companies[i]))
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", SearchResponse{
		Companies: items,
		Total:     total,
		Page:      input.Page,
		PageSize:  input.PageSize,
	}))
}

// Get godoc
// @Summary Get one company
// @Tags companies
// @Produce  json
// @Security ApiKeyAuth
// @Param   id   path  string  true  "Company ID"
// @Success 200 {object} utils.Response{data=CompanyResponse}
// @Failure 401 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /companies/{id} [get]
func Get(c *gin.Context) {
	co, err := services.FindCompanyByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch company"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", toCompanyResponse(co)))
}

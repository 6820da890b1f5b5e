package profile

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amitsjoysm/LEADGENIE/internal/models"
	"github.com/Amitsjoysm/LEADGENIE/internal/services"
	"github.com/Amitsjoysm/LEADGENIE/internal/utils"
)

// Search godoc
// @Summary Search profiles
// @Description Search profiles by name, title, industry, company or location. Contact fields are masked unless previously revealed by the caller.
// @Tags profiles
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   input     body   SearchInput  true  "Search Input"
// @Success 200 {object} utils.Response{data=SearchResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /profiles/search [post]
func Search(c *gin.Context) {
	u := c.MustGet("user").(models.User)

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

	profiles, total, err := services.SearchProfiles(services.ProfileFilter{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		JobTitle:    input.JobTitle,
		Industry:    input.Industry,
		CompanyName: input.CompanyName,
		City:        input.City,
		Country:     input.Country,
		Keyword:     input.Keyword,
		Page:        input.Page,
		PageSize:    input.PageSize,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to search profiles"))
		return
	}

	ids := make([]string, 0, len(profiles))
	for i := range profiles {
		ids = append(ids, profiles[i].ID)
	}
	records, err := services.FindRevealRecords(u.ID, ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to load reveal state"))
		return
	}

	items := make([]ProfileResponse, 0, len(profiles))
	for i := range profiles {
		items = append(items, toProfileResponse(&profiles[i], u.Role, records))
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", SearchResponse{
		Profiles: items,
		Total:    total,
		Page:     input.Page,
		PageSize: input.PageSize,
	}))
}

// Get godoc
// @Summary Get one profile
// @Description Fetch a profile by ID with the caller's masking applied
// @Tags profiles
// @Produce  json
// @Security ApiKeyAuth
// @Param   id   path  string  true  "Profile ID"
// @Success 200 {object} utils.Response{data=ProfileResponse}
// @Failure 401 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /profiles/{id} [get]
func Get(c *gin.Context) {
	u := c.MustGet("user").(models.User)
	id := c.Param("id")

	p, err := services.FindProfileByID(id)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch profile"))
		return
	}

	records, err := services.FindRevealRecords(u.ID, []string{p.ID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to load reveal state"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", toProfileResponse(p, u.Role, records)))
}

// Reveal godoc
// @Summary Reveal a contact field
// @Description Unlock the email or phone of a profile, charging the field's credit cost at most once per profile and field. Repeats are free.
// @Tags profiles
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id        path  string       true  "Profile ID"
// @Param   input     body  RevealInput  true  "Reveal Input"
// @Success 200 {object} utils.Response{data=RevealResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 402 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /profiles/{id}/reveal [post]
func Reveal(c *gin.Context) {
	u := c.MustGet("user").(models.User)
	id := c.Param("id")

	var input RevealInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	result, err := services.Reveal(u, id, input.FieldKind)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrInsufficientCredits):
			c.JSON(http.StatusPaymentRequired, utils.NewErrorResponse(http.StatusPaymentRequired, err.Error()))
		case errors.Is(err, services.ErrInvalidRevealType):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to reveal field"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", RevealResponse{
		ProfileID:       id,
		FieldKind:       input.FieldKind,
		FieldValues:     result.FieldValues,
		CreditsUsed:     result.CreditsUsed,
		AlreadyRevealed: result.AlreadyRevealed,
		Balance:         result.Balance,
	}))
}

package profile

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amitsjoysm/LEADGENIE/internal/services"
	"github.com/Amitsjoysm/LEADGENIE/internal/utils"
)

// Create godoc
// @Summary Create a profile
// @Description Create a contact profile, creating or reusing the company identified by the domain
// @Tags admin-profiles
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   input     body   services.ProfileInput  true  "Profile Input"
// @Success 201 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Router /admin/profiles [post]
func Create(c *gin.Context) {
	var input services.ProfileInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	p, err := services.CreateProfile(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create profile"))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Profile created", p))
}

// Get godoc
// @Summary Get a profile with raw contact fields
// @Tags admin-profiles
// @Produce  json
// @Security ApiKeyAuth
// @Param   id   path  string  true  "Profile ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/profiles/{id} [get]
func Get(c *gin.Context) {
	p, err := services.FindProfileByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch profile"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", p))
}

// Update godoc
// @Summary Update a profile
// @Tags admin-profiles
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id      path  string                  true  "Profile ID"
// @Param   input   body  map[string]interface{}  true  "Fields to update"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/profiles/{id} [put]
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

	p, err := services.UpdateProfile(c.Param("id"), updates)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update profile"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Profile updated", p))
}

// Delete godoc
// @Summary Delete a profile
// @Tags admin-profiles
// @Produce  json
// @Security ApiKeyAuth
// @Param   id   path  string  true  "Profile ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/profiles/{id} [delete]
func Delete(c *gin.Context) {
	if err := services.DeleteProfile(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete profile"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Profile deleted", nil))
}

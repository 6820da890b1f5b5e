package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Amitsjoysm/LEADGENIE/internal/models"
	"github.com/Amitsjoysm/LEADGENIE/internal/services"
	"github.com/Amitsjoysm/LEADGENIE/internal/utils"
)

func operatorName(c *gin.Context) string {
	if v, ok := c.Get("user"); ok {
		if u, ok := v.(models.User); ok {
			return u.Email
		}
	}
	return "admin"
}

// List godoc
// @Summary List users
// @Tags admin-users
// @Produce  json
// @Security ApiKeyAuth
// @Param   page   query  int     false  "Page number (default 1)"
// @Param   limit  query  int     false  "Page size (default 20)"
// @Param   role   query  string  false  "Role filter"
// @Success 200 {object} utils.Response{data=UserListResponse}
// @Failure 403 {object} utils.Response
// @Router /admin/users [get]
func List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	users, total, err := services.FindUsers(page, limit, c.Query("role"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch users"))
		return
	}

	items := make([]UserResponse, 0, len(users))
	for i := range users {
		items = append(items, toUserResponse(&users[i]))
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", UserListResponse{
		Users: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}))
}

// Get godoc
// @Summary Get one user
// @Tags admin-users
// @Produce  json
// @Security ApiKeyAuth
// @Param   id   path  int  true  "User ID"
// @Success 200 {object} utils.Response{data=UserResponse}
// @Failure 404 {object} utils.Response
// @Router /admin/users/{id} [get]
func Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid user ID"))
		return
	}

	u, err := services.FindUserByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch user"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", toUserResponse(&u)))
}

// Update godoc
// @Summary Update a user
// @Description Update profile fields, role or active flag. Credits cannot be set here; use the credits adjustment endpoint.
// @Tags admin-users
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id        path  int              true  "User ID"
// @Param   input     body  UpdateUserInput  true  "Update Input"
// @Success 200 {object} utils.Response{data=UserResponse}
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /admin/users/{id} [put]
func Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid user ID"))
		return
	}

	var input UpdateUserInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	updates := make(map[string]interface{})
	if input.FullName != nil {
		updates["full_name"] = *input.FullName
	}
	if input.Password != nil {
		updates["password"] = *input.Password
	}
	if input.Role != nil {
		updates["role"] = *input.Role
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "No fields to update"))
		return
	}

	u, err := services.UpdateUser(uint(id), updates, operatorName(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrOptimisticLock):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update user"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("User updated successfully", toUserResponse(u)))
}

// Delete godoc
// @Summary Delete a user
// @Tags admin-users
// @Produce  json
// @Security ApiKeyAuth
// @Param   id   path  int  true  "User ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/users/{id} [delete]
func Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid user ID"))
		return
	}

	if err := services.DeleteUser(uint(id)); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete user"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("User deleted successfully", nil))
}

// AdjustCredits godoc
// @Summary Adjust a user's credits
// @Description Apply a signed credit delta through the ledger. Negative deltas are refused when they would drive the balance below zero.
// @Tags admin-users
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id        path  int                 true  "User ID"
// @Param   input     body  AdjustCreditsInput  true  "Adjustment Input"
// @Success 200 {object} utils.Response{data=AdjustCreditsResponse}
// @Failure 402 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/users/{id}/credits [post]
func AdjustCredits(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid user ID"))
		return
	}

	var input AdjustCreditsInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	balance, err := services.AdjustCredits(uint(id), input.Delta, input.Reason, operatorName(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrInsufficientCredits):
			c.JSON(http.StatusPaymentRequired, utils.NewErrorResponse(http.StatusPaymentRequired, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to adjust credits"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Credits adjusted", AdjustCreditsResponse{
		UserID:  uint(id),
		Delta:   input.Delta,
		Balance: balance,
	}))
}

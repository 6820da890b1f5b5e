package user

import (
	"time"

	"github.com/Amitsjoysm/LEADGENIE/internal/models"
)

type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	Credits   int       `json:"credits"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

type UpdateUserInput struct {
	FullName *string `json:"full_name"`
	Password *string `json:"password"`
	Role     *string `json:"role" binding:"omitempty,oneof=user super_admin"`
	IsActive *bool   `json:"is_active"`
}

type AdjustCreditsInput struct {
	Delta  int    `json:"delta" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

type AdjustCreditsResponse struct {
	UserID  uint `json:"user_id"`
	Delta   int  `json:"delta"`
	Balance int  `json:"balance"`
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		Credits:   u.Credits,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

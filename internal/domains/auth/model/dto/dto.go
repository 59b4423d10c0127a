package dto

import (
	"time"

	"guesthouse/infras/jwt"
	userModel "guesthouse/internal/domains/user/model"
	userDto "guesthouse/internal/domains/user/model/dto"
	gModel "guesthouse/shared/model"
	"guesthouse/shared/timezone"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name       string  `json:"name"                 validate:"required,max=100"`
	Email      string  `json:"email"                validate:"required,email"`
	Password   string  `json:"password"             validate:"required,min=8"`
	StudentID  *string `json:"student_id,omitempty" validate:"omitempty,max=50"`
	Department *string `json:"department,omitempty" validate:"omitempty,max=100"`
	Phone      *string `json:"phone,omitempty"      validate:"omitempty,max=20"`
}

// ToUserModel builds an active account. Self-registered accounts are their own creator.
func (r *RegisterRequest) ToUserModel(role, hashedPassword string) userModel.User {
	id := uuid.NewString()
	now := timezone.Now()

	return userModel.User{
		ID:         id,
		Name:       r.Name,
		Email:      r.Email,
		Password:   hashedPassword,
		StudentID:  r.StudentID,
		Department: r.Department,
		Phone:      r.Phone,
		Role:       role,
		Active:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  id,
			ModifiedBy: id,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login" json:"last_login" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
	TokenType    string               `json:"token_type"`
	ExpiresIn    int64                `json:"expires_in"`
	User         userDto.UserResponse `json:"user"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.TokenType = tokenPair.TokenType
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.TokenType = tokenPair.TokenType
	r.ExpiresIn = tokenPair.ExpiresIn
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,nefield=CurrentPassword"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"password" validate:"required,min=8"`
}

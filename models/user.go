package models

import (
	"context"
	"fmt"
	"html"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/datafiscal/finanzas_backend/config"
	"github.com/datafiscal/finanzas_backend/utils"
	"github.com/google/uuid"
)

type User struct {
	ID        int       `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name" binding:"required"`
	Email     string    `gorm:"size:100;not null;unique" json:"email" binding:"required"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	IsActive  *bool     `gorm:"not null" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewUser struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginInfo struct {
	Token     string         `json:"token"`
	Name      string         `json:"name"`
	Companies []*CompanyInfo `json:"companies"`
}

func (result *User) PrepareGive() {
	result.Password = ""
}

func RegisterUser(ctx context.Context, input *NewUser) (*User, error) {

	db := config.GetDB()
	var count int64

	if !utils.IsValidEmail(input.Email) {
		return nil, utils.NewValidationError("invalid email address")
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))

	err := db.WithContext(ctx).Model(&User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.NewValidationError("duplicate email")
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := User{
		Name:     html.EscapeString(strings.TrimSpace(input.Name)),
		Email:    email,
		Password: string(hashedPassword),
		IsActive: utils.NewTrue(),
	}

	err = db.WithContext(ctx).Create(&user).Error
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return &user, nil
}

func Login(ctx context.Context, email string, password string) (*LoginInfo, error) {

	db := config.GetDB()
	var result LoginInfo

	user := User{}
	err := db.WithContext(ctx).Model(&User{}).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).Take(&user).Error
	if err != nil {
		return nil, utils.NewValidationError("invalid email or password")
	}

	// check login credentials; any comparison failure (including a
	// malformed stored hash) rejects the login
	if err := utils.ComparePassword(user.Password, password); err != nil {
		return nil, utils.NewValidationError("invalid email or password")
	}

	if user.IsActive != nil && !*user.IsActive {
		return nil, utils.NewValidationError("user is disabled")
	}

	// generate token & response
	token := uuid.New()
	result.Token = token.String()
	result.Name = user.Name

	companies, err := GetUserCompanies(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	result.Companies = companies

	// store token in redis
	tokenLifespan, err := strconv.Atoi(os.Getenv("TOKEN_HOUR_LIFESPAN"))
	if err != nil {
		tokenLifespan = 24
	}

	// add new token to the user's tokens set so a password change can
	// destroy every session
	if err := config.AddRedisSet("Tokens:"+fmt.Sprint(user.ID), token.String()); err != nil {
		return nil, err
	}
	if err := config.SetRedisValue("Token:"+token.String(), fmt.Sprint(user.ID), time.Duration(tokenLifespan)*time.Hour); err != nil {
		return nil, err
	}

	return &result, nil
}

// destroy current session
func Logout(ctx context.Context) (bool, error) {
	token, ok := utils.GetTokenFromContext(ctx)
	if !ok || token == "" {
		return false, utils.NewValidationError("token is required")
	}
	err := config.RemoveRedisKey("Token:" + token)
	if err != nil {
		return false, nil
	}
	// remove current token from the user's tokens set
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == 0 {
		return false, utils.NewValidationError("user not found")
	}
	if err := config.RemoveRedisSetMember("Tokens:"+fmt.Sprint(userId), token); err != nil {
		return false, err
	}
	return true, nil
}

func GetUser(ctx context.Context, id int) (*User, error) {
	result, err := utils.FetchSingleModel[User](ctx, id)
	if err != nil {
		return nil, err
	}

	result.PrepareGive()
	return result, nil
}

func (user *User) DestroyAllSessions(ctx context.Context) error {
	allTokens, err := config.GetRedisSetMembers("Tokens:" + fmt.Sprint(user.ID))
	if err != nil {
		return err
	}
	for _, token := range allTokens {
		if err := config.RemoveRedisKey("Token:" + token); err != nil {
			return err
		}
	}
	if err := config.RemoveRedisKey("Tokens:" + fmt.Sprint(user.ID)); err != nil {
		return err
	}

	return nil
}

func ChangePassword(ctx context.Context, oldPassword string, newPassword string) (*User, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == 0 {
		return nil, utils.NewValidationError("user id is required")
	}

	var user User
	db := config.GetDB()
	if err := db.WithContext(ctx).First(&user, userId).Error; err != nil {
		return nil, err
	}
	// check oldPassword
	if err := utils.ComparePassword(user.Password, oldPassword); err != nil {
		return nil, utils.NewValidationError("old password is wrong")
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return nil, err
	}

	if err := db.WithContext(ctx).Model(&user).UpdateColumn("password", string(hashedPassword)).Error; err != nil {
		return nil, err
	}

	// destroying all session tokens
	if err := user.DestroyAllSessions(ctx); err != nil {
		return nil, err
	}

	user.PrepareGive()
	return &user, nil
}

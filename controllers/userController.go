package controller

import (
	"context"
	"fmt"
	"net/http"

	helper "flavor-fusion-server/helpers"
	"flavor-fusion-server/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type UserStore interface {
	CountUsers(ctx context.Context, name, email string) (int64, error)
	InsertUser(ctx context.Context, user *models.User) (*mongo.InsertOneResult, error)
}

type UserController struct {
	Users UserStore
}

// CreateUser stores a user unless one with the same name and email exists.
func (u *UserController) CreateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		var user models.User
		var body map[string]interface{}
		if err := c.ShouldBindBodyWith(&user, binding.JSON); err != nil {
			helper.RespondError(c, err)
			return
		}
		if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil {
			helper.RespondError(c, err)
			return
		}
		user.KeepExtra(body)
		if validationErr := validate.Struct(user); validationErr != nil {
			helper.RespondError(c, validationErr)
			return
		}

		count, err := u.Users.CountUsers(ctx, user.Name, user.Email)
		if err != nil {
			respond(c, err)
			return
		}
		if count > 0 {
			helper.RespondMessage(c, alreadyExists)
			return
		}

		if user.Password != nil {
			hashed, err := HashPassword(*user.Password)
			if err != nil {
				respond(c, err)
				return
			}
			user.Password = &hashed
		}
		user.Stamp()

		result, err := u.Users.InsertUser(ctx, &user)
		if err != nil {
			respond(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(bytes), nil
}

package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"flavor-fusion-server/database"
	helper "flavor-fusion-server/helpers"
	"flavor-fusion-server/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	requestTimeout = 100 * time.Second
	alreadyExists  = "Already exists"
)

var validate = validator.New()

// respond writes refusals as messages and logs everything else.
func respond(c *gin.Context, err error) {
	var rejection services.Rejection
	switch {
	case errors.As(err, &rejection):
		helper.RespondMessage(c, string(rejection))
	case errors.Is(err, database.ErrNotFound):
		helper.RespondMessage(c, string(services.NoDataFound))
	case errors.Is(err, database.ErrDuplicate):
		helper.RespondMessage(c, alreadyExists)
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		helper.RespondError(c, err)
	}
}

func objectID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"fincore/internal/adapter/http/middleware"
	"fincore/pkg/apperror"
	"fincore/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// bindError maps a gin binding failure to a validation error. A fractional
// or out-of-range amount is reported as an invalid amount.
func bindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && strings.HasSuffix(typeErr.Field, "amount") {
		return apperror.ErrInvalidAmount(fmt.Sprintf("%s must be an integer amount in minor units", typeErr.Field))
	}
	return apperror.Validation(err.Error())
}

func abort(c *gin.Context, err error) {
	response.Error(c, err)
	c.Abort()
}

// organization returns the caller's organization or writes SEC_003.
func organization(c *gin.Context) (string, bool) {
	org, ok := middleware.OrganizationID(c)
	if !ok {
		abort(c, apperror.ErrInvalidToken())
	}
	return org, ok
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		abort(c, apperror.Validation(fmt.Sprintf("%s must be a UUID", name)))
		return uuid.Nil, false
	}
	return id, true
}

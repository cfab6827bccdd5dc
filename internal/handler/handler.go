// Package handler holds the HTTP controllers. A handler binds its
// parameters, calls exactly one service operation and renders the result
// through the response envelope; failures are attached with c.Error and
// rendered by the error advice middleware.
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"secondhand-market/internal/dto"
)

type Handlers struct {
	Profile  *ProfileHandler
	Product  *ProductHandler
	Category *CategoryHandler
	Auth     *AuthHandler
	File     *FileHandler
	Health   *HealthHandler
	Docs     *DocsHandler
}

func bindError(c *gin.Context, err error) {
	_ = c.Error(err).SetType(gin.ErrorTypeBind)
}

// paramID parses a positive int64 path parameter, reporting a bind error
// when it is not one.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		bindError(c, errors.Errorf("%s must be a positive integer", name))
		return 0, false
	}
	return id, true
}

func accountIDParam(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if id == "" || len(id) > dto.MaxAccountIDLength {
		bindError(c, errors.Errorf("%s must be 1 to %d bytes", name, dto.MaxAccountIDLength))
		return "", false
	}
	return id, true
}

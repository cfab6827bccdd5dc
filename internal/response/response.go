// Package response holds the uniform API envelope.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"secondhand-market/internal/errs"
)

const (
	SuccessCode = 0
	SuccessMsg  = "success"
)

// CommonResult is the envelope without payload.
type CommonResult struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Msg     string `json:"msg"`
}

type SingleResult[T any] struct {
	CommonResult
	Data T `json:"data"`
}

type ListResult[T any] struct {
	CommonResult
	List []T `json:"list"`
}

func successResult() CommonResult {
	return CommonResult{Success: true, Code: SuccessCode, Msg: SuccessMsg}
}

func GetSuccessResult() CommonResult {
	return successResult()
}

func GetSingleResult[T any](data T) SingleResult[T] {
	return SingleResult[T]{CommonResult: successResult(), Data: data}
}

// GetListResult never returns a null list.
func GetListResult[T any](list []T) ListResult[T] {
	if list == nil {
		list = []T{}
	}
	return ListResult[T]{CommonResult: successResult(), List: list}
}

func GetFailResult(code int, msg string) CommonResult {
	return CommonResult{Success: false, Code: code, Msg: msg}
}

// Success writes a bare success envelope with 200.
func Success(c *gin.Context) {
	c.JSON(http.StatusOK, GetSuccessResult())
}

func Single[T any](c *gin.Context, data T) {
	c.JSON(http.StatusOK, GetSingleResult(data))
}

func SingleWithStatus[T any](c *gin.Context, status int, data T) {
	c.JSON(status, GetSingleResult(data))
}

func List[T any](c *gin.Context, list []T) {
	c.JSON(http.StatusOK, GetListResult(list))
}

// Fail writes the failure envelope of a typed error.
func Fail(c *gin.Context, err *errs.Error) {
	c.JSON(err.Status, GetFailResult(err.Code, err.Message))
}

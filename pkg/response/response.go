/*
 * @Description: 统一的API响应封装
 * @Author: 沐音
 * @Date: 2025-09-01 19:55:03
 * @LastEditTime: 2025-12-19 10:18:54
 * @LastEditors: 沐音
 */
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muselink-c/muselink-app/pkg/constant"
)

// Response 是统一的API返回结构体
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: message,
		Data:    data,
	})
}

// Fail 失败响应
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

// SuccessWithStatus 成功响应，但允许自定义 HTTP 状态码。
// 这对于返回 201 Created 等状态非常有用。
func SuccessWithStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// FailWithError 将业务层的标准错误翻译成对应的 HTTP 状态码。
// 服务层只返回 constant 中定义的哨兵错误（或其包装），翻译集中在这一处。
func FailWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, constant.ErrNotFound):
		Fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, constant.ErrForbidden), errors.Is(err, constant.ErrOwnWorkProposal):
		Fail(c, http.StatusForbidden, err.Error())
	case errors.Is(err, constant.ErrConflict),
		errors.Is(err, constant.ErrProposalReviewed),
		errors.Is(err, constant.ErrVersionMerged),
		errors.Is(err, constant.ErrCollaborationDisabled),
		errors.Is(err, constant.ErrAlreadyStarred):
		Fail(c, http.StatusConflict, err.Error())
	case errors.Is(err, constant.ErrValidation), errors.Is(err, constant.ErrBadRequest),
		errors.Is(err, constant.ErrInvalidPublicID):
		Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, constant.ErrUnauthorized), errors.Is(err, constant.ErrInvalidToken):
		Fail(c, http.StatusUnauthorized, err.Error())
	default:
		Fail(c, http.StatusInternalServerError, "服务器内部错误")
	}
}

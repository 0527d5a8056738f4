/*
 * @Description: 用户资料控制器
 * @Author: 沐音
 * @Date: 2025-09-20 15:02:33
 * @LastEditTime: 2025-11-20 18:42:31
 * @LastEditors: 沐音
 */
package user_handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muselink-c/muselink-app/internal/app/middleware"
	"github.com/muselink-c/muselink-app/pkg/domain/model"
	"github.com/muselink-c/muselink-app/pkg/response"
	"github.com/muselink-c/muselink-app/pkg/service/user"
)

// UserHandler 封装了用户资料相关的控制器方法
type UserHandler struct {
	userSvc user.Service
}

// NewUserHandler 是 UserHandler 的构造函数
func NewUserHandler(userSvc user.Service) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// GetPublicProfile 获取用户公开资料
func (h *UserHandler) GetPublicProfile(c *gin.Context) {
	profile, err := h.userSvc.GetPublicProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, profile, "获取成功")
}

// GetProfile 获取当前登录用户的资料
func (h *UserHandler) GetProfile(c *gin.Context) {
	userDBID, err := middleware.CurrentUserDBID(c)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	profile, err := h.userSvc.GetProfile(c.Request.Context(), userDBID)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, profile, "获取成功")
}

// UpdateProfile 更新当前登录用户的资料
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userDBID, err := middleware.CurrentUserDBID(c)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	var params model.UpdateProfileParams
	if err := c.ShouldBindJSON(&params); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	profile, err := h.userSvc.UpdateProfile(c.Request.Context(), userDBID, &params)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, profile, "更新成功")
}

/*
 * @Description: 作品评论控制器
 * @Author: 沐音
 * @Date: 2025-09-22 14:08:11
 * @LastEditTime: 2025-12-10 11:26:40
 * @LastEditors: 沐音
 */
package comment_handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/muselink-c/muselink-app/internal/app/middleware"
	"github.com/muselink-c/muselink-app/pkg/response"
	"github.com/muselink-c/muselink-app/pkg/service/comment"
)

// CommentHandler 封装了评论相关的控制器方法
type CommentHandler struct {
	commentSvc comment.Service
}

// NewCommentHandler 是 CommentHandler 的构造函数
func NewCommentHandler(commentSvc comment.Service) *CommentHandler {
	return &CommentHandler{commentSvc: commentSvc}
}

// CreateRequest 发表评论的请求体
type CreateRequest struct {
	Content  string `json:"content" binding:"required"`
	ParentID string `json:"parent_id"`
}

// Create 发表评论
func (h *CommentHandler) Create(c *gin.Context) {
	userDBID, err := middleware.CurrentUserDBID(c)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	created, err := h.commentSvc.Create(c.Request.Context(), userDBID, c.Param("id"), req.ParentID, req.Content)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.SuccessWithStatus(c, http.StatusCreated, created, "评论成功")
}

// ListByWork 获取作品的评论列表
func (h *CommentHandler) ListByWork(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	result, err := h.commentSvc.ListByWork(c.Request.Context(), c.Param("id"), page, pageSize)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, result, "获取成功")
}

// Delete 删除评论
func (h *CommentHandler) Delete(c *gin.Context) {
	userDBID, err := middleware.CurrentUserDBID(c)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	if err := h.commentSvc.Delete(c.Request.Context(), c.Param("id"), userDBID); err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, nil, "删除成功")
}

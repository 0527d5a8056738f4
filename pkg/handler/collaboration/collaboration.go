/*
 * @Description: 协作工作流控制器：版本提交、提案审核、历史查询
 * @Author: 沐音
 * @Date: 2025-09-22 09:15:40
 * @LastEditTime: 2026-01-08 17:33:25
 * @LastEditors: 沐音
 */
package collaboration_handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/muselink-c/muselink-app/internal/app/middleware"
	"github.com/muselink-c/muselink-app/pkg/domain/model"
	"github.com/muselink-c/muselink-app/pkg/response"
	"github.com/muselink-c/muselink-app/pkg/service/collaboration"
)

// CollaborationHandler 封装了协作工作流相关的控制器方法
type CollaborationHandler struct {
	collabSvc collaboration.Service
}

// NewCollaborationHandler 是 CollaborationHandler 的构造函数
func NewCollaborationHandler(collabSvc collaboration.Service) *CollaborationHandler {
	return &CollaborationHandler{collabSvc: collabSvc}
}

// parsePagination 解析分页查询参数
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	return page, pageSize
}

// ReviewRequest 审核提案的请求体
type ReviewRequest struct {
	Decision      string `json:"decision" binding:"required,oneof=approve reject"`
	ReviewComment string `json:"review_comment" binding:"max=500"`
}

// SubmitVersion 提交协作版本并创建提案
// @Summary      提交协作版本
// @Description  multipart 上传修改后的 MIDI 文件，创建版本记录与待审核提案
// @Tags         协作
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        id              path      string  true   "作品ID"
// @Param        file            formData  file    true   "MIDI 文件 (≤10MB)"
// @Param        title           formData  string  true   "提案标题"
// @Param        description     formData  string  false  "提案描述"
// @Param        commit_message  formData  string  true   "提交说明"
// @Param        changes_summary formData  string  false  "修改摘要"
// @Success      201  {object}  response.Response  "提案已创建"
// @Failure      403  {object}  response.Response  "不能对自己的作品发起提案"
// @Failure      409  {object}  response.Response  "作品未开启协作"
// @Router       /works/{id}/versions [post]
func (h *CollaborationHandler) SubmitVersion(c *gin.Context) {
	requesterDBID, err := middleware.CurrentUserDBID(c)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "缺少上传文件")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "无法读取上传文件")
		return
	}
	defer file.Close()

	result, err := h.collabSvc.SubmitVersion(c.Request.Context(), c.Param("id"), requesterDBID, &collaboration.SubmitVersionInput{
		Title:          c.PostForm("title"),
		Description:    c.PostForm("description"),
		CommitMessage:  c.PostForm("commit_message"),
		ChangesSummary: c.PostForm("changes_summary"),
		File:           file,
		FileName:       fileHeader.Filename,
		FileSize:       fileHeader.Size,
	})
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.SuccessWithStatus(c, http.StatusCreated, result, "协作提案已创建")
}

// Review 审核提案
// @Summary      审核协作提案
// @Description  作品所有者批准或拒绝提案；批准时在同一事务内完成版本合并
// @Tags         协作
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id          path  string         true  "作品ID"
// @Param        proposalId  path  string         true  "提案ID"
// @Param        body        body  ReviewRequest  true  "审核决定"
// @Success      200  {object}  response.Response  "审核完成"
// @Failure      409  {object}  response.Response  "提案已被审核"
// @Router       /works/{id}/proposals/{proposalId}/review [post]
func (h *CollaborationHandler) Review(c *gin.Context) {
	reviewerDBID, err := middleware.CurrentUserDBID(c)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	proposal, err := h.collabSvc.Review(c.Request.Context(), c.Param("id"), c.Param("proposalId"), reviewerDBID, &model.ReviewParams{
		Decision:      req.Decision,
		ReviewComment: req.ReviewComment,
	})
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.Success(c, proposal, "审核完成")
}

// ListVersions 获取作品的历史版本列表
func (h *CollaborationHandler) ListVersions(c *gin.Context) {
	viewerDBID := middleware.OptionalUserDBID(c)
	page, pageSize := parsePagination(c)

	result, err := h.collabSvc.ListVersions(c.Request.Context(), c.Param("id"), viewerDBID, page, pageSize)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, result, "获取成功")
}

// ListProposals 获取作品的提案列表
func (h *CollaborationHandler) ListProposals(c *gin.Context) {
	viewerDBID := middleware.OptionalUserDBID(c)
	page, pageSize := parsePagination(c)

	result, err := h.collabSvc.ListProposals(c.Request.Context(), c.Param("id"), viewerDBID, page, pageSize)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, result, "获取成功")
}

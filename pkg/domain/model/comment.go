/*
 * @Description: 作品评论领域模型
 * @Author: 沐音
 * @Date: 2025-09-08 16:40:21
 * @LastEditTime: 2025-11-12 20:05:37
 * @LastEditors: 沐音
 */
package model

import "time"

// 评论状态常量
const (
	CommentStatusNormal = 1
	CommentStatusHidden = 2
)

// Comment 作品评论领域模型
type Comment struct {
	ID             string    `json:"id"`
	DBID           uint      `json:"-"`
	WorkID         string    `json:"work_id"`
	UserID         string    `json:"user_id"`
	UserNickname   string    `json:"user_nickname"`
	UserAvatar     string    `json:"user_avatar"`
	ParentID       string    `json:"parent_id,omitempty"`
	Content        string    `json:"content"`
	Status         int       `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	Children       []Comment `json:"children,omitempty"`
	ChildrenCount  int       `json:"children_count"`
}

// CreateCommentParams 创建评论的参数
type CreateCommentParams struct {
	WorkDBID   uint
	UserDBID   uint
	ParentDBID *uint
	Content    string
}

// CommentListResponse 评论列表响应
type CommentListResponse struct {
	List     []Comment `json:"list"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
}

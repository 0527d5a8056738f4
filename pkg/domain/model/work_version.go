/*
 * @Description: 作品历史版本领域模型
 * @Author: 沐音
 * @Date: 2025-09-05 15:20:33
 * @LastEditTime: 2025-12-18 15:07:12
 * @LastEditors: 沐音
 */
package model

import (
	"fmt"
	"time"
)

// WorkVersion 作品历史版本领域模型。
// 版本记录只追加；is_merged 只能由合并协调逻辑一次性置为 true。
type WorkVersion struct {
	ID              string     `json:"id"`
	DBID            uint       `json:"-"`
	WorkID          string     `json:"work_id"`
	Version         int        `json:"version"`
	SubmitterID     string     `json:"submitter_id"`
	SubmitterName   string     `json:"submitter_name,omitempty"`
	CommitMessage   string     `json:"commit_message"`
	ChangesSummary  string     `json:"changes_summary"`
	FilePath        string     `json:"-"`
	FileSize        int64      `json:"file_size"`
	IsMerged        bool       `json:"is_merged"`
	MergedAt        *time.Time `json:"merged_at,omitempty"`
	MergedBy        string     `json:"merged_by,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	ProposalStatus  string     `json:"proposal_status,omitempty"`
	ProposalID      string     `json:"proposal_id,omitempty"`
}

// Label 返回版本的展示标签，形如 v1.3。
// 版本号由同一事务内的单调计数器生成，不依赖壁钟精度。
func (v *WorkVersion) Label() string {
	return fmt.Sprintf("v1.%d", v.Version)
}

// CreateWorkVersionParams 创建历史版本的参数
type CreateWorkVersionParams struct {
	WorkDBID       uint
	Version        int
	SubmitterDBID  uint
	CommitMessage  string
	ChangesSummary string
	FilePath       string
	FileSize       int64
}

// WorkVersionListResponse 历史版本列表响应（最新提交在前）
type WorkVersionListResponse struct {
	List     []WorkVersion `json:"list"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

/*
 * @Description: 协作提案领域模型
 * @Author: 沐音
 * @Date: 2025-09-05 15:33:08
 * @LastEditTime: 2025-12-18 15:07:12
 * @LastEditors: 沐音
 */
package model

import "time"

// 提案状态常量。pending 为初始态，approved/rejected 为终态。
const (
	ProposalStatusPending  = "pending"
	ProposalStatusApproved = "approved"
	ProposalStatusRejected = "rejected"
)

// 审核决定
const (
	ReviewDecisionApprove = "approve"
	ReviewDecisionReject  = "reject"
)

// WorkProposal 协作提案领域模型
type WorkProposal struct {
	ID            string     `json:"id"`
	DBID          uint       `json:"-"`
	WorkID        string     `json:"work_id"`
	VersionID     string     `json:"version_id"`
	VersionDBID   uint       `json:"-"`
	VersionNumber int        `json:"version_number,omitempty"`
	RequesterID   string     `json:"requester_id"`
	RequesterName string     `json:"requester_name,omitempty"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	ReviewedBy    string     `json:"reviewed_by,omitempty"`
	ReviewerName  string     `json:"reviewer_name,omitempty"`
	ReviewedAt    *time.Time `json:"reviewed_at,omitempty"`
	ReviewComment string     `json:"review_comment,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// CreateWorkProposalParams 创建提案的参数
type CreateWorkProposalParams struct {
	WorkDBID      uint
	VersionDBID   uint
	RequesterDBID uint
	Title         string
	Description   string
}

// ReviewParams 审核提案的参数
type ReviewParams struct {
	ReviewerDBID  uint
	Decision      string
	ReviewComment string
}

// SubmitVersionResult 提交协作版本的返回结果
type SubmitVersionResult struct {
	Proposal     *WorkProposal `json:"proposal"`
	VersionID    string        `json:"version_id"`
	VersionLabel string        `json:"version_label"`
}

// WorkProposalListResponse 提案列表响应（最新在前）
type WorkProposalListResponse struct {
	List     []WorkProposal `json:"list"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

/*
 * @Description: 音乐作品领域模型
 * @Author: 沐音
 * @Date: 2025-09-03 11:02:19
 * @LastEditTime: 2025-12-18 15:07:12
 * @LastEditors: 沐音
 */
package model

import "time"

// 作品状态常量
const (
	WorkStatusPublished = 1
	WorkStatusPrivate   = 2
)

// Work 音乐作品领域模型。
// ID 为公共 ID；DBID 为内部数据库 ID，仅在服务层内部流转，不对外输出。
type Work struct {
	ID                 string    `json:"id"`
	DBID               uint      `json:"-"`
	OwnerID            string    `json:"owner_id"`
	OwnerDBID          uint      `json:"-"`
	OwnerNickname      string    `json:"owner_nickname,omitempty"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Genre              string    `json:"genre"`
	FilePath           string    `json:"-"`
	FileSize           int64     `json:"file_size"`
	AllowCollaboration bool      `json:"allow_collaboration"`
	PlayCount          int64     `json:"play_count"`
	StarCount          int64     `json:"star_count"`
	Status             int       `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// CreateWorkParams 创建作品的参数
type CreateWorkParams struct {
	OwnerDBID          uint
	Title              string
	Description        string
	Genre              string
	FilePath           string
	FileSize           int64
	AllowCollaboration bool
	Status             int
}

// UpdateWorkParams 更新作品元信息的参数，nil 表示不修改
type UpdateWorkParams struct {
	Title              *string `json:"title"`
	Description        *string `json:"description"`
	Genre              *string `json:"genre"`
	AllowCollaboration *bool   `json:"allow_collaboration"`
	Status             *int    `json:"status"`
}

// WorkListItem 作品列表项
type WorkListItem struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Genre         string    `json:"genre"`
	OwnerID       string    `json:"owner_id"`
	OwnerNickname string    `json:"owner_nickname"`
	PlayCount     int64     `json:"play_count"`
	StarCount     int64     `json:"star_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// WorkListResponse 作品列表响应
type WorkListResponse struct {
	List     []WorkListItem `json:"list"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

/*
 * @Description: 业务标准错误定义
 * @Author: 沐音
 * @Date: 2025-09-01 20:40:32
 * @LastEditTime: 2025-12-19 10:18:54
 * @LastEditors: 沐音
 */
package constant

import "errors"

// 定义业务逻辑相关的标准错误
var (
	// ErrNotFound 表示资源未找到，可以由 Handler 转换为 404
	ErrNotFound = errors.New("资源未找到")

	// ErrForbidden 表示无权访问，可以由 Handler 转换为 403
	ErrForbidden = errors.New("操作禁止")

	// ErrConflict 表示资源冲突，可以由 Handler 转换为 409
	ErrConflict = errors.New("资源冲突")

	// ErrInternalServer 表示服务器内部错误，可以由 Handler 转换为 500
	ErrInternalServer = errors.New("内部服务器错误")

	// ErrBadRequest 表示请求参数错误，可以由 Handler 转换为 400
	ErrBadRequest = errors.New("错误的请求")

	// ErrUnauthorized 表示未授权，可以由 Handler 转换为 401
	ErrUnauthorized = errors.New("未经授权的访问")

	// ErrInvalidToken 表示无效的令牌，可以由 Handler 转换为 401
	ErrInvalidToken = errors.New("无效令牌")

	// ErrValidation 表示输入校验失败，可以由 Handler 转换为 400
	ErrValidation = errors.New("输入校验失败")

	// ErrStorageFailure 表示底层存储在事务中出错，整个事务已回滚
	ErrStorageFailure = errors.New("存储操作失败")

	// ErrInvalidPublicID 表示无效的公共ID，可以由 Handler 转换为 400
	ErrInvalidPublicID = errors.New("无效的公共ID")

	// ErrCollaborationDisabled 表示作品未开启协作，可以由 Handler 转换为 409
	ErrCollaborationDisabled = errors.New("该作品未开启协作")

	// ErrOwnWorkProposal 表示不能对自己的作品发起提案，可以由 Handler 转换为 403
	ErrOwnWorkProposal = errors.New("不能对自己的作品发起协作提案")

	// ErrProposalReviewed 表示提案已被审核，可以由 Handler 转换为 409
	ErrProposalReviewed = errors.New("提案已被审核")

	// ErrVersionMerged 表示版本已被合并，可以由 Handler 转换为 409
	ErrVersionMerged = errors.New("版本已被合并")

	// ErrAlreadyStarred 表示重复收藏，可以由 Handler 转换为 409
	ErrAlreadyStarred = errors.New("已收藏过该作品")
)

/*
 * @Description: 事务管理器接口
 * @Author: 沐音
 * @Date: 2025-09-05 17:00:26
 * @LastEditTime: 2025-12-18 15:07:12
 * @LastEditors: 沐音
 */
// pkg/domain/repository/transaction.go
package repository

import "context"

// Repositories 结构体聚合了所有在单个事务中可能用到的仓储接口。
type Repositories struct {
	User         UserRepository
	Work         WorkRepository
	WorkVersion  WorkVersionRepository
	WorkProposal WorkProposalRepository
	Comment      CommentRepository
	WorkStar     WorkStarRepository
}

// TransactionManager 定义了事务管理器的接口。
// 它的职责是执行一个业务逻辑单元，并确保其中的所有数据库操作都在单个事务中完成。
// 协作核心的两处原子边界都依赖它：
//  1. 提交版本时，版本记录与 pending 提案必须一起出现或一起消失；
//  2. 审批提案时，提案状态翻转、版本合并标记、作品权威文件改写三者
//     必须一起提交或一起回滚。
type TransactionManager interface {
	// Do 方法接收一个函数，该函数会在一个事务中被调用。
	// 它向该函数提供一个包含所有事务性仓储的 Repositories 实例。
	// 如果函数返回错误，事务将回滚；否则，事务将提交。
	Do(ctx context.Context, fn func(repos Repositories) error) error
}

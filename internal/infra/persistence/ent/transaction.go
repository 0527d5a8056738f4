/*
 * @Description: 基于 Ent 的事务管理器实现
 * @Author: 沐音
 * @Date: 2025-09-05 17:22:40
 * @LastEditTime: 2025-12-18 15:07:12
 * @LastEditors: 沐音
 */
package ent

import (
	"context"
	"fmt"

	"github.com/muselink-c/muselink-app/pkg/domain/repository"

	"github.com/muselink-c/muselink-app/ent"
)

// entTransactionManager 是完全基于 Ent 的事务管理器实现。
type entTransactionManager struct {
	entClient *ent.Client
}

// NewEntTransactionManager 是 entTransactionManager 的构造函数。
func NewEntTransactionManager(client *ent.Client) repository.TransactionManager {
	return &entTransactionManager{entClient: client}
}

// Do 实现了 TransactionManager 接口。
// 它会开启一个 Ent 事务，并将 Repositories 结构体中定义的所有仓库包裹在这个事务中。
func (tm *entTransactionManager) Do(ctx context.Context, fn func(repos repository.Repositories) error) error {
	// 开启一个 Ent 事务
	tx, err := tm.entClient.Tx(ctx)
	if err != nil {
		return fmt.Errorf("开启 Ent 事务失败: %w", err)
	}

	// 使用 defer 来确保 panic 时事务被回滚
	defer func() {
		if v := recover(); v != nil {
			tx.Rollback()
			panic(v)
		}
	}()

	repos := repository.Repositories{
		User:         NewEntUserRepository(tx.Client()),
		Work:         NewWorkRepo(tx.Client()),
		WorkVersion:  NewWorkVersionRepo(tx.Client()),
		WorkProposal: NewWorkProposalRepo(tx.Client()),
		Comment:      NewCommentRepo(tx.Client()),
		WorkStar:     NewWorkStarRepo(tx.Client()),
	}

	// 执行业务逻辑
	if err := fn(repos); err != nil {
		// 如果业务逻辑出错，回滚 Ent 事务
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("事务执行失败: %w, 回滚事务也失败: %v", err, rerr)
		}
		return err
	}

	// 如果业务逻辑成功，提交 Ent 事务
	return tx.Commit()
}

/*
 * @Description:
 * @Author: 沐音
 * @Date: 2025-09-21 23:40:12
 * @LastEditTime: 2025-11-30 16:08:55
 * @LastEditors: 沐音
 */
package bootstrap

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/muselink-c/muselink-app/ent"
)

// 应用运行所依赖的本地目录，启动时保证存在。
var requiredDirs = []string{
	"data",
	"data/uploads",
	"data/temp",
}

type Bootstrapper struct {
	entClient *ent.Client
}

func NewBootstrapper(entClient *ent.Client) *Bootstrapper {
	return &Bootstrapper{
		entClient: entClient,
	}
}

// Initialize 执行应用启动前的准备工作。
// 表结构迁移已在 Ent 客户端创建时完成，这里负责本地目录和一次启动自检。
func (b *Bootstrapper) Initialize() error {
	log.Println("--- 开始执行应用初始化引导程序 ---")

	if err := b.ensureDirectories(); err != nil {
		return err
	}
	b.reportDatabaseState()

	log.Println("--- 应用初始化引导程序执行完成 ---")
	return nil
}

// ensureDirectories 创建上传和临时目录，保证本地存储可写。
func (b *Bootstrapper) ensureDirectories() error {
	for _, dir := range requiredDirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("创建目录 '%s' 失败: %w", dir, err)
		}
	}
	log.Println("--- 本地数据目录检查完成 ---")
	return nil
}

// reportDatabaseState 打印一份简单的启动自检报告。
// 查询失败不阻塞启动，只记录警告。
func (b *Bootstrapper) reportDatabaseState() {
	ctx := context.Background()

	userCount, err := b.entClient.User.Query().Count(ctx)
	if err != nil {
		log.Printf("⚠️ 启动自检: 查询用户数量失败: %v", err)
		return
	}
	workCount, err := b.entClient.Work.Query().Count(ctx)
	if err != nil {
		log.Printf("⚠️ 启动自检: 查询作品数量失败: %v", err)
		return
	}

	if userCount == 0 {
		log.Println("--- 检测到全新安装，当前没有任何用户，等待第一位创作者注册 ---")
	} else {
		log.Printf("--- 启动自检: 当前共有 %d 位用户，%d 个作品 ---", userCount, workCount)
	}
}

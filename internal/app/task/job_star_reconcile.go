/*
 * @Description: 收藏计数对账定时任务
 * @Author: 沐音
 * @Date: 2025-09-24 14:22:41
 * @LastEditTime: 2025-10-12 18:44:09
 * @LastEditors: 沐音
 */
package task

import (
	"context"
	"log"

	star_service "github.com/muselink-c/muselink-app/pkg/service/star"
)

// StarReconcileJob 以收藏表为准重算作品的冗余收藏计数，
// 兜底即时刷新失败造成的漂移。
type StarReconcileJob struct {
	starService star_service.Service
}

// NewStarReconcileJob 是任务的构造函数
func NewStarReconcileJob(starService star_service.Service) *StarReconcileJob {
	return &StarReconcileJob{
		starService: starService,
	}
}

// Run 是 Job 接口要求实现的方法
func (j *StarReconcileJob) Run() {
	if err := j.starService.ReconcileStarCounts(context.Background()); err != nil {
		log.Printf("任务 '%s' 在执行业务逻辑时捕获到错误: %v", j.Name(), err)
	}
}

// Name 方法让日志包装器可以打印出更有意义的任务名
func (j *StarReconcileJob) Name() string {
	return "StarReconcileJob"
}

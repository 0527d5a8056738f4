/*
 * @Description: 播放计数刷库定时任务
 * @Author: 沐音
 * @Date: 2025-09-24 14:05:28
 * @LastEditTime: 2025-10-12 18:44:09
 * @LastEditors: 沐音
 */
package task

import (
	"context"
	"log"

	work_service "github.com/muselink-c/muselink-app/pkg/service/work"
)

// PlayCountFlushJob 负责将缓存中累积的播放计数批量刷回数据库。
type PlayCountFlushJob struct {
	workService work_service.Service
}

// NewPlayCountFlushJob 是任务的构造函数
func NewPlayCountFlushJob(workService work_service.Service) *PlayCountFlushJob {
	return &PlayCountFlushJob{
		workService: workService,
	}
}

// Run 是 Job 接口要求实现的方法
func (j *PlayCountFlushJob) Run() {
	if err := j.workService.FlushPlayCounts(context.Background()); err != nil {
		log.Printf("任务 '%s' 在执行业务逻辑时捕获到错误: %v", j.Name(), err)
	}
}

// Name 方法让日志包装器可以打印出更有意义的任务名
func (j *PlayCountFlushJob) Name() string {
	return "PlayCountFlushJob"
}

/*
 * @Description:
 * @Author: 沐音
 * @Date: 2025-09-24 11:02:17
 * @LastEditTime: 2025-11-28 14:02:46
 * @LastEditors: 沐音
 */
package task

import (
	"log/slog"
	"os"

	star_service "github.com/muselink-c/muselink-app/pkg/service/star"
	work_service "github.com/muselink-c/muselink-app/pkg/service/work"

	"github.com/robfig/cron/v3"
)

// Scheduler 封装了 cron 实例和其依赖。
// 它是整个定时任务模块的核心协调者，负责任务的注册、启动和停止。
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
	// 在这里注入所有任务可能需要的 service 依赖
	workSvc work_service.Service
	starSvc star_service.Service
}

// NewScheduler 是 Scheduler 的构造函数。
func NewScheduler(workSvc work_service.Service, starSvc star_service.Service) *Scheduler {
	// 创建一个 slog.Logger 实例，并为其添加一个固定的 "system":"cron" 属性。
	slogHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := slog.New(slogHandler).With("system", "cron")

	c := cron.New(
		cron.WithSeconds(),
		cron.WithChain(
			NewPanicRecoveryWrapper(logger),
			NewLoggingWrapper(logger),
			cron.DelayIfStillRunning(cron.DefaultLogger),
		),
	)

	return &Scheduler{
		cron:    c,
		logger:  logger,
		workSvc: workSvc,
		starSvc: starSvc,
	}
}

// RegisterJobs 在调度器中注册所有定义好的定时任务。
func (s *Scheduler) RegisterJobs() {
	s.logger.Info("Registering all periodic jobs...")

	// --- 任务1: 播放计数刷库 ---
	playFlushJob := NewPlayCountFlushJob(s.workSvc)
	_, err := s.cron.AddJob("0 */5 * * * *", playFlushJob)
	if err != nil {
		s.logger.Error("Failed to add 'PlayCountFlushJob'", slog.Any("error", err))
		os.Exit(1)
	}
	s.logger.Info("-> Successfully registered 'PlayCountFlushJob'", "schedule", "every 5 minutes")

	// --- 任务2: 收藏计数对账 ---
	starReconcileJob := NewStarReconcileJob(s.starSvc)
	_, err = s.cron.AddJob("0 30 3 * * *", starReconcileJob)
	if err != nil {
		s.logger.Error("Failed to add 'StarReconcileJob'", slog.Any("error", err))
		os.Exit(1)
	}
	s.logger.Info("-> Successfully registered 'StarReconcileJob'", "schedule", "every day at 3:30:00 AM")

	// --- 任务3: 清理被遗弃的上传临时文件 ---
	tempCleanupJob := NewTempCleanupJob()
	_, err = s.cron.AddJob("0 0 3 * * *", tempCleanupJob)
	if err != nil {
		s.logger.Error("Failed to add 'TempCleanupJob'", slog.Any("error", err))
		os.Exit(1)
	}
	s.logger.Info("-> Successfully registered 'TempCleanupJob'", "schedule", "every day at 3:00:00 AM")

	s.logger.Info("All periodic jobs registered.")
}

// Start 启动 cron 调度器。
func (s *Scheduler) Start() {
	s.logger.Info("Cron scheduler started.")
	s.cron.Start()
}

// Stop 优雅地停止 cron 调度器。
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Cron scheduler gracefully stopped.")
}

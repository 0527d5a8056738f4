/*
 * @Description: 上传临时目录清理定时任务
 * @Author: 沐音
 * @Date: 2025-09-24 14:40:09
 * @LastEditTime: 2025-11-28 14:02:46
 * @LastEditors: 沐音
 */
package task

import (
	"log"
	"os"
	"path/filepath"
	"time"
)

// 临时文件超过这个年龄即视为被遗弃。
const abandonedTempFileAge = 24 * time.Hour

// TempCleanupJob 负责清理上传处理中被遗弃的临时文件。
// 正常流程里临时文件在上传完成后立即删除，留下来的都是
// 进程崩溃或事务回滚后清理失败的残留。
type TempCleanupJob struct {
	tempDir string
}

// NewTempCleanupJob 是任务的构造函数
func NewTempCleanupJob() *TempCleanupJob {
	return &TempCleanupJob{
		tempDir: "data/temp",
	}
}

// Run 是 Job 接口要求实现的方法
func (j *TempCleanupJob) Run() {
	entries, err := os.ReadDir(j.tempDir)
	if err != nil {
		if os.IsNotExist(err) {
			return
		}
		log.Printf("任务 '%s' 读取临时目录失败: %v", j.Name(), err)
		return
	}

	var removed int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if time.Since(info.ModTime()) < abandonedTempFileAge {
			continue
		}
		path := filepath.Join(j.tempDir, entry.Name())
		if err := os.Remove(path); err != nil {
			log.Printf("任务 '%s' 删除临时文件 '%s' 失败: %v", j.Name(), path, err)
			continue
		}
		removed++
	}

	if removed > 0 {
		log.Printf("任务 '%s' 执行完毕，共清理了 %d 个被遗弃的临时文件。", j.Name(), removed)
	}
}

// Name 方法让日志包装器可以打印出更有意义的任务名
func (j *TempCleanupJob) Name() string {
	return "TempCleanupJob"
}

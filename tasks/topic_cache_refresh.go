// File: tasks/topic_cache_refresh.go
package tasks

import (
	"context"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/content_service/constant"
	"github.com/Xushengqwer/content_service/service"
)

// TopicCacheRefreshTask 负责定时刷新 Redis 中的激活主题列表缓存。
// 正常情况下写路径失效缓存后由读路径回源重建，定时刷新作为兜底，
// 避免失效消息丢失或缓存长期冷启动。
type TopicCacheRefreshTask struct {
	topicService service.TopicService
	cron         *cron.Cron
	logger       *core.ZapLogger
}

// NewTopicCacheRefreshTask 初始化并启动激活主题缓存的定时刷新任务。
// - topicService: 主题服务实例，任务通过它回源数据库并重建缓存。
// - logger: ZapLogger 实例。
func NewTopicCacheRefreshTask(topicService service.TopicService, logger *core.ZapLogger) *TopicCacheRefreshTask {
	cronV3 := cron.New() // 默认分钟级精度

	task := &TopicCacheRefreshTask{
		topicService: topicService,
		cron:         cronV3,
		logger:       logger,
	}
	task.startCronJob()
	return task
}

// startCronJob 配置并启动 cron 作业。
func (t *TopicCacheRefreshTask) startCronJob() {
	schedule := constant.TopicCacheRefreshCronSpec
	t.logger.Info("准备启动激活主题缓存刷新定时任务", zap.String("schedule", schedule))

	entryID, err := t.cron.AddFunc(schedule, func() {
		t.logger.Info("激活主题缓存刷新任务开始执行...")
		startTime := time.Now()
		// 为单次任务执行设置超时，防止任务卡死。
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()

		if err := t.topicService.RefreshActiveTopicCache(ctx); err != nil {
			t.logger.Error("刷新激活主题缓存失败", zap.Error(err))
		}

		duration := time.Since(startTime)
		t.logger.Info("激活主题缓存刷新任务执行完毕", zap.Duration("duration", duration))
	})

	if err != nil {
		t.logger.Fatal("添加激活主题缓存刷新 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start()
	t.logger.Info("激活主题缓存刷新定时任务已启动", zap.Uint("cronEntryID", uint(entryID)))
}

// Stop 优雅地停止 cron 调度器。
func (t *TopicCacheRefreshTask) Stop() context.Context {
	t.logger.Info("正在停止激活主题缓存刷新定时任务...")
	stopCtx := t.cron.Stop()
	t.logger.Info("激活主题缓存刷新定时任务已停止调度。等待正在执行的任务完成...")
	return stopCtx
}

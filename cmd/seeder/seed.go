package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/service"
)

// Seeders 汇总填充需要的服务层实例。
type Seeders struct {
	Discussions service.DiscussionService
	Faqs        service.FaqService
	Locations   service.LocationService
	Resources   service.ResourceService
	Topics      service.TopicService
}

var resourceCategories = []string{"guide", "tool", "dataset", "article"}
var discussionCategories = []string{"general", "support", "announcements"}

// Seed 为每类内容记录生成 numRecords 条测试数据（通过服务层写入，
// 保证业务校验和缓存失效逻辑与线上路径一致）。
func Seed(ctx context.Context, svcs *Seeders, logger *core.ZapLogger, numRecords int) {
	logger.Info("开始填充测试数据 (通过服务层)...", zap.Int("每类数量", numRecords))

	var wg sync.WaitGroup
	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	run := func(fn func()) {
		wg.Add(1)
		semaphore <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-semaphore }()
			fn()
		}()
	}

	for i := 0; i < numRecords; i++ {
		itemIndex := i

		// 讨论 + 一条回复
		run(func() {
			createReq := &dto.CreateDiscussionRequest{
				Title:     gofakeit.Sentence(gofakeit.Number(5, 12)),
				Category:  discussionCategories[gofakeit.Number(0, len(discussionCategories)-1)],
				CreatedBy: uuid.New().String(),
			}
			discussion, err := svcs.Discussions.CreateDiscussion(ctx, createReq)
			if err != nil {
				logger.Error(fmt.Sprintf("创建讨论 %d/%d 失败", itemIndex+1, numRecords), zap.Error(err))
				return
			}
			entryReq := &dto.CreateDiscussionEntryRequest{
				Text:      gofakeit.Paragraph(1, 3, 15, " "),
				CreatedBy: uuid.New().String(),
			}
			if _, err := svcs.Discussions.CreateEntry(ctx, discussion.ID, entryReq); err != nil {
				logger.Error("为讨论创建回复失败", zap.Error(err), zap.Uint64("discussion_id", discussion.ID))
			}
		})

		// 常见问题
		run(func() {
			createReq := &dto.CreateFaqRequest{
				Question: gofakeit.Question(),
				Answer:   gofakeit.Paragraph(1, 2, 20, " "),
				Order:    itemIndex,
			}
			if _, err := svcs.Faqs.CreateFaq(ctx, createReq); err != nil {
				logger.Error(fmt.Sprintf("创建FAQ %d/%d 失败", itemIndex+1, numRecords), zap.Error(err))
			}
		})

		// 地点
		run(func() {
			createReq := &dto.CreateLocationRequest{
				Lat:         fmt.Sprintf("%.6f", gofakeit.Latitude()),
				Lon:         fmt.Sprintf("%.6f", gofakeit.Longitude()),
				DisplayName: gofakeit.City() + ", " + gofakeit.Country(),
			}
			if _, err := svcs.Locations.CreateLocation(ctx, createReq); err != nil {
				logger.Error(fmt.Sprintf("创建地点 %d/%d 失败", itemIndex+1, numRecords), zap.Error(err))
			}
		})

		// 资源
		run(func() {
			createReq := &dto.CreateResourceRequest{
				Name:        gofakeit.ProductName(),
				Description: gofakeit.Sentence(10),
				URL:         gofakeit.URL(),
				Category:    resourceCategories[gofakeit.Number(0, len(resourceCategories)-1)],
				CreatedBy:   uuid.New().String(),
			}
			if _, err := svcs.Resources.CreateResource(ctx, createReq); err != nil {
				logger.Error(fmt.Sprintf("创建资源 %d/%d 失败", itemIndex+1, numRecords), zap.Error(err))
			}
		})

		// 主题：一半激活（无弃用时间），一半未激活（弃用时间在未来）
		run(func() {
			active := itemIndex%2 == 0
			createReq := &dto.CreateTopicRequest{
				Name:        fmt.Sprintf("%s-%s", gofakeit.BuzzWord(), uuid.New().String()[:8]),
				Description: gofakeit.Sentence(8),
				Active:      active,
			}
			if !active {
				deprecation := time.Now().AddDate(0, gofakeit.Number(1, 12), 0)
				createReq.DeprecationDate = &deprecation
			}
			if _, err := svcs.Topics.CreateTopic(ctx, createReq); err != nil {
				logger.Error(fmt.Sprintf("创建主题 %d/%d 失败", itemIndex+1, numRecords), zap.Error(err))
			}
		})
	}

	wg.Wait()
	logger.Info("测试数据填充完毕 (通过服务层)。")
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	commonConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/models/vo"
	"github.com/Xushengqwer/content_service/myErrors"
)

func newTestLogger(t *testing.T) *core.ZapLogger {
	t.Helper()
	logger, err := core.NewZapLogger(commonConfig.ZapConfig{})
	require.NoError(t, err)
	return logger
}

// fakeTopicRepo 是 mysql.TopicRepository 的内存实现，按 ID 存储主题。
type fakeTopicRepo struct {
	topics      map[uint64]*entities.Topic
	nextID      uint64
	createCalls int
	updateCalls int
}

func newFakeTopicRepo() *fakeTopicRepo {
	return &fakeTopicRepo{topics: make(map[uint64]*entities.Topic), nextID: 1}
}

func (f *fakeTopicRepo) CreateTopic(_ context.Context, _ *gorm.DB, topic *entities.Topic) error {
	f.createCalls++
	topic.ID = f.nextID
	topic.CreatedAt = time.Now()
	topic.UpdatedAt = topic.CreatedAt
	f.nextID++
	copied := *topic
	f.topics[topic.ID] = &copied
	return nil
}

func (f *fakeTopicRepo) GetTopicByID(_ context.Context, id uint64) (*entities.Topic, error) {
	topic, ok := f.topics[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	copied := *topic
	return &copied, nil
}

func (f *fakeTopicRepo) ListTopics(_ context.Context, active *bool) ([]*entities.Topic, error) {
	var result []*entities.Topic
	for _, topic := range f.topics {
		if active != nil && topic.Active != *active {
			continue
		}
		copied := *topic
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeTopicRepo) UpdateTopic(_ context.Context, id uint64, name, description *string, active *bool, deprecationDate *time.Time, clearDeprecationDate bool) error {
	f.updateCalls++
	topic, ok := f.topics[id]
	if !ok {
		return errors.New("record not found")
	}
	if name != nil {
		topic.Name = *name
	}
	if description != nil {
		topic.Description = *description
	}
	if active != nil {
		topic.Active = *active
	}
	if clearDeprecationDate {
		topic.DeprecationDate = nil
	} else if deprecationDate != nil {
		topic.DeprecationDate = deprecationDate
	}
	topic.UpdatedAt = time.Now()
	return nil
}

func (f *fakeTopicRepo) DeleteTopic(_ context.Context, _ *gorm.DB, id uint64) error {
	if _, ok := f.topics[id]; !ok {
		return errors.New("record not found")
	}
	delete(f.topics, id)
	return nil
}

// fakeTopicCache 是 redisrepo.TopicCache 的内存实现，记录各操作的调用次数。
type fakeTopicCache struct {
	cached          []*vo.TopicResponse
	getErr          error
	getCalls        int
	setCalls        int
	invalidateCalls int
}

func (f *fakeTopicCache) GetActiveTopics(_ context.Context) ([]*vo.TopicResponse, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.cached, nil
}

func (f *fakeTopicCache) SetActiveTopics(_ context.Context, topics []*vo.TopicResponse) error {
	f.setCalls++
	f.cached = topics
	return nil
}

func (f *fakeTopicCache) InvalidateActiveTopics(_ context.Context) error {
	f.invalidateCalls++
	f.cached = nil
	f.getErr = myErrors.ErrCacheMiss
	return nil
}

func newTopicServiceForTest(t *testing.T) (TopicService, *fakeTopicRepo, *fakeTopicCache) {
	t.Helper()
	repo := newFakeTopicRepo()
	cache := &fakeTopicCache{getErr: myErrors.ErrCacheMiss}
	svc := NewTopicService(nil, repo, cache, nil, newTestLogger(t))
	return svc, repo, cache
}

func TestCreateTopic_ActiveWithDeprecationDateRejected(t *testing.T) {
	svc, repo, _ := newTopicServiceForTest(t)

	deprecation := time.Now().AddDate(0, 1, 0)
	_, err := svc.CreateTopic(context.Background(), &dto.CreateTopicRequest{
		Name:            "environment",
		Active:          true,
		DeprecationDate: &deprecation,
	})

	require.Error(t, err)
	vErr, ok := myErrors.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, myErrors.CodeActiveTopicWithDeprecation, vErr.Code)
	assert.Equal(t, 0, repo.createCalls, "校验失败时不应触发任何持久化写入")
}

func TestCreateTopic_InactiveWithoutDeprecationDateRejected(t *testing.T) {
	svc, repo, _ := newTopicServiceForTest(t)

	_, err := svc.CreateTopic(context.Background(), &dto.CreateTopicRequest{
		Name:   "legacy",
		Active: false,
	})

	require.Error(t, err)
	vErr, ok := myErrors.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, myErrors.CodeInactiveTopicNoDeprecation, vErr.Code)
	assert.Equal(t, 0, repo.createCalls)
}

func TestCreateTopic_ActiveCheckPrecedesDateCheck(t *testing.T) {
	svc, _, _ := newTopicServiceForTest(t)

	// 弃用时间同时违反"激活不得有弃用时间"与"弃用时间不得早于创建时间"，
	// 返回的必须是激活规则的错误码。
	past := time.Now().AddDate(-1, 0, 0)
	_, err := svc.CreateTopic(context.Background(), &dto.CreateTopicRequest{
		Name:            "environment",
		Active:          true,
		DeprecationDate: &past,
	})

	require.Error(t, err)
	vErr, ok := myErrors.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, myErrors.CodeActiveTopicWithDeprecation, vErr.Code)
}

func TestCreateTopic_DeprecationDateBeforeCreationRejected(t *testing.T) {
	svc, repo, _ := newTopicServiceForTest(t)

	past := time.Now().AddDate(-1, 0, 0)
	_, err := svc.CreateTopic(context.Background(), &dto.CreateTopicRequest{
		Name:            "legacy",
		Active:          false,
		DeprecationDate: &past,
	})

	require.Error(t, err)
	vErr, ok := myErrors.AsValidationError(err)
	require.True(t, ok)
	assert.Empty(t, vErr.Code, "日期一致性错误不携带错误码")
	assert.Contains(t, vErr.Message, "cannot be before the creation date")
	assert.Equal(t, 0, repo.createCalls)
}

func TestCreateTopic_ValidActiveTopicPersistsAndInvalidatesCache(t *testing.T) {
	svc, repo, cache := newTopicServiceForTest(t)

	resp, err := svc.CreateTopic(context.Background(), &dto.CreateTopicRequest{
		Name:        "environment",
		Description: "环境相关内容",
		Active:      true,
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "environment", resp.Name)
	assert.True(t, resp.Active)
	assert.Nil(t, resp.DeprecationDate)
	assert.Equal(t, 1, repo.createCalls)
	assert.Equal(t, 1, cache.invalidateCalls)
}

func TestCreateTopic_ValidInactiveTopicWithFutureDeprecation(t *testing.T) {
	svc, repo, _ := newTopicServiceForTest(t)

	deprecation := time.Now().AddDate(0, 6, 0)
	resp, err := svc.CreateTopic(context.Background(), &dto.CreateTopicRequest{
		Name:            "legacy",
		Active:          false,
		DeprecationDate: &deprecation,
	})

	require.NoError(t, err)
	require.NotNil(t, resp.DeprecationDate)
	assert.Equal(t, deprecation.Unix(), resp.DeprecationDate.Unix())
	assert.Equal(t, 1, repo.createCalls)
}

func TestUpdateTopic_ValidatesMergedAttributeSet(t *testing.T) {
	svc, repo, _ := newTopicServiceForTest(t)

	// 先创建一个合法的未激活主题（带弃用时间）
	deprecation := time.Now().AddDate(0, 6, 0)
	created, err := svc.CreateTopic(context.Background(), &dto.CreateTopicRequest{
		Name:            "legacy",
		Active:          false,
		DeprecationDate: &deprecation,
	})
	require.NoError(t, err)

	// 仅把 active 翻转为 true，弃用时间字段不在请求中。
	// 合并后的属性集是 "激活 + 已有弃用时间"，必须被拒绝。
	active := true
	_, err = svc.UpdateTopic(context.Background(), created.ID, &dto.UpdateTopicRequest{
		Active: &active,
	})

	require.Error(t, err)
	vErr, ok := myErrors.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, myErrors.CodeActiveTopicWithDeprecation, vErr.Code)
	assert.Equal(t, 0, repo.updateCalls, "校验失败时不应执行更新")
}

func TestUpdateTopic_ActivateWithClearedDeprecationDateSucceeds(t *testing.T) {
	svc, repo, cache := newTopicServiceForTest(t)

	deprecation := time.Now().AddDate(0, 6, 0)
	created, err := svc.CreateTopic(context.Background(), &dto.CreateTopicRequest{
		Name:            "legacy",
		Active:          false,
		DeprecationDate: &deprecation,
	})
	require.NoError(t, err)
	invalidationsBefore := cache.invalidateCalls

	active := true
	updated, err := svc.UpdateTopic(context.Background(), created.ID, &dto.UpdateTopicRequest{
		Active:               &active,
		ClearDeprecationDate: true,
	})

	require.NoError(t, err)
	assert.True(t, updated.Active)
	assert.Nil(t, updated.DeprecationDate)
	assert.Equal(t, 1, repo.updateCalls)
	assert.Equal(t, invalidationsBefore+1, cache.invalidateCalls)
}

func TestUpdateTopic_DeactivateRequiresDeprecationDate(t *testing.T) {
	svc, _, _ := newTopicServiceForTest(t)

	created, err := svc.CreateTopic(context.Background(), &dto.CreateTopicRequest{
		Name:   "environment",
		Active: true,
	})
	require.NoError(t, err)

	// 翻转为未激活但不提供弃用时间：合并后的属性集非法
	active := false
	_, err = svc.UpdateTopic(context.Background(), created.ID, &dto.UpdateTopicRequest{
		Active: &active,
	})

	require.Error(t, err)
	vErr, ok := myErrors.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, myErrors.CodeInactiveTopicNoDeprecation, vErr.Code)
}

func TestListTopics_ActiveListServedFromCache(t *testing.T) {
	svc, repo, cache := newTopicServiceForTest(t)
	cache.getErr = nil
	cache.cached = []*vo.TopicResponse{
		{ID: 42, Name: "environment", Active: true},
	}

	active := true
	resp, err := svc.ListTopics(context.Background(), &active)

	require.NoError(t, err)
	require.Len(t, resp.Topics, 1)
	assert.Equal(t, uint64(42), resp.Topics[0].ID)
	assert.Equal(t, 1, cache.getCalls)
	assert.Equal(t, 0, repo.createCalls)
}

func TestListTopics_CacheMissFallsBackAndRepopulates(t *testing.T) {
	svc, _, cache := newTopicServiceForTest(t)

	_, err := svc.CreateTopic(context.Background(), &dto.CreateTopicRequest{
		Name:   "environment",
		Active: true,
	})
	require.NoError(t, err)

	active := true
	resp, err := svc.ListTopics(context.Background(), &active)

	require.NoError(t, err)
	require.Len(t, resp.Topics, 1)
	assert.Equal(t, 1, cache.setCalls, "未命中后应回填缓存")
}

func TestListTopics_CacheFailureDegradesToDatabase(t *testing.T) {
	svc, _, cache := newTopicServiceForTest(t)
	cache.getErr = errors.New("connection refused")

	_, err := svc.CreateTopic(context.Background(), &dto.CreateTopicRequest{
		Name:   "environment",
		Active: true,
	})
	require.NoError(t, err)
	cache.getErr = errors.New("connection refused")

	active := true
	resp, err := svc.ListTopics(context.Background(), &active)

	require.NoError(t, err)
	assert.Len(t, resp.Topics, 1)
}

func TestListTopics_InactiveFilterBypassesCache(t *testing.T) {
	svc, _, cache := newTopicServiceForTest(t)

	deprecation := time.Now().AddDate(0, 6, 0)
	_, err := svc.CreateTopic(context.Background(), &dto.CreateTopicRequest{
		Name:            "legacy",
		Active:          false,
		DeprecationDate: &deprecation,
	})
	require.NoError(t, err)
	getCallsBefore := cache.getCalls

	active := false
	resp, err := svc.ListTopics(context.Background(), &active)

	require.NoError(t, err)
	assert.Len(t, resp.Topics, 1)
	assert.Equal(t, getCallsBefore, cache.getCalls, "非激活列表不应触碰缓存")
}

func TestDeleteTopic_InvalidatesCache(t *testing.T) {
	svc, repo, cache := newTopicServiceForTest(t)

	created, err := svc.CreateTopic(context.Background(), &dto.CreateTopicRequest{
		Name:   "environment",
		Active: true,
	})
	require.NoError(t, err)
	invalidationsBefore := cache.invalidateCalls

	require.NoError(t, svc.DeleteTopic(context.Background(), created.ID))
	assert.Empty(t, repo.topics)
	assert.Equal(t, invalidationsBefore+1, cache.invalidateCalls)
}

func TestRefreshActiveTopicCache_RebuildsFromDatabase(t *testing.T) {
	svc, _, cache := newTopicServiceForTest(t)

	_, err := svc.CreateTopic(context.Background(), &dto.CreateTopicRequest{
		Name:   "environment",
		Active: true,
	})
	require.NoError(t, err)
	deprecation := time.Now().AddDate(0, 6, 0)
	_, err = svc.CreateTopic(context.Background(), &dto.CreateTopicRequest{
		Name:            "legacy",
		Active:          false,
		DeprecationDate: &deprecation,
	})
	require.NoError(t, err)

	require.NoError(t, svc.RefreshActiveTopicCache(context.Background()))
	require.Len(t, cache.cached, 1, "缓存只应包含激活主题")
	assert.Equal(t, "environment", cache.cached[0].Name)
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/models/entities"
)

// fakeDiscussionRepo 是 mysql.DiscussionRepository 的内存实现。
type fakeDiscussionRepo struct {
	discussions map[uint64]*entities.Discussion
	nextID      uint64
}

func newFakeDiscussionRepo() *fakeDiscussionRepo {
	return &fakeDiscussionRepo{discussions: make(map[uint64]*entities.Discussion), nextID: 1}
}

func (f *fakeDiscussionRepo) CreateDiscussion(_ context.Context, _ *gorm.DB, discussion *entities.Discussion) error {
	discussion.ID = f.nextID
	discussion.CreatedAt = time.Now()
	discussion.UpdatedAt = discussion.CreatedAt
	f.nextID++
	copied := *discussion
	f.discussions[discussion.ID] = &copied
	return nil
}

func (f *fakeDiscussionRepo) GetDiscussionByID(_ context.Context, id uint64) (*entities.Discussion, error) {
	discussion, ok := f.discussions[id]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	copied := *discussion
	return &copied, nil
}

func (f *fakeDiscussionRepo) ListDiscussionsByCursor(_ context.Context, category *string, cursor *uint64, pageSize int) ([]*entities.Discussion, *uint64, error) {
	// 按 ID 降序收集（ID 越大越新）
	var result []*entities.Discussion
	for id := f.nextID; id >= 1; id-- {
		discussion, ok := f.discussions[id]
		if !ok {
			continue
		}
		if category != nil && *category != "" && discussion.Category != *category {
			continue
		}
		if cursor != nil && discussion.ID >= *cursor {
			continue
		}
		copied := *discussion
		result = append(result, &copied)
	}
	var nextCursor *uint64
	if len(result) > pageSize {
		nextCursor = &result[pageSize-1].ID
		result = result[:pageSize]
	}
	return result, nextCursor, nil
}

func (f *fakeDiscussionRepo) UpdateDiscussion(_ context.Context, id uint64, title, category *string) error {
	discussion, ok := f.discussions[id]
	if !ok {
		return commonerrors.ErrRepoNotFound
	}
	if title != nil {
		discussion.Title = *title
	}
	if category != nil {
		discussion.Category = *category
	}
	discussion.UpdatedAt = time.Now()
	return nil
}

func (f *fakeDiscussionRepo) DeleteDiscussion(_ context.Context, _ *gorm.DB, id uint64) error {
	if _, ok := f.discussions[id]; !ok {
		return commonerrors.ErrRepoNotFound
	}
	delete(f.discussions, id)
	return nil
}

// fakeEntryRepo 是 mysql.DiscussionEntryRepository 的内存实现。
type fakeEntryRepo struct {
	entries map[uint64]*entities.DiscussionEntry
	nextID  uint64
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{entries: make(map[uint64]*entities.DiscussionEntry), nextID: 1}
}

func (f *fakeEntryRepo) CreateEntry(_ context.Context, _ *gorm.DB, entry *entities.DiscussionEntry) error {
	entry.ID = f.nextID
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = entry.CreatedAt
	f.nextID++
	copied := *entry
	f.entries[entry.ID] = &copied
	return nil
}

func (f *fakeEntryRepo) GetEntryByID(_ context.Context, id uint64) (*entities.DiscussionEntry, error) {
	entry, ok := f.entries[id]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	copied := *entry
	return &copied, nil
}

func (f *fakeEntryRepo) ListEntriesByDiscussionID(_ context.Context, discussionID uint64) ([]*entities.DiscussionEntry, error) {
	// 按 ID 升序（先发的在前）
	var result []*entities.DiscussionEntry
	for id := uint64(1); id < f.nextID; id++ {
		entry, ok := f.entries[id]
		if !ok || entry.DiscussionID != discussionID {
			continue
		}
		copied := *entry
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeEntryRepo) UpdateEntryText(_ context.Context, id uint64, text string) error {
	entry, ok := f.entries[id]
	if !ok {
		return commonerrors.ErrRepoNotFound
	}
	entry.Text = text
	entry.UpdatedAt = time.Now()
	return nil
}

func (f *fakeEntryRepo) DeleteEntry(_ context.Context, _ *gorm.DB, id uint64) error {
	if _, ok := f.entries[id]; !ok {
		return commonerrors.ErrRepoNotFound
	}
	delete(f.entries, id)
	return nil
}

func (f *fakeEntryRepo) DeleteEntriesByDiscussionID(_ context.Context, _ *gorm.DB, discussionID uint64) error {
	for id, entry := range f.entries {
		if entry.DiscussionID == discussionID {
			delete(f.entries, id)
		}
	}
	return nil
}

func newDiscussionServiceForTest(t *testing.T) (DiscussionService, *fakeDiscussionRepo, *fakeEntryRepo) {
	t.Helper()
	discussionRepo := newFakeDiscussionRepo()
	entryRepo := newFakeEntryRepo()
	svc := NewDiscussionService(nil, discussionRepo, entryRepo, nil, newTestLogger(t))
	return svc, discussionRepo, entryRepo
}

func TestCreateDiscussion_PassesThroughAllFields(t *testing.T) {
	svc, _, _ := newDiscussionServiceForTest(t)

	resp, err := svc.CreateDiscussion(context.Background(), &dto.CreateDiscussionRequest{
		Title:     "如何参与社区活动",
		Category:  "general",
		CreatedBy: "4f9c6f2a-0000-0000-0000-000000000001",
	})

	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "如何参与社区活动", resp.Title)
	assert.Equal(t, "general", resp.Category)
	assert.Equal(t, "4f9c6f2a-0000-0000-0000-000000000001", resp.CreatedBy)
}

func TestCreateEntry_RequiresExistingDiscussion(t *testing.T) {
	svc, _, entryRepo := newDiscussionServiceForTest(t)

	_, err := svc.CreateEntry(context.Background(), 999, &dto.CreateDiscussionEntryRequest{
		Text:      "找不到挂载目标",
		CreatedBy: "4f9c6f2a-0000-0000-0000-000000000002",
	})

	require.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
	assert.Empty(t, entryRepo.entries, "讨论不存在时不应创建回复")
}

func TestCreateEntry_AppendsToDiscussion(t *testing.T) {
	svc, _, _ := newDiscussionServiceForTest(t)

	discussion, err := svc.CreateDiscussion(context.Background(), &dto.CreateDiscussionRequest{
		Title:     "站点维护公告",
		CreatedBy: "4f9c6f2a-0000-0000-0000-000000000001",
	})
	require.NoError(t, err)

	entry, err := svc.CreateEntry(context.Background(), discussion.ID, &dto.CreateDiscussionEntryRequest{
		Text:      "收到，周末注意备份。",
		CreatedBy: "4f9c6f2a-0000-0000-0000-000000000002",
	})

	require.NoError(t, err)
	assert.Equal(t, discussion.ID, entry.DiscussionID)
	assert.Equal(t, "收到，周末注意备份。", entry.Text)
}

func TestListEntries_OldestFirst(t *testing.T) {
	svc, _, _ := newDiscussionServiceForTest(t)

	discussion, err := svc.CreateDiscussion(context.Background(), &dto.CreateDiscussionRequest{
		Title:     "站点维护公告",
		CreatedBy: "4f9c6f2a-0000-0000-0000-000000000001",
	})
	require.NoError(t, err)

	for _, text := range []string{"第一条", "第二条", "第三条"} {
		_, err := svc.CreateEntry(context.Background(), discussion.ID, &dto.CreateDiscussionEntryRequest{
			Text:      text,
			CreatedBy: "4f9c6f2a-0000-0000-0000-000000000002",
		})
		require.NoError(t, err)
	}

	entries, err := svc.ListEntries(context.Background(), discussion.ID)

	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "第一条", entries[0].Text)
	assert.Equal(t, "第三条", entries[2].Text)
}

func TestUpdateDiscussion_PartialUpdateKeepsOtherFields(t *testing.T) {
	svc, _, _ := newDiscussionServiceForTest(t)

	created, err := svc.CreateDiscussion(context.Background(), &dto.CreateDiscussionRequest{
		Title:     "旧标题",
		Category:  "general",
		CreatedBy: "4f9c6f2a-0000-0000-0000-000000000001",
	})
	require.NoError(t, err)

	newTitle := "新标题"
	updated, err := svc.UpdateDiscussion(context.Background(), created.ID, &dto.UpdateDiscussionRequest{
		Title: &newTitle,
	})

	require.NoError(t, err)
	assert.Equal(t, "新标题", updated.Title)
	assert.Equal(t, "general", updated.Category, "未提供的字段保持原值")
}

func TestUpdateEntry_NilTextIsNoOp(t *testing.T) {
	svc, _, _ := newDiscussionServiceForTest(t)

	discussion, err := svc.CreateDiscussion(context.Background(), &dto.CreateDiscussionRequest{
		Title:     "站点维护公告",
		CreatedBy: "4f9c6f2a-0000-0000-0000-000000000001",
	})
	require.NoError(t, err)
	entry, err := svc.CreateEntry(context.Background(), discussion.ID, &dto.CreateDiscussionEntryRequest{
		Text:      "原始内容",
		CreatedBy: "4f9c6f2a-0000-0000-0000-000000000002",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateEntry(context.Background(), entry.ID, &dto.UpdateDiscussionEntryRequest{})

	require.NoError(t, err)
	assert.Equal(t, "原始内容", updated.Text)
}

func TestDeleteEntry_RemovesOnlyTargetEntry(t *testing.T) {
	svc, _, entryRepo := newDiscussionServiceForTest(t)

	discussion, err := svc.CreateDiscussion(context.Background(), &dto.CreateDiscussionRequest{
		Title:     "站点维护公告",
		CreatedBy: "4f9c6f2a-0000-0000-0000-000000000001",
	})
	require.NoError(t, err)
	first, err := svc.CreateEntry(context.Background(), discussion.ID, &dto.CreateDiscussionEntryRequest{
		Text:      "第一条",
		CreatedBy: "4f9c6f2a-0000-0000-0000-000000000002",
	})
	require.NoError(t, err)
	_, err = svc.CreateEntry(context.Background(), discussion.ID, &dto.CreateDiscussionEntryRequest{
		Text:      "第二条",
		CreatedBy: "4f9c6f2a-0000-0000-0000-000000000002",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEntry(context.Background(), first.ID))
	assert.Len(t, entryRepo.entries, 1)
}

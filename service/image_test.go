package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/config"
	"github.com/Xushengqwer/content_service/constant"
	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/myErrors"
)

// fakeImageRepo 是 mysql.ImageRepository 的内存实现。
type fakeImageRepo struct {
	images map[uint64]*entities.Image
}

func (f *fakeImageRepo) CreateImage(_ context.Context, _ *gorm.DB, image *entities.Image) error {
	return errors.New("not implemented")
}

func (f *fakeImageRepo) GetImageByID(_ context.Context, id uint64) (*entities.Image, error) {
	img, ok := f.images[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return img, nil
}

func (f *fakeImageRepo) GetImagesByIDs(_ context.Context, ids []uint64) ([]*entities.Image, error) {
	var result []*entities.Image
	for _, id := range ids {
		if img, ok := f.images[id]; ok {
			result = append(result, img)
		}
	}
	return result, nil
}

func (f *fakeImageRepo) DeleteImage(_ context.Context, _ *gorm.DB, id uint64) error {
	delete(f.images, id)
	return nil
}

// fakeOrgImageRepo 是 mysql.OrganizationImageRepository 的内存实现。
type fakeOrgImageRepo struct {
	links []*entities.OrganizationImage
}

func (f *fakeOrgImageRepo) CreateLink(_ context.Context, _ *gorm.DB, link *entities.OrganizationImage) error {
	f.links = append(f.links, link)
	return nil
}

func (f *fakeOrgImageRepo) CountByOrganization(_ context.Context, _ *gorm.DB, orgID uint64) (int64, error) {
	var count int64
	for _, link := range f.links {
		if link.OrgID == orgID {
			count++
		}
	}
	return count, nil
}

func (f *fakeOrgImageRepo) ListByOrganization(_ context.Context, orgID uint64) ([]*entities.OrganizationImage, error) {
	var result []*entities.OrganizationImage
	for _, link := range f.links {
		if link.OrgID == orgID {
			result = append(result, link)
		}
	}
	return result, nil
}

func (f *fakeOrgImageRepo) DeleteLinksByImageID(_ context.Context, _ *gorm.DB, imageID uint64) error {
	kept := f.links[:0]
	for _, link := range f.links {
		if link.ImageID != imageID {
			kept = append(kept, link)
		}
	}
	f.links = kept
	return nil
}

func newImageServiceForValidation(maxFileSize int64) *imageService {
	return &imageService{
		uploadCfg: config.UploadConfig{ImageMaxFileSize: maxFileSize},
	}
}

func TestValidateImageFile_MissingFileRejected(t *testing.T) {
	svc := newImageServiceForValidation(1024)

	err := svc.validateImageFile(nil)

	require.Error(t, err)
	vErr, ok := myErrors.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "No file was submitted.", vErr.Message)
}

func TestValidateImageFile_OversizedFileRejected(t *testing.T) {
	svc := newImageServiceForValidation(1024)

	err := svc.validateImageFile(&multipart.FileHeader{
		Filename: "photo.jpg",
		Size:     2048,
	})

	require.Error(t, err)
	vErr, ok := myErrors.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "The file size (2048 bytes) is too large. The maximum file size is 1024 bytes.", vErr.Message)
}

func TestValidateImageFile_ExactLimitAccepted(t *testing.T) {
	svc := newImageServiceForValidation(1024)

	err := svc.validateImageFile(&multipart.FileHeader{
		Filename: "photo.jpg",
		Size:     1024, // 恰好等于上限
	})

	assert.NoError(t, err)
}

func TestValidateImageFile_ZeroLimitDisablesSizeCheck(t *testing.T) {
	svc := newImageServiceForValidation(0)

	err := svc.validateImageFile(&multipart.FileHeader{
		Filename: "photo.jpg",
		Size:     1 << 30,
	})

	assert.NoError(t, err)
}

func TestCreateImage_ValidationHappensBeforeAnyWrite(t *testing.T) {
	// db、COS 客户端均为 nil：校验失败必须在触碰任何依赖之前返回，
	// 否则测试会因空指针崩溃。
	svc := newImageServiceForValidation(1024)

	_, err := svc.CreateImage(context.Background(), nil, nil)

	require.Error(t, err)
	_, ok := myErrors.AsValidationError(err)
	assert.True(t, ok)
}

func TestGenerateImageObjectKey_FormatAndUniqueness(t *testing.T) {
	svc := newImageServiceForValidation(0)

	key1 := svc.generateImageObjectKey("photo.JPG")
	key2 := svc.generateImageObjectKey("photo.JPG")

	assert.True(t, strings.HasPrefix(key1, constant.COSObjectKeyPrefixContentImages))
	assert.True(t, strings.HasSuffix(key1, ".jpg"), "扩展名应转为小写: %s", key1)
	assert.NotEqual(t, key1, key2, "对象键必须唯一")
}

func TestSequenceIndex_AppendsToEndOfOrganizationSequence(t *testing.T) {
	orgRepo := &fakeOrgImageRepo{}
	ctx := context.Background()
	const orgID = uint64(7)

	// 依次挂载三张图片，位置应为 0、1、2
	for i := uint64(1); i <= 3; i++ {
		count, err := orgRepo.CountByOrganization(ctx, nil, orgID)
		require.NoError(t, err)
		require.NoError(t, orgRepo.CreateLink(ctx, nil, &entities.OrganizationImage{
			OrgID:         orgID,
			ImageID:       i,
			SequenceIndex: int(count),
		}))
	}

	links, err := orgRepo.ListByOrganization(ctx, orgID)
	require.NoError(t, err)
	require.Len(t, links, 3)
	for i, link := range links {
		assert.Equal(t, i, link.SequenceIndex)
	}

	// 删除中间一张后，位置不回收：下一张挂到位置 2 而不是 3
	require.NoError(t, orgRepo.DeleteLinksByImageID(ctx, nil, 2))
	count, err := orgRepo.CountByOrganization(ctx, nil, orgID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestListImagesByOrganization_OrderedAndSkipsMissingImages(t *testing.T) {
	imageRepo := &fakeImageRepo{images: map[uint64]*entities.Image{}}
	orgRepo := &fakeOrgImageRepo{}
	svc := &imageService{
		imageRepo:    imageRepo,
		orgImageRepo: orgRepo,
		logger:       newTestLogger(t),
	}

	const orgID = uint64(7)
	for i := uint64(1); i <= 3; i++ {
		img := &entities.Image{
			FileURL: fmt.Sprintf("https://cdn.example.com/%d.jpg", i),
		}
		img.ID = i
		imageRepo.images[i] = img
		orgRepo.links = append(orgRepo.links, &entities.OrganizationImage{
			OrgID:         orgID,
			ImageID:       i,
			SequenceIndex: int(i - 1),
		})
	}
	// 图片 2 的元数据行缺失：挂载记录存在但应被跳过
	delete(imageRepo.images, 2)

	resp, err := svc.ListImagesByOrganization(context.Background(), orgID)

	require.NoError(t, err)
	assert.Equal(t, orgID, resp.OrgID)
	require.Len(t, resp.Images, 2)
	assert.Equal(t, uint64(1), resp.Images[0].Image.ID)
	assert.Equal(t, 0, resp.Images[0].SequenceIndex)
	assert.Equal(t, uint64(3), resp.Images[1].Image.ID)
	assert.Equal(t, 2, resp.Images[1].SequenceIndex)
}

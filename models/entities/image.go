package entities

import "github.com/Xushengqwer/go-common/models/entities"

// Image 内容图片实体
// - 使用场景: 存储上传图片的元数据，二进制数据存放在 COS，对外只暴露 id、访问 URL 和创建时间
// - 表名: images
// - 注意: creation_date 语义由 BaseModel.CreatedAt 承担
type Image struct {
	entities.BaseModel

	// 图片公开访问 URL
	FileURL string `gorm:"type:varchar(1023);not null"`

	// 图片在 COS 中的 ObjectKey
	ObjectKey string `gorm:"type:varchar(255);not null;index"`

	// 文件大小 (字节)，入库前已通过上传上限校验
	FileSize int64 `gorm:"not null"`

	// 图片的 MIME 类型，如 "image/jpeg"
	ContentType string `gorm:"type:varchar(50)"`
}

// OrganizationImage 组织-图片桥接实体
// - 使用场景: 将图片挂载到组织，并记录其在该组织图片序列中的位置
// - 表名: organization_images
// - 关系: 一张图片最多挂到一个组织；一个组织可挂多张图片
type OrganizationImage struct {
	entities.BaseModel

	// 组织ID (外键)
	// - index 优化按组织列出图片和统计已有挂载数的查询
	OrgID uint64 `gorm:"not null;index"`

	// 图片ID (外键，指向 images 表主键)
	ImageID uint64 `gorm:"not null;index"`

	// 图片在组织序列中的位置，0 起始
	// - 新挂载的位置取该组织当前挂载数 (追加到末尾)，删除后不回收位置
	SequenceIndex int `gorm:"default:0;index"`
}

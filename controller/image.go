package controller

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/myErrors"
	"github.com/Xushengqwer/content_service/service"
)

// ImageController 定义图片上传与组织挂载的控制器结构体
type ImageController struct {
	imageService service.ImageService
}

// NewImageController 构造函数，用于创建 ImageController 实例
func NewImageController(imageService service.ImageService) *ImageController {
	return &ImageController{
		imageService: imageService,
	}
}

// CreateImage 处理上传图片的 HTTP 请求
// @Summary      上传新图片
// @Description  上传图片文件到对象存储并落库。文件以 "file_object" 表单字段提交；
// @Description  可选提供 organization_id，提供时图片会挂载到该组织的图片序列末尾。
// @Tags         images (图片)
// @Accept       multipart/form-data
// @Produce      json
// @Param        file_object formData file true "图片文件"
// @Param        organization_id formData uint64 false "组织ID (可选)" Format(uint64)
// @Success      200 {object} vo.ImageResponseWrapper "图片上传成功"
// @Failure      400 {object} vo.BaseResponseWrapper "缺少文件、文件过大或其他无效输入"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/images [post]
func (ctrl *ImageController) CreateImage(c *gin.Context) {
	// 1. 解析 Multipart Form (确保在访问表单数据或文件之前调用)
	// 设置表单解析的最大内存，超出部分会存到临时磁盘文件
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "解析表单数据失败: "+err.Error())
		return
	}

	// 2. 绑定附加表单字段
	var req dto.CreateImageRequest
	if err := c.ShouldBind(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	// 3. 取出文件部分。文件缺失不在这里拦截，交由服务层统一产出
	//    "未提交文件" 的校验错误，保证校验语义集中在一处。
	var fileHeader *multipart.FileHeader
	if form := c.Request.MultipartForm; form != nil {
		if files := form.File["file_object"]; len(files) > 0 {
			fileHeader = files[0]
		}
	}

	// 4. 调用服务层处理
	imageVO, err := ctrl.imageService.CreateImage(c.Request.Context(), fileHeader, &req)
	if err != nil {
		if vErr, ok := myErrors.AsValidationError(err); ok {
			response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, vErr.Message)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "上传图片失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, imageVO, "图片上传成功")
}

// GetImageByID 处理获取图片详情的 HTTP 请求
// @Summary      获取指定ID的图片详情
// @Tags         images (图片)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "图片 ID" Format(uint64)
// @Success      200 {object} vo.ImageResponseWrapper "图片详情检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的图片 ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "图片不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/images/{id} [get]
func (ctrl *ImageController) GetImageByID(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的图片 ID 格式")
		return
	}

	imageVO, err := ctrl.imageService.GetImageByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "图片不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "检索图片详情失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, imageVO, "图片详情检索成功")
}

// ListImagesByOrganization 处理按组织获取图片列表的 HTTP 请求
// @Summary      获取指定组织挂载的图片列表
// @Description  返回按序列位置升序排列的组织图片列表。
// @Tags         images (图片)
// @Accept       json
// @Produce      json
// @Param        org_id query uint64 true "组织 ID" Format(uint64)
// @Success      200 {object} vo.ListOrganizationImagesResponseWrapper "图片列表检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/images/by-organization [get]
func (ctrl *ImageController) ListImagesByOrganization(c *gin.Context) {
	var req dto.ListImagesByOrganizationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	listVO, err := ctrl.imageService.ListImagesByOrganization(c.Request.Context(), req.OrgID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "检索组织图片列表失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, listVO, "组织图片列表检索成功")
}

// DeleteImage 处理删除图片的 HTTP 请求
// @Summary      删除指定ID的图片
// @Description  软删除图片记录及其组织挂载记录，并异步清理对象存储中的文件。
// @Tags         images (图片)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "图片 ID" Format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "图片删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的图片 ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "图片不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/images/{id} [delete]
func (ctrl *ImageController) DeleteImage(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的图片 ID 格式")
		return
	}

	if err := ctrl.imageService.DeleteImage(c.Request.Context(), id); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "图片不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "删除图片失败: "+err.Error())
		return
	}
	response.RespondSuccess[any](c, nil, "图片删除成功")
}

// RegisterRoutes 注册 ImageController 的路由
func (ctrl *ImageController) RegisterRoutes(group *gin.RouterGroup) {
	images := group.Group("/images")
	{
		images.POST("", ctrl.CreateImage)                             // POST /api/v1/content/images
		images.GET("/by-organization", ctrl.ListImagesByOrganization) // GET /api/v1/content/images/by-organization
		images.GET("/:id", ctrl.GetImageByID)                         // GET /api/v1/content/images/:id
		images.DELETE("/:id", ctrl.DeleteImage)                       // DELETE /api/v1/content/images/:id
	}
}

package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/service"
)

// ResourceController 定义资源的控制器结构体
type ResourceController struct {
	resourceService service.ResourceService
}

// NewResourceController 构造函数，用于创建 ResourceController 实例
func NewResourceController(resourceService service.ResourceService) *ResourceController {
	return &ResourceController{
		resourceService: resourceService,
	}
}

// CreateResource 处理创建资源的 HTTP 请求
// @Summary      创建新资源
// @Tags         resources (资源)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateResourceRequest true "创建资源请求体"
// @Success      200 {object} vo.ResourceResponseWrapper "资源创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/resources [post]
func (ctrl *ResourceController) CreateResource(c *gin.Context) {
	var req dto.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	resourceVO, err := ctrl.resourceService.CreateResource(c.Request.Context(), &req)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "创建资源失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, resourceVO, "资源创建成功")
}

// GetResourceByID 处理获取资源详情的 HTTP 请求
// @Summary      获取指定ID的资源详情
// @Tags         resources (资源)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "资源 ID" Format(uint64)
// @Success      200 {object} vo.ResourceResponseWrapper "资源详情检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的资源 ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "资源不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/resources/{id} [get]
func (ctrl *ResourceController) GetResourceByID(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的资源 ID 格式")
		return
	}

	resourceVO, err := ctrl.resourceService.GetResourceByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "资源不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "检索资源详情失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, resourceVO, "资源详情检索成功")
}

// ListResources 处理获取资源列表的 HTTP 请求 (游标加载)
// @Summary      获取资源列表 (游标加载)
// @Description  按时间倒序检索资源列表，支持按分类筛选。
// @Tags         resources (资源)
// @Accept       json
// @Produce      json
// @Param        category query string false "按分类筛选" maxLength(100)
// @Param        cursor query uint64 false "游标（上一页最后一条资源的 ID），首页省略" Format(uint64)
// @Param        page_size query int true "每页数量" Format(int) minimum(1) maximum(100)
// @Success      200 {object} vo.ListResourcesResponseWrapper "资源列表检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/resources [get]
func (ctrl *ResourceController) ListResources(c *gin.Context) {
	var req dto.ListResourcesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	listVO, err := ctrl.resourceService.ListResources(c.Request.Context(), &req)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "检索资源列表失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, listVO, "资源列表检索成功")
}

// UpdateResource 处理更新资源的 HTTP 请求
// @Summary      更新指定ID的资源
// @Tags         resources (资源)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "资源 ID" Format(uint64)
// @Param        request body dto.UpdateResourceRequest true "更新资源请求体"
// @Success      200 {object} vo.ResourceResponseWrapper "资源更新成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      404 {object} vo.BaseResponseWrapper "资源不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/resources/{id} [put]
func (ctrl *ResourceController) UpdateResource(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的资源 ID 格式")
		return
	}

	var req dto.UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	resourceVO, err := ctrl.resourceService.UpdateResource(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "资源不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "更新资源失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, resourceVO, "资源更新成功")
}

// DeleteResource 处理删除资源的 HTTP 请求
// @Summary      删除指定ID的资源
// @Tags         resources (资源)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "资源 ID" Format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "资源删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的资源 ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "资源不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/resources/{id} [delete]
func (ctrl *ResourceController) DeleteResource(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的资源 ID 格式")
		return
	}

	if err := ctrl.resourceService.DeleteResource(c.Request.Context(), id); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "资源不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "删除资源失败: "+err.Error())
		return
	}
	response.RespondSuccess[any](c, nil, "资源删除成功")
}

// RegisterRoutes 注册 ResourceController 的路由
func (ctrl *ResourceController) RegisterRoutes(group *gin.RouterGroup) {
	resources := group.Group("/resources")
	{
		resources.POST("", ctrl.CreateResource)       // POST /api/v1/content/resources
		resources.GET("", ctrl.ListResources)         // GET /api/v1/content/resources
		resources.GET("/:id", ctrl.GetResourceByID)   // GET /api/v1/content/resources/:id
		resources.PUT("/:id", ctrl.UpdateResource)    // PUT /api/v1/content/resources/:id
		resources.DELETE("/:id", ctrl.DeleteResource) // DELETE /api/v1/content/resources/:id
	}
}

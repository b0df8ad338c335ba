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

// LocationController 定义地点的控制器结构体
type LocationController struct {
	locationService service.LocationService
}

// NewLocationController 构造函数，用于创建 LocationController 实例
func NewLocationController(locationService service.LocationService) *LocationController {
	return &LocationController{
		locationService: locationService,
	}
}

// CreateLocation 处理创建地点的 HTTP 请求
// @Summary      创建新地点
// @Tags         locations (地点)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateLocationRequest true "创建地点请求体"
// @Success      200 {object} vo.LocationResponseWrapper "地点创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/locations [post]
func (ctrl *LocationController) CreateLocation(c *gin.Context) {
	var req dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	locationVO, err := ctrl.locationService.CreateLocation(c.Request.Context(), &req)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "创建地点失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, locationVO, "地点创建成功")
}

// GetLocationByID 处理获取地点详情的 HTTP 请求
// @Summary      获取指定ID的地点详情
// @Tags         locations (地点)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "地点 ID" Format(uint64)
// @Success      200 {object} vo.LocationResponseWrapper "地点详情检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的地点 ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "地点不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/locations/{id} [get]
func (ctrl *LocationController) GetLocationByID(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的地点 ID 格式")
		return
	}

	locationVO, err := ctrl.locationService.GetLocationByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "地点不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "检索地点详情失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, locationVO, "地点详情检索成功")
}

// ListLocations 处理获取地点列表的 HTTP 请求
// @Summary      获取地点列表
// @Tags         locations (地点)
// @Accept       json
// @Produce      json
// @Success      200 {object} vo.LocationsResponseWrapper "地点列表检索成功"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/locations [get]
func (ctrl *LocationController) ListLocations(c *gin.Context) {
	locationsVO, err := ctrl.locationService.ListLocations(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "检索地点列表失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, locationsVO, "地点列表检索成功")
}

// UpdateLocation 处理更新地点的 HTTP 请求
// @Summary      更新指定ID的地点
// @Tags         locations (地点)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "地点 ID" Format(uint64)
// @Param        request body dto.UpdateLocationRequest true "更新地点请求体"
// @Success      200 {object} vo.LocationResponseWrapper "地点更新成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      404 {object} vo.BaseResponseWrapper "地点不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/locations/{id} [put]
func (ctrl *LocationController) UpdateLocation(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的地点 ID 格式")
		return
	}

	var req dto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	locationVO, err := ctrl.locationService.UpdateLocation(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "地点不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "更新地点失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, locationVO, "地点更新成功")
}

// DeleteLocation 处理删除地点的 HTTP 请求
// @Summary      删除指定ID的地点
// @Tags         locations (地点)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "地点 ID" Format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "地点删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的地点 ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "地点不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/locations/{id} [delete]
func (ctrl *LocationController) DeleteLocation(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的地点 ID 格式")
		return
	}

	if err := ctrl.locationService.DeleteLocation(c.Request.Context(), id); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "地点不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "删除地点失败: "+err.Error())
		return
	}
	response.RespondSuccess[any](c, nil, "地点删除成功")
}

// RegisterRoutes 注册 LocationController 的路由
func (ctrl *LocationController) RegisterRoutes(group *gin.RouterGroup) {
	locations := group.Group("/locations")
	{
		locations.POST("", ctrl.CreateLocation)       // POST /api/v1/content/locations
		locations.GET("", ctrl.ListLocations)         // GET /api/v1/content/locations
		locations.GET("/:id", ctrl.GetLocationByID)   // GET /api/v1/content/locations/:id
		locations.PUT("/:id", ctrl.UpdateLocation)    // PUT /api/v1/content/locations/:id
		locations.DELETE("/:id", ctrl.DeleteLocation) // DELETE /api/v1/content/locations/:id
	}
}

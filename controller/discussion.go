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

// DiscussionController 定义讨论及其回复的控制器结构体
type DiscussionController struct {
	discussionService service.DiscussionService // 服务层接口，通过依赖注入传入
}

// NewDiscussionController 构造函数，用于创建 DiscussionController 实例
func NewDiscussionController(discussionService service.DiscussionService) *DiscussionController {
	return &DiscussionController{
		discussionService: discussionService,
	}
}

// CreateDiscussion 处理创建讨论的 HTTP 请求
// @Summary      创建新讨论
// @Description  使用提供的标题、分类和创建者信息创建一条讨论。
// @Tags         discussions (讨论)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateDiscussionRequest true "创建讨论请求体"
// @Success      200 {object} vo.DiscussionResponseWrapper "讨论创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/discussions [post]
func (ctrl *DiscussionController) CreateDiscussion(c *gin.Context) {
	var req dto.CreateDiscussionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	discussionVO, err := ctrl.discussionService.CreateDiscussion(c.Request.Context(), &req)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "创建讨论失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, discussionVO, "讨论创建成功")
}

// GetDiscussionByID 处理获取讨论详情的 HTTP 请求
// @Summary      获取指定ID的讨论详情
// @Tags         discussions (讨论)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "讨论 ID" Format(uint64)
// @Success      200 {object} vo.DiscussionResponseWrapper "讨论详情检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的讨论 ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "讨论不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/discussions/{id} [get]
func (ctrl *DiscussionController) GetDiscussionByID(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的讨论 ID 格式")
		return
	}

	discussionVO, err := ctrl.discussionService.GetDiscussionByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "讨论不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "检索讨论详情失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, discussionVO, "讨论详情检索成功")
}

// ListDiscussions 处理获取讨论列表的 HTTP 请求 (游标加载)
// @Summary      获取讨论列表 (游标加载)
// @Description  按时间倒序检索讨论列表，支持按分类筛选。
// @Tags         discussions (讨论)
// @Accept       json
// @Produce      json
// @Param        category query string false "按分类筛选" maxLength(100)
// @Param        cursor query uint64 false "游标（上一页最后一条讨论的 ID），首页省略" Format(uint64)
// @Param        page_size query int true "每页数量" Format(int) minimum(1) maximum(100)
// @Success      200 {object} vo.ListDiscussionsResponseWrapper "讨论列表检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/discussions [get]
func (ctrl *DiscussionController) ListDiscussions(c *gin.Context) {
	var req dto.ListDiscussionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	listVO, err := ctrl.discussionService.ListDiscussions(c.Request.Context(), &req)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "检索讨论列表失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, listVO, "讨论列表检索成功")
}

// UpdateDiscussion 处理更新讨论的 HTTP 请求
// @Summary      更新指定ID的讨论
// @Description  部分更新讨论字段，未提供的字段保持不变。
// @Tags         discussions (讨论)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "讨论 ID" Format(uint64)
// @Param        request body dto.UpdateDiscussionRequest true "更新讨论请求体"
// @Success      200 {object} vo.DiscussionResponseWrapper "讨论更新成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      404 {object} vo.BaseResponseWrapper "讨论不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/discussions/{id} [put]
func (ctrl *DiscussionController) UpdateDiscussion(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的讨论 ID 格式")
		return
	}

	var req dto.UpdateDiscussionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	discussionVO, err := ctrl.discussionService.UpdateDiscussion(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "讨论不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "更新讨论失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, discussionVO, "讨论更新成功")
}

// DeleteDiscussion 处理删除讨论的 HTTP 请求
// @Summary      删除指定ID的讨论
// @Description  软删除讨论及其全部回复。
// @Tags         discussions (讨论)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "讨论 ID" Format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "讨论删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的讨论 ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "讨论不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/discussions/{id} [delete]
func (ctrl *DiscussionController) DeleteDiscussion(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的讨论 ID 格式")
		return
	}

	if err := ctrl.discussionService.DeleteDiscussion(c.Request.Context(), id); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "讨论不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "删除讨论失败: "+err.Error())
		return
	}
	response.RespondSuccess[any](c, nil, "讨论删除成功")
}

// CreateEntry 处理在讨论下创建回复的 HTTP 请求
// @Summary      在讨论下创建回复
// @Description  为指定讨论追加一条回复，讨论不存在时返回 404。
// @Tags         discussions (讨论)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "讨论 ID" Format(uint64)
// @Param        request body dto.CreateDiscussionEntryRequest true "创建回复请求体"
// @Success      200 {object} vo.DiscussionEntryResponseWrapper "回复创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      404 {object} vo.BaseResponseWrapper "讨论不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/discussions/{id}/entries [post]
func (ctrl *DiscussionController) CreateEntry(c *gin.Context) {
	idStr := c.Param("id")
	discussionID, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的讨论 ID 格式")
		return
	}

	var req dto.CreateDiscussionEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	entryVO, err := ctrl.discussionService.CreateEntry(c.Request.Context(), discussionID, &req)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "讨论不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "创建回复失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, entryVO, "回复创建成功")
}

// ListEntries 处理获取讨论下回复列表的 HTTP 请求
// @Summary      获取讨论下的回复列表
// @Tags         discussions (讨论)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "讨论 ID" Format(uint64)
// @Success      200 {object} vo.DiscussionEntriesResponseWrapper "回复列表检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的讨论 ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "讨论不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/discussions/{id}/entries [get]
func (ctrl *DiscussionController) ListEntries(c *gin.Context) {
	idStr := c.Param("id")
	discussionID, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的讨论 ID 格式")
		return
	}

	entriesVO, err := ctrl.discussionService.ListEntries(c.Request.Context(), discussionID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "讨论不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "检索回复列表失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, entriesVO, "回复列表检索成功")
}

// UpdateEntry 处理更新讨论回复的 HTTP 请求
// @Summary      更新指定ID的回复
// @Tags         discussions (讨论)
// @Accept       json
// @Produce      json
// @Param        entry_id path uint64 true "回复 ID" Format(uint64)
// @Param        request body dto.UpdateDiscussionEntryRequest true "更新回复请求体"
// @Success      200 {object} vo.DiscussionEntryResponseWrapper "回复更新成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      404 {object} vo.BaseResponseWrapper "回复不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/entries/{entry_id} [put]
func (ctrl *DiscussionController) UpdateEntry(c *gin.Context) {
	idStr := c.Param("entry_id")
	entryID, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的回复 ID 格式")
		return
	}

	var req dto.UpdateDiscussionEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	entryVO, err := ctrl.discussionService.UpdateEntry(c.Request.Context(), entryID, &req)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "回复不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "更新回复失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, entryVO, "回复更新成功")
}

// DeleteEntry 处理删除讨论回复的 HTTP 请求
// @Summary      删除指定ID的回复
// @Tags         discussions (讨论)
// @Accept       json
// @Produce      json
// @Param        entry_id path uint64 true "回复 ID" Format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "回复删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的回复 ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "回复不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/entries/{entry_id} [delete]
func (ctrl *DiscussionController) DeleteEntry(c *gin.Context) {
	idStr := c.Param("entry_id")
	entryID, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的回复 ID 格式")
		return
	}

	if err := ctrl.discussionService.DeleteEntry(c.Request.Context(), entryID); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "回复不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "删除回复失败: "+err.Error())
		return
	}
	response.RespondSuccess[any](c, nil, "回复删除成功")
}

// RegisterRoutes 注册 DiscussionController 的路由
func (ctrl *DiscussionController) RegisterRoutes(group *gin.RouterGroup) {
	discussions := group.Group("/discussions")
	{
		discussions.POST("", ctrl.CreateDiscussion)         // POST /api/v1/content/discussions
		discussions.GET("", ctrl.ListDiscussions)           // GET /api/v1/content/discussions
		discussions.GET("/:id", ctrl.GetDiscussionByID)     // GET /api/v1/content/discussions/:id
		discussions.PUT("/:id", ctrl.UpdateDiscussion)      // PUT /api/v1/content/discussions/:id
		discussions.DELETE("/:id", ctrl.DeleteDiscussion)   // DELETE /api/v1/content/discussions/:id
		discussions.POST("/:id/entries", ctrl.CreateEntry)  // POST /api/v1/content/discussions/:id/entries
		discussions.GET("/:id/entries", ctrl.ListEntries)   // GET /api/v1/content/discussions/:id/entries
	}
	entries := group.Group("/entries")
	{
		entries.PUT("/:entry_id", ctrl.UpdateEntry)    // PUT /api/v1/content/entries/:entry_id
		entries.DELETE("/:entry_id", ctrl.DeleteEntry) // DELETE /api/v1/content/entries/:entry_id
	}
}

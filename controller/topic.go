package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/myErrors"
	"github.com/Xushengqwer/content_service/service"
)

// TopicController 定义主题的控制器结构体
type TopicController struct {
	topicService service.TopicService
}

// NewTopicController 构造函数，用于创建 TopicController 实例
func NewTopicController(topicService service.TopicService) *TopicController {
	return &TopicController{
		topicService: topicService,
	}
}

// respondTopicError 统一映射主题业务错误到 HTTP 响应。
// - 校验错误返回 400，错误体携带业务错误码，便于前端区分
//   "激活主题不允许弃用时间" 与 "未激活主题必须有弃用时间" 两种情况。
func respondTopicError(c *gin.Context, err error, fallbackMsg string) {
	if vErr, ok := myErrors.AsValidationError(err); ok {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, vErr.Code+": "+vErr.Message)
		return
	}
	if errors.Is(err, commonerrors.ErrRepoNotFound) {
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "主题不存在")
		return
	}
	response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, fallbackMsg+": "+err.Error())
}

// CreateTopic 处理创建主题的 HTTP 请求
// @Summary      创建新主题
// @Description  创建主题前会校验激活状态与弃用时间的约束：
// @Description  激活主题不允许携带弃用时间；未激活主题必须携带弃用时间；弃用时间不得早于创建时间。
// @Tags         topics (主题)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateTopicRequest true "创建主题请求体"
// @Success      200 {object} vo.TopicResponseWrapper "主题创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "校验失败或无效的请求负载"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/topics [post]
func (ctrl *TopicController) CreateTopic(c *gin.Context) {
	var req dto.CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	topicVO, err := ctrl.topicService.CreateTopic(c.Request.Context(), &req)
	if err != nil {
		respondTopicError(c, err, "创建主题失败")
		return
	}
	response.RespondSuccess(c, topicVO, "主题创建成功")
}

// GetTopicByID 处理获取主题详情的 HTTP 请求
// @Summary      获取指定ID的主题详情
// @Tags         topics (主题)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "主题 ID" Format(uint64)
// @Success      200 {object} vo.TopicResponseWrapper "主题详情检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的主题 ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "主题不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/topics/{id} [get]
func (ctrl *TopicController) GetTopicByID(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的主题 ID 格式")
		return
	}

	topicVO, err := ctrl.topicService.GetTopicByID(c.Request.Context(), id)
	if err != nil {
		respondTopicError(c, err, "检索主题详情失败")
		return
	}
	response.RespondSuccess(c, topicVO, "主题详情检索成功")
}

// ListTopics 处理获取主题列表的 HTTP 请求
// @Summary      获取主题列表
// @Description  按名称升序返回主题列表。active=true 时走 Redis 缓存（读穿透回源）。
// @Tags         topics (主题)
// @Accept       json
// @Produce      json
// @Param        active query bool false "按激活状态筛选"
// @Success      200 {object} vo.ListTopicsResponseWrapper "主题列表检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/topics [get]
func (ctrl *TopicController) ListTopics(c *gin.Context) {
	var active *bool
	if activeStr, exists := c.GetQuery("active"); exists {
		parsed, err := strconv.ParseBool(activeStr)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的 active 参数，需为布尔值")
			return
		}
		active = &parsed
	}

	listVO, err := ctrl.topicService.ListTopics(c.Request.Context(), active)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "检索主题列表失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, listVO, "主题列表检索成功")
}

// UpdateTopic 处理更新主题的 HTTP 请求
// @Summary      更新指定ID的主题
// @Description  部分更新主题字段。校验针对合并后的完整属性集执行：
// @Description  即使本次请求未携带某字段，其现有值也会参与激活状态与弃用时间的交叉校验。
// @Tags         topics (主题)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "主题 ID" Format(uint64)
// @Param        request body dto.UpdateTopicRequest true "更新主题请求体"
// @Success      200 {object} vo.TopicResponseWrapper "主题更新成功"
// @Failure      400 {object} vo.BaseResponseWrapper "校验失败或无效的请求负载"
// @Failure      404 {object} vo.BaseResponseWrapper "主题不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/topics/{id} [put]
func (ctrl *TopicController) UpdateTopic(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的主题 ID 格式")
		return
	}

	var req dto.UpdateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	topicVO, err := ctrl.topicService.UpdateTopic(c.Request.Context(), id, &req)
	if err != nil {
		respondTopicError(c, err, "更新主题失败")
		return
	}
	response.RespondSuccess(c, topicVO, "主题更新成功")
}

// DeleteTopic 处理删除主题的 HTTP 请求
// @Summary      删除指定ID的主题
// @Tags         topics (主题)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "主题 ID" Format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "主题删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的主题 ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "主题不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/topics/{id} [delete]
func (ctrl *TopicController) DeleteTopic(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的主题 ID 格式")
		return
	}

	if err := ctrl.topicService.DeleteTopic(c.Request.Context(), id); err != nil {
		respondTopicError(c, err, "删除主题失败")
		return
	}
	response.RespondSuccess[any](c, nil, "主题删除成功")
}

// RegisterRoutes 注册 TopicController 的路由
func (ctrl *TopicController) RegisterRoutes(group *gin.RouterGroup) {
	topics := group.Group("/topics")
	{
		topics.POST("", ctrl.CreateTopic)       // POST /api/v1/content/topics
		topics.GET("", ctrl.ListTopics)         // GET /api/v1/content/topics
		topics.GET("/:id", ctrl.GetTopicByID)   // GET /api/v1/content/topics/:id
		topics.PUT("/:id", ctrl.UpdateTopic)    // PUT /api/v1/content/topics/:id
		topics.DELETE("/:id", ctrl.DeleteTopic) // DELETE /api/v1/content/topics/:id
	}
}

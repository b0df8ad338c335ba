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

// FaqController 定义常见问题条目的控制器结构体
type FaqController struct {
	faqService service.FaqService
}

// NewFaqController 构造函数，用于创建 FaqController 实例
func NewFaqController(faqService service.FaqService) *FaqController {
	return &FaqController{
		faqService: faqService,
	}
}

// CreateFaq 处理创建常见问题条目的 HTTP 请求
// @Summary      创建常见问题条目
// @Tags         faqs (常见问题)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateFaqRequest true "创建FAQ请求体"
// @Success      200 {object} vo.FaqResponseWrapper "FAQ创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/faqs [post]
func (ctrl *FaqController) CreateFaq(c *gin.Context) {
	var req dto.CreateFaqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	faqVO, err := ctrl.faqService.CreateFaq(c.Request.Context(), &req)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "创建FAQ失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, faqVO, "FAQ创建成功")
}

// GetFaqByID 处理获取单个常见问题条目的 HTTP 请求
// @Summary      获取指定ID的常见问题条目
// @Tags         faqs (常见问题)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "FAQ ID" Format(uint64)
// @Success      200 {object} vo.FaqResponseWrapper "FAQ检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的 FAQ ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "FAQ不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/faqs/{id} [get]
func (ctrl *FaqController) GetFaqByID(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的 FAQ ID 格式")
		return
	}

	faqVO, err := ctrl.faqService.GetFaqByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "FAQ不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "检索FAQ失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, faqVO, "FAQ检索成功")
}

// ListFaqs 处理获取常见问题列表的 HTTP 请求
// @Summary      获取常见问题列表
// @Description  按展示顺序升序返回全部常见问题条目。
// @Tags         faqs (常见问题)
// @Accept       json
// @Produce      json
// @Success      200 {object} vo.FaqsResponseWrapper "FAQ列表检索成功"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/faqs [get]
func (ctrl *FaqController) ListFaqs(c *gin.Context) {
	faqsVO, err := ctrl.faqService.ListFaqs(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "检索FAQ列表失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, faqsVO, "FAQ列表检索成功")
}

// UpdateFaq 处理更新常见问题条目的 HTTP 请求
// @Summary      更新指定ID的常见问题条目
// @Tags         faqs (常见问题)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "FAQ ID" Format(uint64)
// @Param        request body dto.UpdateFaqRequest true "更新FAQ请求体"
// @Success      200 {object} vo.FaqResponseWrapper "FAQ更新成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      404 {object} vo.BaseResponseWrapper "FAQ不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/faqs/{id} [put]
func (ctrl *FaqController) UpdateFaq(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的 FAQ ID 格式")
		return
	}

	var req dto.UpdateFaqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	faqVO, err := ctrl.faqService.UpdateFaq(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "FAQ不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "更新FAQ失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, faqVO, "FAQ更新成功")
}

// DeleteFaq 处理删除常见问题条目的 HTTP 请求
// @Summary      删除指定ID的常见问题条目
// @Tags         faqs (常见问题)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "FAQ ID" Format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "FAQ删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的 FAQ ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "FAQ不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/faqs/{id} [delete]
func (ctrl *FaqController) DeleteFaq(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的 FAQ ID 格式")
		return
	}

	if err := ctrl.faqService.DeleteFaq(c.Request.Context(), id); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "FAQ不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "删除FAQ失败: "+err.Error())
		return
	}
	response.RespondSuccess[any](c, nil, "FAQ删除成功")
}

// RegisterRoutes 注册 FaqController 的路由
func (ctrl *FaqController) RegisterRoutes(group *gin.RouterGroup) {
	faqs := group.Group("/faqs")
	{
		faqs.POST("", ctrl.CreateFaq)       // POST /api/v1/content/faqs
		faqs.GET("", ctrl.ListFaqs)         // GET /api/v1/content/faqs
		faqs.GET("/:id", ctrl.GetFaqByID)   // GET /api/v1/content/faqs/:id
		faqs.PUT("/:id", ctrl.UpdateFaq)    // PUT /api/v1/content/faqs/:id
		faqs.DELETE("/:id", ctrl.DeleteFaq) // DELETE /api/v1/content/faqs/:id
	}
}

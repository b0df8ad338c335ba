package vo

// --- 用于成功响应且包含具体 Data 的包装器 ---

// DiscussionResponseWrapper 对应 response.APIResponse[vo.DiscussionResponse]
type DiscussionResponseWrapper struct {
	Code    int                `json:"code" example:"0"`
	Message string             `json:"message,omitempty" example:"success"`
	Data    DiscussionResponse `json:"data"`
}

// ListDiscussionsResponseWrapper 对应 response.APIResponse[vo.ListDiscussionsResponse]
type ListDiscussionsResponseWrapper struct {
	Code    int                     `json:"code" example:"0"`
	Message string                  `json:"message,omitempty" example:"success"`
	Data    ListDiscussionsResponse `json:"data"`
}

// DiscussionEntryResponseWrapper 对应 response.APIResponse[vo.DiscussionEntryResponse]
type DiscussionEntryResponseWrapper struct {
	Code    int                     `json:"code" example:"0"`
	Message string                  `json:"message,omitempty" example:"success"`
	Data    DiscussionEntryResponse `json:"data"`
}

// DiscussionEntriesResponseWrapper 对应 response.APIResponse[[]*vo.DiscussionEntryResponse]
type DiscussionEntriesResponseWrapper struct {
	Code    int                        `json:"code" example:"0"`
	Message string                     `json:"message,omitempty" example:"success"`
	Data    []*DiscussionEntryResponse `json:"data"`
}

// FaqResponseWrapper 对应 response.APIResponse[vo.FaqResponse]
type FaqResponseWrapper struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message,omitempty" example:"success"`
	Data    FaqResponse `json:"data"`
}

// FaqsResponseWrapper 对应 response.APIResponse[[]*vo.FaqResponse]
type FaqsResponseWrapper struct {
	Code    int            `json:"code" example:"0"`
	Message string         `json:"message,omitempty" example:"success"`
	Data    []*FaqResponse `json:"data"`
}

// ImageResponseWrapper 对应 response.APIResponse[vo.ImageResponse]
type ImageResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    ImageResponse `json:"data"`
}

// ListOrganizationImagesResponseWrapper 对应 response.APIResponse[vo.ListOrganizationImagesResponse]
type ListOrganizationImagesResponseWrapper struct {
	Code    int                            `json:"code" example:"0"`
	Message string                         `json:"message,omitempty" example:"success"`
	Data    ListOrganizationImagesResponse `json:"data"`
}

// LocationResponseWrapper 对应 response.APIResponse[vo.LocationResponse]
type LocationResponseWrapper struct {
	Code    int              `json:"code" example:"0"`
	Message string           `json:"message,omitempty" example:"success"`
	Data    LocationResponse `json:"data"`
}

// LocationsResponseWrapper 对应 response.APIResponse[[]*vo.LocationResponse]
type LocationsResponseWrapper struct {
	Code    int                 `json:"code" example:"0"`
	Message string              `json:"message,omitempty" example:"success"`
	Data    []*LocationResponse `json:"data"`
}

// ResourceResponseWrapper 对应 response.APIResponse[vo.ResourceResponse]
type ResourceResponseWrapper struct {
	Code    int              `json:"code" example:"0"`
	Message string           `json:"message,omitempty" example:"success"`
	Data    ResourceResponse `json:"data"`
}

// ListResourcesResponseWrapper 对应 response.APIResponse[vo.ListResourcesResponse]
type ListResourcesResponseWrapper struct {
	Code    int                   `json:"code" example:"0"`
	Message string                `json:"message,omitempty" example:"success"`
	Data    ListResourcesResponse `json:"data"`
}

// TopicResponseWrapper 对应 response.APIResponse[vo.TopicResponse]
type TopicResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    TopicResponse `json:"data"`
}

// ListTopicsResponseWrapper 对应 response.APIResponse[vo.ListTopicsResponse]
type ListTopicsResponseWrapper struct {
	Code    int                `json:"code" example:"0"`
	Message string             `json:"message,omitempty" example:"success"`
	Data    ListTopicsResponse `json:"data"`
}

// --- 用于错误响应 或 简单成功响应（只有 Code 和 Message） ---

// BaseResponseWrapper 代表一个只包含 Code 和 Message 的响应。
// 适用于错误情况（RespondError 返回时 Data 为 nil 且 omitempty）
// 或某些成功操作（如 DELETE）可能也只返回 Code 和 Message。
type BaseResponseWrapper struct {
	Code    int    `json:"code" example:"0"`          // 成功时为 0, 错误时为具体错误码
	Message string `json:"message" example:"success"` // 成功或错误消息
}

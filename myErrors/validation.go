package myErrors

import "errors"

// 主题校验失败时附带的机器可读错误码，供前端按码展示文案
const (
	CodeActiveTopicWithDeprecation = "active_topic_with_deprecation_error"
	CodeInactiveTopicNoDeprecation = "inactive_topic_no_deprecation_error"
)

// ValidationError 表示输入数据未通过业务校验。
// - Code 为可选的机器可读错误码 (目前仅主题校验使用)，图片类校验只携带 Message。
// - 所有校验失败都发生在任何持久化写入之前。
type ValidationError struct {
	Code    string // 机器可读错误码，可为空
	Message string // 面向用户的错误描述
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError 创建一个不带错误码的校验错误
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NewValidationErrorWithCode 创建一个带错误码的校验错误
func NewValidationErrorWithCode(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

// AsValidationError 判断 err 链上是否存在 ValidationError，存在时返回该错误。
// 控制器层据此决定返回 400 还是 500。
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

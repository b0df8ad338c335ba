package utils

import (
	"fmt"
	"time"

	"github.com/Xushengqwer/content_service/myErrors"
)

// ValidateCreationAndDeprecationDates 校验创建时间与弃用时间的先后关系。
// - deprecationDate 为 nil 时视为未设置，直接通过。
// - 弃用时间早于创建时间视为非法，返回 ValidationError。
// - 与其他主题校验一样，失败发生在持久化之前。
func ValidateCreationAndDeprecationDates(creationDate time.Time, deprecationDate *time.Time) error {
	if deprecationDate == nil {
		return nil
	}
	if deprecationDate.Before(creationDate) {
		return myErrors.NewValidationError(fmt.Sprintf(
			"The deprecation date (%s) cannot be before the creation date (%s).",
			deprecationDate.Format(time.RFC3339), creationDate.Format(time.RFC3339),
		))
	}
	return nil
}

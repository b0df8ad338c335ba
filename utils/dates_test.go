package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/content_service/myErrors"
)

func TestValidateCreationAndDeprecationDates_NilDeprecationPasses(t *testing.T) {
	err := ValidateCreationAndDeprecationDates(time.Now(), nil)
	assert.NoError(t, err)
}

func TestValidateCreationAndDeprecationDates_FutureDeprecationPasses(t *testing.T) {
	creation := time.Now()
	deprecation := creation.AddDate(0, 6, 0)

	err := ValidateCreationAndDeprecationDates(creation, &deprecation)
	assert.NoError(t, err)
}

func TestValidateCreationAndDeprecationDates_EqualDatesPass(t *testing.T) {
	creation := time.Now()
	deprecation := creation

	err := ValidateCreationAndDeprecationDates(creation, &deprecation)
	assert.NoError(t, err, "弃用时间等于创建时间视为合法")
}

func TestValidateCreationAndDeprecationDates_PastDeprecationRejected(t *testing.T) {
	creation := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	deprecation := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

	err := ValidateCreationAndDeprecationDates(creation, &deprecation)

	require.Error(t, err)
	vErr, ok := myErrors.AsValidationError(err)
	require.True(t, ok)
	assert.Empty(t, vErr.Code)
	assert.Contains(t, vErr.Message, deprecation.Format(time.RFC3339))
	assert.Contains(t, vErr.Message, creation.Format(time.RFC3339))
}

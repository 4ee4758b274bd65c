package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createHallPayload struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Capacity int    `json:"capacity" validate:"required,min=1"`
}

func TestValidateStruct(t *testing.T) {
	assert.Nil(t, ValidateStruct(createHallPayload{Name: "Sala 1", Capacity: 50}))

	errs := ValidateStruct(createHallPayload{})
	require.Len(t, errs, 2)
	assert.Equal(t, "This field is required", errs["name"])
	assert.Equal(t, "This field is required", errs["capacity"])
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"0", "-1", "abc", "", "1.5"} {
		_, err := ParseID(bad)
		assert.Error(t, err, "value %q", bad)
	}
}

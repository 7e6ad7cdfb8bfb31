package optional_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayforge/hotel-booking-service/pkg/optional"
)

func TestOptional_UnmarshalJSON(t *testing.T) {
	type payload struct {
		Name        optional.Optional[string]  `json:"name"`
		Description optional.Optional[*string] `json:"description"`
	}

	t.Run("absent_field_not_present", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))

		assert.False(t, p.Name.Present)
		assert.False(t, p.Description.Present)
	})

	t.Run("present_field", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"name":"Grand"}`), &p))

		value, ok := p.Name.Get()
		require.True(t, ok)
		assert.Equal(t, "Grand", value)
	})

	t.Run("present_null_differs_from_absent", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"description":null}`), &p))

		require.True(t, p.Description.Present)
		assert.Nil(t, p.Description.Value)
	})
}

func TestOptional_Of(t *testing.T) {
	opt := optional.Of(42)

	value, ok := opt.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, value)

	var blank optional.Optional[int]
	_, ok = blank.Get()
	assert.False(t, ok)
}

package env_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayforge/hotel-booking-service/pkg/env"
)

func TestParse(t *testing.T) {
	t.Setenv("TEST_STRING", "value")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_DURATION", "15s")
	t.Setenv("TEST_INVALID_INT", "not-a-number")

	str, err := env.Parse[string]("TEST_STRING")
	require.NoError(t, err)
	assert.Equal(t, "value", str)

	num, err := env.Parse[int]("TEST_INT")
	require.NoError(t, err)
	assert.Equal(t, 42, num)

	dur, err := env.Parse[time.Duration]("TEST_DURATION")
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, dur)

	_, err = env.Parse[int]("TEST_INVALID_INT")
	assert.Error(t, err)

	_, err = env.Parse[string]("TEST_NOT_SET")
	assert.Error(t, err)
}

func TestParseOptional(t *testing.T) {
	t.Setenv("TEST_SET", "10")

	value, err := env.ParseOptional[int]("TEST_SET")
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, 10, *value)

	value, err = env.ParseOptional[int]("TEST_NOT_SET")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestParseDefault(t *testing.T) {
	t.Setenv("TEST_SET", "10")

	value, err := env.ParseDefault[int]("TEST_SET", 5)
	require.NoError(t, err)
	assert.Equal(t, 10, value)

	value, err = env.ParseDefault[int]("TEST_NOT_SET", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, value)
}

func TestMust_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		env.Must(env.Parse[int]("TEST_NOT_SET"))
	})
}

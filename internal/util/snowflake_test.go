package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSnowflake(t *testing.T) {
	id, err := ParseSnowflake("190631286663233536")
	require.NoError(t, err)
	assert.Equal(t, uint64(190631286663233536), id)

	_, err = ParseSnowflake("not-a-snowflake")
	assert.Error(t, err)

	_, err = ParseSnowflake("-1")
	assert.Error(t, err)
}

func TestFormatSnowflake(t *testing.T) {
	assert.Equal(t, "123", FormatSnowflake(123))
}

func TestMustParseSnowflakePanics(t *testing.T) {
	assert.Panics(t, func() { MustParseSnowflake("") })
}

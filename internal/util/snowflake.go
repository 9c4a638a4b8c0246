package util

import (
	"fmt"
	"strconv"
)

// ParseSnowflake parses a Discord snowflake ID string.
func ParseSnowflake(s string) (uint64, error) {
	val, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("could not parse Snowflake ID string: %w", err)
	}
	return val, nil
}

// MustParseSnowflake parses a Discord snowflake ID string and panics on
// malformed input. Only for values the platform itself produced.
func MustParseSnowflake(s string) uint64 {
	val, err := ParseSnowflake(s)
	if err != nil {
		panic(err)
	}
	return val
}

// FormatSnowflake renders a snowflake back into its decimal string form.
func FormatSnowflake(s uint64) string {
	return strconv.FormatUint(s, 10)
}

package utcdatetime_test

import (
	"github.com/davejbax/go-utcdatetime"
	"github.com/stretchr/testify/require"
	"testing"
)

// mustNew creates a DateTime that the test expects to be valid
func mustNew(t *testing.T, year uint16, month, day, hour, minute, second uint8) utcdatetime.DateTime {
	t.Helper()

	d, err := utcdatetime.New(year, month, day, hour, minute, second)
	require.NoError(t, err, "New should not return an error for %d-%d-%d %d:%d:%d", year, month, day, hour, minute, second)

	return d
}

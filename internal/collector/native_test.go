package collector

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monify-labs/check_swap/internal/swap"
)

func TestWriteRow(t *testing.T) {
	var b strings.Builder
	writeRow(&b, "/dev/gpt/swap0", 134217728, 939524096)

	assert.Equal(t, "/dev/gpt/swap0 1048576 131072 917504 12%\n", b.String())
}

func TestWriteRowEmptyDevice(t *testing.T) {
	var b strings.Builder
	writeRow(&b, "swap", 0, 0)

	assert.Equal(t, "swap 0 0 0 0%\n", b.String())
}

func TestNativeSourceSummaryFeedsAggregator(t *testing.T) {
	out, err := NewNativeSource().Summary(context.Background())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Device"))

	_, err = swap.Aggregate(out, false)
	assert.NoError(t, err)
}

func TestNativeSourceName(t *testing.T) {
	assert.Equal(t, "native", NewNativeSource().Name())
}

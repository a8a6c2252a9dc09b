package sysinfo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFact(t *testing.T) {
	known := Known(MemoryStats{UsedMB: 512, TotalMB: 2048, Percent: 25})
	assert.True(t, known.OK())
	assert.NoError(t, known.Err)
	assert.Equal(t, "25.0% (512MB / 2048MB)", known.String())

	cause := errors.New("no meminfo")
	degraded := Degraded[MemoryStats](FallbackUnavailable, cause)
	assert.False(t, degraded.OK())
	assert.ErrorIs(t, degraded.Err, cause)
	assert.Equal(t, "Unavailable", degraded.String())
}

func TestDiskStats_String(t *testing.T) {
	assert.Equal(t, "42GB used / 128GB total", DiskStats{UsedGB: 42, TotalGB: 128}.String())
}

package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tdash/logger"
)

func TestPlanFor(t *testing.T) {
	tests := []struct {
		width int
		want  Plan
	}{
		{0, Stacked},
		{40, Stacked},
		{80, Stacked},
		{99, Stacked},
		{100, SideBySide},
		{101, SideBySide},
		{140, SideBySide},
		{400, SideBySide},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PlanFor(tt.width), "width %d", tt.width)
	}
}

func TestPlanFor_ThresholdIsExact(t *testing.T) {
	for w := 0; w < 300; w++ {
		assert.Equal(t, w < StackThreshold, PlanFor(w) == Stacked, "width %d", w)
	}
}

func TestPlan_String(t *testing.T) {
	assert.Equal(t, "stacked", Stacked.String())
	assert.Equal(t, "side-by-side", SideBySide.String())
	assert.Equal(t, "unknown", Plan(7).String())
}

// go test runs with stdout redirected, so the terminal query fails and the
// environment fallbacks are exercised.
func TestDetectWidth(t *testing.T) {
	tests := []struct {
		name     string
		override int
		columns  string
		want     int
		wantWarn bool
	}{
		{"override wins", 132, "90", 132, false},
		{"columns env", 0, "90", 90, false},
		{"invalid columns", 0, "wide", DefaultWidth, true},
		{"no hints", 0, "", DefaultWidth, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("COLUMNS", tt.columns)
			log := logger.NewBufferLogger()
			got := DetectWidth(tt.override, log)
			if tt.override > 0 {
				assert.Equal(t, tt.want, got)
				assert.False(t, log.HasLevel("warn"))
				return
			}
			// A real terminal on stdout takes precedence over COLUMNS.
			if got != tt.want {
				t.Skipf("stdout is a terminal reporting width %d", got)
			}
			assert.Equal(t, tt.wantWarn, log.HasLevel("warn"))
		})
	}
}

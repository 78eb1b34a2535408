package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecorder_Count(t *testing.T) {
	r := NewRecorder()

	r.Record(5 * time.Millisecond)
	r.Record(10 * time.Millisecond)
	r.Record(15 * time.Millisecond)

	assert.Equal(t, int64(3), r.Count())
}

func TestRecorder_Quantiles(t *testing.T) {
	r := NewRecorder()

	for i := 1; i <= 100; i++ {
		r.Record(time.Duration(i) * time.Millisecond)
	}

	assert.LessOrEqual(t, r.P50(), r.P95())
	assert.LessOrEqual(t, r.P95(), r.P99())
	// HDR compression keeps 3 significant digits, so allow some slack
	assert.InDelta(t, 50, r.P50().Milliseconds(), 2)
	assert.InDelta(t, 95, r.P95().Milliseconds(), 2)
}

func TestRecorder_MinMaxMean(t *testing.T) {
	r := NewRecorder()

	r.Record(10 * time.Millisecond)
	r.Record(20 * time.Millisecond)
	r.Record(30 * time.Millisecond)

	assert.InDelta(t, 10, r.Min().Milliseconds(), 1)
	assert.InDelta(t, 30, r.Max().Milliseconds(), 1)
	assert.InDelta(t, 20, r.Mean().Milliseconds(), 1)
}

func TestRecorder_Reset(t *testing.T) {
	r := NewRecorder()

	r.Record(time.Millisecond)
	r.Reset()

	assert.Equal(t, int64(0), r.Count())
}

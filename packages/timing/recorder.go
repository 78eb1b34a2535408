// Package timing records request latencies for percentile assertions over
// repeated calls.
package timing

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Recorder aggregates request durations into an HDR histogram. It is safe
// for concurrent use, though the intended pattern is sequential test calls.
type Recorder struct {
	mu   sync.Mutex
	hist *hdrhistogram.Histogram
}

func NewRecorder() *Recorder {
	return &Recorder{
		// 1us to 60s range, 3 significant digits
		hist: hdrhistogram.New(1, 60_000_000, 3),
	}
}

func (r *Recorder) Record(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_ = r.hist.RecordValue(d.Microseconds())
}

func (r *Recorder) Count() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hist.TotalCount()
}

// Quantile returns the latency at the given percentile (0-100).
func (r *Recorder) Quantile(q float64) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return time.Duration(r.hist.ValueAtQuantile(q)) * time.Microsecond
}

func (r *Recorder) P50() time.Duration { return r.Quantile(50) }
func (r *Recorder) P95() time.Duration { return r.Quantile(95) }
func (r *Recorder) P99() time.Duration { return r.Quantile(99) }

func (r *Recorder) Min() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return time.Duration(r.hist.Min()) * time.Microsecond
}

func (r *Recorder) Max() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return time.Duration(r.hist.Max()) * time.Microsecond
}

func (r *Recorder) Mean() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return time.Duration(r.hist.Mean()) * time.Microsecond
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hist.Reset()
}

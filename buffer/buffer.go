package buffer

import (
	"math"
	"sync"
)

type Average float64
type Minimum float64
type Maximum float64
type Sum float64

// SampleWindow holds the most recent <capacity> samples. Once full,
// adding a sample evicts the oldest one. Writers (the telemetry tick)
// and readers (web handlers) run on different goroutines.
type SampleWindow struct {
	capacity int
	data     []float64
	lock     sync.Mutex
}

func NewSampleWindow(capacity int) *SampleWindow {
	w := SampleWindow{}

	w.capacity = capacity
	w.data = make([]float64, 0, capacity)

	return &w
}

func (w *SampleWindow) AddItem(val float64) {
	w.lock.Lock()
	defer w.lock.Unlock()
	if len(w.data) == w.capacity {
		copy(w.data, w.data[1:])
		w.data[len(w.data)-1] = val
		return
	}
	w.data = append(w.data, val)
}

func (w *SampleWindow) Len() int {
	w.lock.Lock()
	defer w.lock.Unlock()
	return len(w.data)
}

func (w *SampleWindow) Capacity() int {
	return w.capacity
}

// Values returns a copy of the window, oldest sample first.
func (w *SampleWindow) Values() []float64 {
	w.lock.Lock()
	defer w.lock.Unlock()
	vals := make([]float64, len(w.data))
	copy(vals, w.data)
	return vals
}

func (w *SampleWindow) GetLast() float64 {
	w.lock.Lock()
	defer w.lock.Unlock()
	if len(w.data) == 0 {
		return 0
	}
	return w.data[len(w.data)-1]
}

func (w *SampleWindow) GetAverageMinMaxSum() (Average, Minimum, Maximum, Sum) {
	w.lock.Lock()
	defer w.lock.Unlock()

	if len(w.data) == 0 {
		return Average(0), Minimum(0), Maximum(0), Sum(0)
	}

	min := math.MaxFloat64
	max := 0.0
	sum := 0.0

	for _, x := range w.data {
		if x > max {
			max = x
		}
		if x < min {
			min = x
		}
		sum += x
	}

	return Average(sum / float64(len(w.data))), Minimum(min), Maximum(max), Sum(sum)
}

// LabelWindow is the SampleWindow shape over strings, used for the
// chart x-axis label series so it stays in lockstep with the samples.
type LabelWindow struct {
	capacity int
	data     []string
	lock     sync.Mutex
}

func NewLabelWindow(capacity int) *LabelWindow {
	w := LabelWindow{}

	w.capacity = capacity
	w.data = make([]string, 0, capacity)

	return &w
}

func (w *LabelWindow) AddItem(val string) {
	w.lock.Lock()
	defer w.lock.Unlock()
	if len(w.data) == w.capacity {
		copy(w.data, w.data[1:])
		w.data[len(w.data)-1] = val
		return
	}
	w.data = append(w.data, val)
}

func (w *LabelWindow) Len() int {
	w.lock.Lock()
	defer w.lock.Unlock()
	return len(w.data)
}

func (w *LabelWindow) Values() []string {
	w.lock.Lock()
	defer w.lock.Unlock()
	vals := make([]string, len(w.data))
	copy(vals, w.data)
	return vals
}

// Package stats accumulates electrical samples into running statistics for
// one reporting window at a time.
package stats

import "github.com/chewxy/math32"

// Snapshot holds the aggregate statistics of one reporting window.
type Snapshot struct {
	VoltageAvg float32
	PowerAvg   float32
	PowerMin   float32
	PowerMax   float32
	Count      uint32
}

// Valid reports whether the window contained any samples. An invalid
// snapshot carries zeroes so nothing undefined leaks into a record.
func (s Snapshot) Valid() bool {
	return s.Count > 0
}

// Accumulator maintains running sums and extrema of (voltage, power)
// samples. It is owned by a single control loop; Record and
// SnapshotAndReset are never called concurrently.
type Accumulator struct {
	count      uint32
	voltageSum float64
	powerSum   float64
	powerMin   float32
	powerMax   float32
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	a := &Accumulator{}
	a.reset()
	return a
}

// Record folds one sample into the running statistics. O(1), no allocation.
func (a *Accumulator) Record(voltage, power float32) {
	a.count++
	a.voltageSum += float64(voltage)
	a.powerSum += float64(power)
	a.powerMin = math32.Min(a.powerMin, power)
	a.powerMax = math32.Max(a.powerMax, power)
}

// Count returns the number of samples recorded since the last reset.
func (a *Accumulator) Count() uint32 {
	return a.count
}

// SnapshotAndReset computes the window statistics and clears the
// accumulator so the next window starts fresh. With zero samples the
// snapshot is zero-valued and marked invalid; the division is guarded so
// no NaN can escape.
func (a *Accumulator) SnapshotAndReset() Snapshot {
	snap := Snapshot{Count: a.count}
	if a.count > 0 {
		n := float64(a.count)
		snap.VoltageAvg = float32(a.voltageSum / n)
		snap.PowerAvg = float32(a.powerSum / n)
		snap.PowerMin = a.powerMin
		snap.PowerMax = a.powerMax
	}
	a.reset()
	return snap
}

// reset restores the initial state: zero sums, open-ended extrema.
func (a *Accumulator) reset() {
	a.count = 0
	a.voltageSum = 0
	a.powerSum = 0
	a.powerMin = math32.Inf(1)
	a.powerMax = 0
}

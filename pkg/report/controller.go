package report

import (
	"context"
	"log"
	"time"

	"github.com/itohio/sunmon/pkg/config"
	"github.com/itohio/sunmon/pkg/gateway"
	"github.com/itohio/sunmon/pkg/onewire"
	"github.com/itohio/sunmon/pkg/power"
	"github.com/itohio/sunmon/pkg/stats"
)

// Flush describes one completed reporting cycle, delivered to OnFlush
// callbacks after the send attempt.
type Flush struct {
	Stats     stats.Snapshot
	CardTempF *float32 // nil when the board temperature query failed
	Readings  []onewire.Reading
	SubmitErr error
}

// Controller is the node's top-level cycle: it samples the panel sensor on
// every tick, and once the reporting interval elapses it drains the
// accumulator, enumerates the probe string, queries the board temperature
// and submits one record through the gateway. Everything runs on a single
// loop; no call here is concurrent with another.
type Controller struct {
	sensor power.Sensor
	cal    power.Calibration
	bus    onewire.Bus
	gw     gateway.Gateway

	interval       time.Duration
	tick           time.Duration
	resolutionBits int
	cardOffsetC    float32

	acc       *stats.Accumulator
	lastFlush time.Time
	now       func() time.Time

	callbacks []func(Flush)
}

// New creates a controller wired to the real clock. The first flush occurs
// one full interval after creation, not immediately.
func New(cfg *config.Config, sensor power.Sensor, bus onewire.Bus, gw gateway.Gateway) *Controller {
	return NewWithClock(cfg, sensor, bus, gw, time.Now)
}

// NewWithClock fixes the controller's time source; tests inject a fake
// clock to drive the interval gating deterministically.
func NewWithClock(cfg *config.Config, sensor power.Sensor, bus onewire.Bus, gw gateway.Gateway, now func() time.Time) *Controller {
	c := &Controller{
		sensor: sensor,
		cal: power.Calibration{
			ShuntOhms:     cfg.Power.ShuntOhms,
			CurrentFactor: cfg.Power.CurrentCalibration,
		},
		bus:            bus,
		gw:             gw,
		interval:       time.Duration(cfg.Report.IntervalSeconds) * time.Second,
		tick:           time.Duration(cfg.Report.TickSeconds) * time.Second,
		resolutionBits: cfg.OneWire.ResolutionBits,
		cardOffsetC:    cfg.Gateway.CardTempOffsetC,
		acc:            stats.NewAccumulator(),
		now:            now,
	}
	c.lastFlush = c.now()
	return c
}

// OnFlush registers a callback invoked after every reporting cycle.
// Callbacks run on the control loop; keep them short.
func (c *Controller) OnFlush(fn func(Flush)) {
	c.callbacks = append(c.callbacks, fn)
}

// Run executes the control loop until the context is cancelled.
func (c *Controller) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.Tick()
		}
	}
}

// Tick performs one cycle step: sample the sensor, then flush if the
// reporting interval has elapsed. Elapsed time is computed by subtraction
// on the monotonic clock, so absolute clock steps cannot skew the gate.
func (c *Controller) Tick() {
	c.sample()

	now := c.now()
	if now.Sub(c.lastFlush) >= c.interval {
		c.flush(now)
	}
}

// sample reads the panel sensor once and folds the result into the window.
// A failed read costs the window one sample and nothing else.
func (c *Controller) sample() {
	voltage, pwr, err := power.Read(c.sensor, c.cal)
	if err != nil {
		log.Printf("sample: %v", err)
		return
	}
	c.acc.Record(voltage, pwr)
}

// flush drains the window and sends one record.
func (c *Controller) flush(now time.Time) {
	// Stamp the boundary before doing the work, so slow enumeration or a
	// slow transport cannot stretch subsequent intervals.
	c.lastFlush = now

	snap := c.acc.SnapshotAndReset()

	var cardTempF *float32
	if tempC, err := c.gw.CardTemperature(); err != nil {
		log.Printf("card temperature: %v", err)
	} else {
		f := stats.CToF(tempC + c.cardOffsetC)
		cardTempF = &f
	}

	readings := onewire.Enumerate(c.bus, c.resolutionBits)

	var submitErr error
	if err := c.gw.Submit(Body(snap, cardTempF, readings)); err != nil {
		// Not retried; the next cycle sends its own window regardless.
		submitErr = err
		log.Printf("submit: %v", err)
	}

	f := Flush{
		Stats:     snap,
		CardTempF: cardTempF,
		Readings:  readings,
		SubmitErr: submitErr,
	}
	for _, fn := range c.callbacks {
		fn(f)
	}
}

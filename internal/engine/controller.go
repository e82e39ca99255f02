package engine

import (
	"sync"
	"time"

	"github.com/nurseguard/backend/pkg/model"
)

// Default engine cadence.
const (
	DefaultInitialDelay = 2 * time.Second
	DefaultInterval     = 8 * time.Second
)

type controllerState int

const (
	stateStopped controllerState = iota
	stateStarting
	stateRunning
)

// AlertSink receives each newly generated alert. It is invoked synchronously
// on the timer's flow of control and must return promptly.
type AlertSink func(model.Alert)

// Controller drives the alert generator on a timer loop: one initial delay
// before the first alert, then a recurring interval. Start and Stop are
// idempotent.
type Controller struct {
	mu           sync.Mutex
	state        controllerState
	generator    *Generator
	sink         AlertSink
	clock        Clock
	initialDelay time.Duration
	interval     time.Duration

	startTime       time.Time
	totalDetections int
	delayTimer      Timer
	intervalTimer   Timer
}

// NewController wires a generator to a sink. Non-positive durations fall back
// to the defaults.
func NewController(generator *Generator, sink AlertSink, clock Clock, initialDelay, interval time.Duration) *Controller {
	if initialDelay <= 0 {
		initialDelay = DefaultInitialDelay
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Controller{
		state:        stateStopped,
		generator:    generator,
		sink:         sink,
		clock:        clock,
		initialDelay: initialDelay,
		interval:     interval,
	}
}

// Start transitions stopped→starting and arms the initial-delay timer. A
// no-op when already starting or running.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != stateStopped {
		return
	}

	c.state = stateStarting
	c.startTime = c.clock.Now()
	c.totalDetections = 0
	c.delayTimer = c.clock.AfterFunc(c.initialDelay, c.fireFirst)
}

// Stop cancels any pending timers and transitions to stopped. A no-op when
// already stopped.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == stateStopped {
		return
	}

	if c.delayTimer != nil {
		c.delayTimer.Stop()
		c.delayTimer = nil
	}
	if c.intervalTimer != nil {
		c.intervalTimer.Stop()
		c.intervalTimer = nil
	}
	c.state = stateStopped
}

// IsRunning reports whether the engine has been started and not yet stopped.
func (c *Controller) IsRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state != stateStopped
}

// Stats returns the engine lifecycle counters. Uptime is zero while stopped.
func (c *Controller) Stats() model.EngineStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	var uptime int64
	if c.state != stateStopped {
		uptime = int64(c.clock.Now().Sub(c.startTime).Seconds())
	}

	return model.EngineStats{
		TotalDetections: c.totalDetections,
		Running:         c.state != stateStopped,
		UptimeSeconds:   uptime,
		IntervalMs:      c.interval.Milliseconds(),
	}
}

func (c *Controller) fireFirst() {
	c.mu.Lock()
	if c.state != stateStarting {
		c.mu.Unlock()
		return
	}
	c.state = stateRunning
	c.delayTimer = nil
	c.mu.Unlock()

	c.fire()
	c.scheduleNext()
}

func (c *Controller) fireTick() {
	c.mu.Lock()
	if c.state != stateRunning {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	c.fire()
	c.scheduleNext()
}

// fire generates one alert and hands it to the sink. The sink runs outside
// the controller lock so it may call back into Stats or Stop.
func (c *Controller) fire() {
	c.mu.Lock()
	if c.state != stateRunning {
		c.mu.Unlock()
		return
	}
	alert := c.generator.Generate()
	c.totalDetections++
	sink := c.sink
	c.mu.Unlock()

	if sink != nil {
		sink(alert)
	}
}

func (c *Controller) scheduleNext() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != stateRunning {
		return
	}
	c.intervalTimer = c.clock.AfterFunc(c.interval, c.fireTick)
}

package main

import (
	"context"
	"strconv"

	"github.com/windlab/turbinedash/data"
	"github.com/windlab/turbinedash/env"

	logger "github.com/sirupsen/logrus"
)

/*
Simulated turbine telemetry

Once per second the monitor draws a wind reading from the synthetic
anemometer and folds it into the dashboard state. Everything else on
the screen is derived from that one reading:

  blade angles   2s, 2s+5, 2s-5 degrees
  power          s * 1.5 kW
  energy         power / 60 added per tick
  rotor period   max(0.3, 6 - s/3) seconds per revolution

The slider on the dashboard can overwrite the current speed between
ticks (0-25 m/s); the next draw replaces it again. History windows and
the energy accumulator only move on a tick, never on an override.
*/

func (w *turbinestation) StartTurbineMonitor(ctx context.Context) {
	logger.Info("Starting turbine monitor")
	ticker := w.clock.NewTicker(env.TickInterval)
	defer ticker.Stop()
	// once per second record a telemetry sample
	for {
		select {
		case <-ctx.Done():
			logger.Info("Turbine monitor stopped")
			return
		case <-ticker.Chan():
			w.recordTelemetry()
		}
	}
}

func (w *turbinestation) recordTelemetry() {
	speed := w.s.Anemometer.GetSpeed()
	direction := w.s.Anemometer.GetDirection()

	w.data.RecordTick(speed, direction)
	Prom_energy.Add(data.Power(speed) / env.EnergyTicksPerHour)

	w.publish()
}

// publish pushes the current state to the gauges and any connected
// dashboards. Called after every tick and after every override.
func (w *turbinestation) publish() {
	snap := w.data.Snapshot()

	Prom_windspeed.Set(snap.WindSpeed)
	Prom_windDirection.Set(float64(snap.WindDirection))
	Prom_power.Set(snap.Power)
	Prom_rotationPeriod.Set(snap.RotationPeriodSec)
	for i, a := range snap.BladeAngles {
		Prom_bladeAngle.WithLabelValues(strconv.Itoa(i + 1)).Set(a)
	}

	w.hub.Broadcast(snap)
}

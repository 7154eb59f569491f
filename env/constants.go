package env

import "time"

const (
	// one telemetry sample per second, the same cadence the pulse
	// anemometer was read at
	TickInterval = time.Second

	// rolling window length for the dashboard charts
	WindowSize = 20

	// the simulated vane tops out at a strong breeze; the manual
	// slider can push past it
	MaxSimSpeedMps = 15.0
	SliderMaxMps   = 25.0
	SliderStepMps  = 0.1

	OverloadSpeedMps   = 20.0
	BladeAngleLimitDeg = 90.0

	// kW generated per m/s of wind
	PowerFactorKwPerMps = 1.5

	// blades 2 and 3 sit either side of blade 1
	BladeAngleOffsetDeg = 5.0

	// one tick counts as a minute of generation for the accumulator
	EnergyTicksPerHour = 60

	// rotor animation, seconds per revolution. Floored so the rotor
	// never spins impossibly fast on an override.
	RotationBasePeriodSec = 6.0
	RotationSpeedDivisor  = 3.0
	RotationMinPeriodSec  = 0.3

	HeartbeatInterval = time.Second * 30

	DefaultPort = 8080
)

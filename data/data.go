package data

import (
	"math"
	"sync"
	"time"

	"github.com/windlab/turbinedash/buffer"
	"github.com/windlab/turbinedash/env"
)

// holder and processor for all the data produced by the simulated turbine

const (
	PowerSeries = "power"
	WindSeries  = "windSpeed"
)

type TurbineData struct {
	windows map[string]*buffer.SampleWindow
	labels  *buffer.LabelWindow

	lock             sync.Mutex
	windSpeed        float64 // m/s
	windDirection    int     // degrees, [0,360)
	cumulativeEnergy float64 // kWh, only ever goes up
	ticks            int
}

// Snapshot is everything the dashboard needs for one redraw.
type Snapshot struct {
	TimeNow           string     `json:"time"`
	WindSpeed         float64    `json:"windSpeed_ms"`
	WindDirection     int        `json:"windDir_deg"`
	BladeAngles       [3]float64 `json:"bladeAngles_deg"`
	Power             float64    `json:"power_kW"`
	CumulativeEnergy  float64    `json:"energy_kWh"`
	RotationPeriodSec float64    `json:"rotationPeriod_s"`
	Overload          bool       `json:"overloadWarning"`
	BladeAlert        bool       `json:"bladeWarning"`
	PowerHistory      []float64  `json:"powerSeries"`
	WindHistory       []float64  `json:"windSeries"`
	Labels            []string   `json:"labels"`
	Ticks             int        `json:"ticks"`
}

func CreateTurbineData() *TurbineData {
	td := TurbineData{}

	td.windows = make(map[string]*buffer.SampleWindow)
	td.AddWindow(PowerSeries, buffer.NewSampleWindow(env.WindowSize))
	td.AddWindow(WindSeries, buffer.NewSampleWindow(env.WindowSize))
	td.labels = buffer.NewLabelWindow(env.WindowSize)

	return &td
}

func (td *TurbineData) AddWindow(name string, w *buffer.SampleWindow) {
	td.windows[name] = w
}

func (td *TurbineData) GetWindow(name string) *buffer.SampleWindow {
	return td.windows[name]
}

// BladeAngles derives the three pitch display angles from the wind speed.
func BladeAngles(speed float64) [3]float64 {
	base := 2 * speed
	return [3]float64{
		base,
		base + env.BladeAngleOffsetDeg,
		base - env.BladeAngleOffsetDeg,
	}
}

// Power is the instantaneous generation in kW.
func Power(speed float64) float64 {
	return speed * env.PowerFactorKwPerMps
}

// RotationPeriod is the rotor animation period in seconds per revolution.
func RotationPeriod(speed float64) float64 {
	p := env.RotationBasePeriodSec - speed/env.RotationSpeedDivisor
	return math.Max(env.RotationMinPeriodSec, p)
}

// OverloadWarning trips strictly above the threshold, so exactly
// 20.0 m/s is still fine. No hysteresis, a reading sat on the boundary
// will flicker.
func OverloadWarning(speed float64) bool {
	return speed > env.OverloadSpeedMps
}

// BladeWarning trips when any blade angle exceeds the limit.
func BladeWarning(angles [3]float64) bool {
	for _, a := range angles {
		if a > env.BladeAngleLimitDeg {
			return true
		}
	}
	return false
}

// RecordTick folds one telemetry reading into the state: history
// windows, label series and the energy accumulator. Only the monitor
// loop calls this.
func (td *TurbineData) RecordTick(speed float64, direction int) {
	td.lock.Lock()
	defer td.lock.Unlock()

	// all three windows move together so the charts never skew
	td.GetWindow(PowerSeries).AddItem(Power(speed))
	td.GetWindow(WindSeries).AddItem(speed)
	td.labels.AddItem("")

	td.windSpeed = speed
	td.windDirection = direction
	td.cumulativeEnergy += Power(speed) / env.EnergyTicksPerHour
	td.ticks++
}

// SetWindSpeed is the manual slider override. It replaces the current
// reading only; history and the energy accumulator wait for the next
// tick, which overwrites the speed again anyway.
func (td *TurbineData) SetWindSpeed(speed float64) float64 {
	if speed < 0 {
		speed = 0
	}
	if speed > env.SliderMaxMps {
		speed = env.SliderMaxMps
	}
	td.lock.Lock()
	defer td.lock.Unlock()
	td.windSpeed = speed
	return speed
}

func (td *TurbineData) GetWindSpeed() float64 {
	td.lock.Lock()
	defer td.lock.Unlock()
	return td.windSpeed
}

func (td *TurbineData) GetCumulativeEnergy() float64 {
	td.lock.Lock()
	defer td.lock.Unlock()
	return td.cumulativeEnergy
}

func (td *TurbineData) GetTicks() int {
	td.lock.Lock()
	defer td.lock.Unlock()
	return td.ticks
}

func (td *TurbineData) Snapshot() Snapshot {
	td.lock.Lock()
	defer td.lock.Unlock()

	speed := td.windSpeed
	direction := td.windDirection
	energy := td.cumulativeEnergy
	ticks := td.ticks

	angles := BladeAngles(speed)

	return Snapshot{
		TimeNow:           time.Now().Format(time.RFC822),
		WindSpeed:         RoundTo1(speed),
		WindDirection:     direction,
		BladeAngles:       angles,
		Power:             RoundTo1(Power(speed)),
		CumulativeEnergy:  energy,
		RotationPeriodSec: RotationPeriod(speed),
		Overload:          OverloadWarning(speed),
		BladeAlert:        BladeWarning(angles),
		PowerHistory:      td.GetWindow(PowerSeries).Values(),
		WindHistory:       td.GetWindow(WindSeries).Values(),
		Labels:            td.labels.Values(),
		Ticks:             ticks,
	}
}

// RoundTo1 rounds to one decimal place for display.
func RoundTo1(val float64) float64 {
	return math.Round(val*10) / 10
}

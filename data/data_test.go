package data

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windlab/turbinedash/env"
)

func TestBladeAngles(t *testing.T) {
	angles := BladeAngles(10)
	assert.Equal(t, [3]float64{20, 25, 15}, angles)

	angles = BladeAngles(0)
	assert.Equal(t, [3]float64{0, 5, -5}, angles)

	angles = BladeAngles(25)
	assert.Equal(t, [3]float64{50, 55, 45}, angles)
}

func TestPower(t *testing.T) {
	assert.Equal(t, 15.0, Power(10))
	assert.Equal(t, 0.0, Power(0))
	assert.Equal(t, 37.5, Power(25))
}

func TestRotationPeriod(t *testing.T) {
	// calm: slowest spin
	assert.Equal(t, 6.0, RotationPeriod(0))
	assert.Equal(t, 4.0, RotationPeriod(6))
	// floored once the wind is strong enough
	assert.Equal(t, env.RotationMinPeriodSec, RotationPeriod(18))
	assert.Equal(t, env.RotationMinPeriodSec, RotationPeriod(25))
}

func TestOverloadWarning(t *testing.T) {
	assert.False(t, OverloadWarning(10))
	// exactly on the threshold is still fine
	assert.False(t, OverloadWarning(20.0))
	assert.True(t, OverloadWarning(20.1))
	assert.True(t, OverloadWarning(25))
}

func TestBladeWarning(t *testing.T) {
	assert.False(t, BladeWarning([3]float64{20, 25, 15}))
	assert.False(t, BladeWarning([3]float64{85, 90, 80}))
	assert.True(t, BladeWarning([3]float64{85.1, 90.1, 80.1}))
	// a single blade over the limit is enough
	assert.True(t, BladeWarning([3]float64{0, 0, 91}))
	// no blade exceeds 90 until the speed passes 42.5
	assert.False(t, BladeWarning(BladeAngles(42.5)))
	assert.True(t, BladeWarning(BladeAngles(42.6)))
}

func TestRecordTickWindows(t *testing.T) {
	td := CreateTurbineData()

	for i := 0; i < 5; i++ {
		td.RecordTick(float64(i), i*10)
	}

	assert.Equal(t, 5, td.GetWindow(PowerSeries).Len())
	assert.Equal(t, 5, td.GetWindow(WindSeries).Len())
	assert.Equal(t, 5, td.GetTicks())

	snap := td.Snapshot()
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, snap.WindHistory)
	assert.Equal(t, []float64{0, 1.5, 3, 4.5, 6}, snap.PowerHistory)
	assert.Len(t, snap.Labels, 5)
}

func TestWindowsStayInLockstep(t *testing.T) {
	td := CreateTurbineData()

	// well past the window size
	for i := 0; i < env.WindowSize*3; i++ {
		td.RecordTick(float64(i), 0)
		snap := td.Snapshot()
		require.Equal(t, len(snap.PowerHistory), len(snap.WindHistory))
		require.Equal(t, len(snap.PowerHistory), len(snap.Labels))
		require.LessOrEqual(t, len(snap.PowerHistory), env.WindowSize)
	}

	// only the most recent WindowSize readings remain, in order
	snap := td.Snapshot()
	require.Len(t, snap.WindHistory, env.WindowSize)
	for i := 0; i < env.WindowSize; i++ {
		expect := float64(env.WindowSize*3 - env.WindowSize + i)
		assert.Equal(t, expect, snap.WindHistory[i])
		assert.Equal(t, expect*env.PowerFactorKwPerMps, snap.PowerHistory[i])
	}
}

func TestCumulativeEnergy(t *testing.T) {
	td := CreateTurbineData()

	assert.Equal(t, 0.0, td.GetCumulativeEnergy())

	td.RecordTick(10, 0)
	require.InDelta(t, 15.0/60, td.GetCumulativeEnergy(), 1e-9)

	before := td.GetCumulativeEnergy()
	td.RecordTick(7.3, 0)
	require.InDelta(t, before+(7.3*1.5)/60, td.GetCumulativeEnergy(), 1e-9)

	// a calm tick must not decrease it
	td.RecordTick(0, 0)
	assert.GreaterOrEqual(t, td.GetCumulativeEnergy(), before)
}

func TestSetWindSpeedClamps(t *testing.T) {
	td := CreateTurbineData()

	assert.Equal(t, 12.0, td.SetWindSpeed(12))
	assert.Equal(t, 12.0, td.GetWindSpeed())

	assert.Equal(t, env.SliderMaxMps, td.SetWindSpeed(99))
	assert.Equal(t, 0.0, td.SetWindSpeed(-3))
}

func TestOverrideDoesNotTouchHistory(t *testing.T) {
	td := CreateTurbineData()

	td.RecordTick(5, 90)
	energy := td.GetCumulativeEnergy()

	td.SetWindSpeed(22)

	snap := td.Snapshot()
	assert.Equal(t, 22.0, snap.WindSpeed)
	assert.True(t, snap.Overload)
	assert.Len(t, snap.WindHistory, 1)
	assert.Equal(t, energy, snap.CumulativeEnergy)
}

func TestSnapshotScenarios(t *testing.T) {
	cases := []struct {
		speed      float64
		angles     [3]float64
		power      float64
		overload   bool
		bladeAlert bool
	}{
		{speed: 10, angles: [3]float64{20, 25, 15}, power: 15.0},
		// slider max: overload trips but no blade angle is past 90 yet
		{speed: 25, angles: [3]float64{50, 55, 45}, power: 37.5, overload: true},
		{speed: 45, angles: [3]float64{90, 95, 85}, power: 67.5, overload: true, bladeAlert: true},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("speed_%v", tc.speed), func(t *testing.T) {
			td := CreateTurbineData()
			td.RecordTick(tc.speed, 180)

			snap := td.Snapshot()
			assert.Equal(t, tc.angles, snap.BladeAngles)
			assert.Equal(t, tc.power, snap.Power)
			assert.Equal(t, tc.overload, snap.Overload)
			assert.Equal(t, tc.bladeAlert, snap.BladeAlert)
			assert.Equal(t, 180, snap.WindDirection)
		})
	}
}

func TestRoundTo1(t *testing.T) {
	assert.Equal(t, 15.1, RoundTo1(15.14))
	assert.Equal(t, 7.3, RoundTo1(7.25))
	assert.Equal(t, 0.0, RoundTo1(0.04))
}

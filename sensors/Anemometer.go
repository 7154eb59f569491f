package sensors

import (
	"math/rand"
	"sync"

	"github.com/windlab/turbinedash/env"
)

// Anemometer draws synthetic wind readings: speed uniform over
// [0, MaxSimSpeedMps] at one decimal place, direction uniform over
// whole degrees [0,360). Seeded so test runs are repeatable.
type Anemometer struct {
	rng  *rand.Rand
	lock sync.Mutex
}

func NewAnemometer(seed int64) *Anemometer {
	a := Anemometer{}
	a.rng = rand.New(rand.NewSource(seed))
	return &a
}

func (a *Anemometer) GetSpeed() float64 {
	a.lock.Lock()
	defer a.lock.Unlock()
	// draw in tenths so the reading is exactly one decimal place
	return float64(a.rng.Intn(int(env.MaxSimSpeedMps*10)+1)) / 10
}

func (a *Anemometer) GetDirection() int {
	a.lock.Lock()
	defer a.lock.Unlock()
	return a.rng.Intn(360)
}

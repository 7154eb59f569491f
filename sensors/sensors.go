package sensors

/*
 * Sensors is responsible for producing the turbine telemetry readings.
 * There are no real instruments behind this dashboard - the anemometer
 * is a synthetic source standing in for the pulse counter and vane ADC.
 */

type Sensors struct {
	Anemometer *Anemometer
}

func InitSensors(seed int64) *Sensors {
	s := &Sensors{}
	s.Anemometer = NewAnemometer(seed)
	return s
}

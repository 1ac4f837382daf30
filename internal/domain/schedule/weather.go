package schedule

// Conditions carries the environmental inputs used to shift watering
// schedules. Values come from whatever weather source the caller wires in;
// the engine only cares about the numbers.
type Conditions struct {
	TemperatureC  float64
	Humidity      float64 // relative, 0..100
	Precipitation float64 // mm expected over the next day
}

// Comfort baselines: factors are centered at 1.0 around these values.
const (
	comfortTempC    = 21.0
	comfortHumidity = 50.0
)

// Factor composes the independent environmental multipliers into a single
// care adjustment factor. Each multiplier is centered at 1.0; the composite
// is their product. Values above 1.0 mean the plant dries out faster and the
// interval should shorten, below 1.0 the interval stretches.
//
// Whether the composite actually moves the schedule is decided by
// ApplyAdjustment's dead-band, not here.
func (c Conditions) Factor() float64 {
	return c.temperatureFactor() * c.humidityFactor() * c.precipitationFactor()
}

// temperatureFactor: +2% evaporation per degree above comfort, -1.5% per
// degree below, bounded to a sane range.
func (c Conditions) temperatureFactor() float64 {
	delta := c.TemperatureC - comfortTempC
	var f float64
	if delta >= 0 {
		f = 1 + 0.02*delta
	} else {
		f = 1 + 0.015*delta
	}
	return clampFactor(f)
}

// humidityFactor: dry air (below 50%) raises water demand, damp air lowers it.
func (c Conditions) humidityFactor() float64 {
	delta := comfortHumidity - c.Humidity
	return clampFactor(1 + 0.004*delta)
}

// precipitationFactor matters for outdoor plants: expected rain stretches
// the interval. 10mm halves the demand; more rain saturates at -60%.
func (c Conditions) precipitationFactor() float64 {
	if c.Precipitation <= 0 {
		return 1
	}
	f := 1 - 0.05*c.Precipitation
	if f < 0.4 {
		f = 0.4
	}
	return f
}

func clampFactor(f float64) float64 {
	switch {
	case f < 0.25:
		return 0.25
	case f > 4:
		return 4
	default:
		return f
	}
}

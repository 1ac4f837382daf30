package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConditionsFactor(t *testing.T) {
	tests := []struct {
		name  string
		cond  Conditions
		check func(t *testing.T, factor float64)
	}{
		{
			name: "comfort conditions stay inside the dead-band",
			cond: Conditions{TemperatureC: 21, Humidity: 50, Precipitation: 0},
			check: func(t *testing.T, f float64) {
				assert.InDelta(t, 1.0, f, DeadBand)
			},
		},
		{
			name: "heat wave raises demand",
			cond: Conditions{TemperatureC: 35, Humidity: 30, Precipitation: 0},
			check: func(t *testing.T, f float64) {
				assert.Greater(t, f, 1+DeadBand)
			},
		},
		{
			name: "cold damp spell lowers demand",
			cond: Conditions{TemperatureC: 8, Humidity: 85, Precipitation: 0},
			check: func(t *testing.T, f float64) {
				assert.Less(t, f, 1-DeadBand)
			},
		},
		{
			name: "heavy rain outweighs moderate heat",
			cond: Conditions{TemperatureC: 26, Humidity: 60, Precipitation: 12},
			check: func(t *testing.T, f float64) {
				assert.Less(t, f, 1.0)
			},
		},
		{
			name: "extreme input stays bounded",
			cond: Conditions{TemperatureC: 60, Humidity: 0, Precipitation: 0},
			check: func(t *testing.T, f float64) {
				assert.LessOrEqual(t, f, 4.0*4.0)
				assert.Greater(t, f, 0.0)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.cond.Factor())
		})
	}
}

func TestPrecipitationSaturates(t *testing.T) {
	drizzle := Conditions{TemperatureC: 21, Humidity: 50, Precipitation: 2}
	downpour := Conditions{TemperatureC: 21, Humidity: 50, Precipitation: 100}

	assert.Less(t, downpour.Factor(), drizzle.Factor())
	assert.GreaterOrEqual(t, downpour.Factor(), 0.4)
}

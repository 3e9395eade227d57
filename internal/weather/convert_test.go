package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCelsiusToFahrenheit(t *testing.T) {
	assert.InDelta(t, 32.0, CelsiusToFahrenheit(0), 1e-9)
	assert.InDelta(t, 212.0, CelsiusToFahrenheit(100), 1e-9)
	assert.InDelta(t, -40.0, CelsiusToFahrenheit(-40), 1e-9)
}

func TestConversionRoundTrip(t *testing.T) {
	for _, c := range []float64{-40, -17.8, 0, 0.5, 21.37, 36.6, 100} {
		assert.InDelta(t, c, FahrenheitToCelsius(CelsiusToFahrenheit(c)), 1e-9)
	}
}

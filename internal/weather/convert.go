package weather

// Temperature conversions are exact; rounding is a display concern so that
// repeated unit switches never compound error on the stored Celsius value.

func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

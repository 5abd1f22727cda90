package stats

// CToF converts a Celsius temperature to Fahrenheit.
func CToF(c float32) float32 {
	return c*1.8 + 32
}

package osm2net

// milesPerHourToMetersPerSecond m/s = mph * 1.60934 * 1000 / 3600
func milesPerHourToMetersPerSecond(milesPerHour float64) float64 {
	return milesPerHour * 1.60934 * 1000 / 3600
}

// kilometersPerHourToMetersPerSecond m/s = km/h / 3.6
func kilometersPerHourToMetersPerSecond(kilometersPerHour float64) float64 {
	return kilometersPerHour / 3.6
}

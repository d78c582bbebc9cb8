package entity

// WeatherForecast is one day of generated forecast.
type WeatherForecast struct {
	Date         Date   `json:"date"`
	TemperatureC int    `json:"temperatureC"`
	Summary      string `json:"summary"`
}

package model

// WeatherForecastRequest asks for Days days of forecast, starting tomorrow.
type WeatherForecastRequest struct {
	Days int `json:"days"`
}

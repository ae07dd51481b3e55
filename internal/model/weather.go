package model

// Weather is the closed set of daily weather categories that drive
// demand.
type Weather string

const (
	Sunny  Weather = "sunny"
	Cloudy Weather = "cloudy"
	Rainy  Weather = "rainy"
	Stormy Weather = "stormy"
	Cold   Weather = "cold"
)

// AllWeathers lists every valid Weather value.
var AllWeathers = []Weather{Sunny, Cloudy, Rainy, Stormy, Cold}

// Valid reports whether w is one of the known weather kinds.
func (w Weather) Valid() bool {
	switch w {
	case Sunny, Cloudy, Rainy, Stormy, Cold:
		return true
	}
	return false
}

package telemetry

// Sensor describes one telemetry source.
type Sensor struct {
	ID       string
	Location string
	Interval int
}

// Store persists sensor readings.
type Store interface {
	Append(id string, value float64) error
	Latest(id string) (float64, error)
}

func defaultSensor(id string) *Sensor {
	return &Sensor{ID: id, Interval: 60}
}

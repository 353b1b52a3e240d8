package telemetry

import "fmt"

// Recorder ingests readings and reports the latest value per sensor.
type Recorder struct {
	store Store
}

// NewRecorder creates a Recorder backed by the given store.
func NewRecorder(store Store) *Recorder {
	return &Recorder{store: store}
}

// Record appends one reading for a sensor.
func (r *Recorder) Record(id string, value float64) error {
	if err := r.store.Append(id, value); err != nil {
		return fmt.Errorf("record %s: %w", id, err)
	}
	return nil
}

// Latest returns the most recent reading for a sensor.
func (r *Recorder) Latest(id string) (float64, error) {
	value, err := r.store.Latest(id)
	if err != nil {
		return 0, fmt.Errorf("latest %s: %w", id, err)
	}
	return value, nil
}

package domain

import "context"

// Measurements are structured door dimensions extracted from an uploaded
// image by the vision model.
type Measurements struct {
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Confidence float64 `json:"confidence"`
	Notes      string  `json:"notes,omitempty"`
}

// MeasurementExtractor defines the interface for the external vision-model
// wrapper that pulls door measurements out of an uploaded image.
type MeasurementExtractor interface {
	ParseMeasurements(ctx context.Context, imageDataURL string) (*Measurements, error)
}

package models

import (
	"encoding/json"
	"fmt"
)

// Settings is the monitoring pipeline settings document, the unit of
// fetch/save against the backend. Mapping key sets are server-defined:
// the client toggles and adjusts values but never adds or removes keys.
type Settings struct {
	AbsenceThreshold    int                        `json:"absence_threshold"`    // seconds without a detected person before an absence alert
	SmartphoneThreshold int                        `json:"smartphone_threshold"` // seconds of continuous smartphone use before an alert
	MessageExtensions   map[string]int             `json:"message_extensions"`   // status label (e.g. "休憩中") -> extension seconds
	LandmarkSettings    map[string]Landmark        `json:"landmark_settings"`    // landmark key (e.g. "nose") -> tracking toggle
	DetectionObjects    map[string]DetectionObject `json:"detection_objects"`    // object class key (e.g. "person") -> detection tuning
}

// Landmark is a facial landmark tracking toggle. Name is display-only.
type Landmark struct {
	Enabled bool   `json:"enabled"`
	Name    string `json:"name"`
}

// DetectionObject holds the per-class detection tuning. Name is display-only.
// ConfidenceThreshold is a decimal fraction; range enforcement is the
// backend's job, the client only refuses negative input.
type DetectionObject struct {
	Enabled             bool    `json:"enabled"`
	Name                string  `json:"name"`
	ConfidenceThreshold float64 `json:"confidence_threshold"`
	AlertThreshold      int     `json:"alert_threshold"`
}

// settingsWire mirrors Settings with pointer fields so that missing
// required fields are distinguishable from zero values during decode.
type settingsWire struct {
	AbsenceThreshold    *int                       `json:"absence_threshold"`
	SmartphoneThreshold *int                       `json:"smartphone_threshold"`
	MessageExtensions   map[string]int             `json:"message_extensions"`
	LandmarkSettings    map[string]Landmark        `json:"landmark_settings"`
	DetectionObjects    map[string]DetectionObject `json:"detection_objects"`
}

// DecodeSettings deserializes a settings document from its wire form.
// Validation is structural only: unknown extra fields are ignored, missing
// required fields fail. A decode error never yields a partial document.
func DecodeSettings(data []byte) (Settings, error) {
	var wire settingsWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return Settings{}, fmt.Errorf("parsing settings document: %w", err)
	}

	for field, ok := range map[string]bool{
		"absence_threshold":    wire.AbsenceThreshold != nil,
		"smartphone_threshold": wire.SmartphoneThreshold != nil,
		"message_extensions":   wire.MessageExtensions != nil,
		"landmark_settings":    wire.LandmarkSettings != nil,
		"detection_objects":    wire.DetectionObjects != nil,
	} {
		if !ok {
			return Settings{}, fmt.Errorf("settings document missing required field %q", field)
		}
	}

	return Settings{
		AbsenceThreshold:    *wire.AbsenceThreshold,
		SmartphoneThreshold: *wire.SmartphoneThreshold,
		MessageExtensions:   wire.MessageExtensions,
		LandmarkSettings:    wire.LandmarkSettings,
		DetectionObjects:    wire.DetectionObjects,
	}, nil
}

// EncodeSettings serializes a settings document to its wire form. It is the
// structural inverse of DecodeSettings.
func EncodeSettings(s Settings) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding settings document: %w", err)
	}
	return data, nil
}

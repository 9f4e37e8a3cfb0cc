package models

import (
	"reflect"
	"strings"
	"testing"
)

func sampleSettings() Settings {
	return Settings{
		AbsenceThreshold:    5,
		SmartphoneThreshold: 3,
		MessageExtensions: map[string]int{
			"休憩中":  300,
			"会議中":  600,
			"離席許可": 900,
		},
		LandmarkSettings: map[string]Landmark{
			"nose":      {Enabled: true, Name: "鼻"},
			"left_eye":  {Enabled: false, Name: "左目"},
			"right_eye": {Enabled: true, Name: "右目"},
		},
		DetectionObjects: map[string]DetectionObject{
			"person":     {Enabled: true, Name: "人物", ConfidenceThreshold: 0.5, AlertThreshold: 10},
			"cell_phone": {Enabled: true, Name: "スマートフォン", ConfidenceThreshold: 0.7, AlertThreshold: 5},
		},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := sampleSettings()

	data, err := EncodeSettings(original)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	decoded, err := DecodeSettings(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if !reflect.DeepEqual(original, decoded) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", decoded, original)
	}
}

func TestDecodeSettings_MissingRequiredField(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing absence_threshold",
			body: `{"smartphone_threshold":3,"message_extensions":{},"landmark_settings":{},"detection_objects":{}}`,
		},
		{
			name: "missing smartphone_threshold",
			body: `{"absence_threshold":5,"message_extensions":{},"landmark_settings":{},"detection_objects":{}}`,
		},
		{
			name: "missing detection_objects",
			body: `{"absence_threshold":5,"smartphone_threshold":3,"message_extensions":{},"landmark_settings":{}}`,
		},
		{
			name: "empty object",
			body: `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSettings([]byte(tt.body))
			if err == nil {
				t.Fatal("expected decode error, got nil")
			}
			if !strings.Contains(err.Error(), "missing required field") {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestDecodeSettings_MalformedJSON(t *testing.T) {
	if _, err := DecodeSettings([]byte(`{"absence_threshold":`)); err == nil {
		t.Fatal("expected decode error for malformed JSON")
	}
}

func TestDecodeSettings_IgnoresUnknownFields(t *testing.T) {
	body := `{
		"absence_threshold": 5,
		"smartphone_threshold": 3,
		"message_extensions": {"休憩中": 300},
		"landmark_settings": {"nose": {"enabled": true, "name": "鼻"}},
		"detection_objects": {"person": {"enabled": true, "name": "人物", "confidence_threshold": 0.5, "alert_threshold": 10}},
		"schema_version": 4,
		"updated_by": "server"
	}`

	decoded, err := DecodeSettings([]byte(body))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.AbsenceThreshold != 5 || decoded.SmartphoneThreshold != 3 {
		t.Errorf("thresholds lost: %+v", decoded)
	}
	if decoded.MessageExtensions["休憩中"] != 300 {
		t.Errorf("message extension lost: %+v", decoded.MessageExtensions)
	}
}

func TestClone_Independence(t *testing.T) {
	original := sampleSettings()
	clone := original.Clone()

	clone.AbsenceThreshold = 99
	clone.MessageExtensions["休憩中"] = 1
	lm := clone.LandmarkSettings["nose"]
	lm.Enabled = false
	clone.LandmarkSettings["nose"] = lm
	obj := clone.DetectionObjects["person"]
	obj.ConfidenceThreshold = 0.9
	clone.DetectionObjects["person"] = obj

	if original.AbsenceThreshold != 5 {
		t.Errorf("clone mutation leaked into original threshold: %d", original.AbsenceThreshold)
	}
	if original.MessageExtensions["休憩中"] != 300 {
		t.Errorf("clone mutation leaked into original extensions: %v", original.MessageExtensions)
	}
	if !original.LandmarkSettings["nose"].Enabled {
		t.Error("clone mutation leaked into original landmarks")
	}
	if original.DetectionObjects["person"].ConfidenceThreshold != 0.5 {
		t.Error("clone mutation leaked into original detection objects")
	}
}

func TestSortedKeyAccessors(t *testing.T) {
	s := sampleSettings()

	landmarks := s.LandmarkKeys()
	want := []string{"left_eye", "nose", "right_eye"}
	if !reflect.DeepEqual(landmarks, want) {
		t.Errorf("LandmarkKeys() = %v, want %v", landmarks, want)
	}

	objects := s.ObjectKeys()
	if !reflect.DeepEqual(objects, []string{"cell_phone", "person"}) {
		t.Errorf("ObjectKeys() = %v", objects)
	}

	if got := len(s.ExtensionKeys()); got != 3 {
		t.Errorf("ExtensionKeys() length = %d, want 3", got)
	}
}

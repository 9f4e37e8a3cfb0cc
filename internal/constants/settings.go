package constants

const (
	// Wire field names of the settings document
	FieldAbsenceThreshold    = "absence_threshold"
	FieldSmartphoneThreshold = "smartphone_threshold"
	FieldMessageExtensions   = "message_extensions"
	FieldLandmarkSettings    = "landmark_settings"
	FieldDetectionObjects    = "detection_objects"

	// Default Settings Values (used by the dev stub server seed)
	DefaultAbsenceThresholdSec    = 5
	DefaultSmartphoneThresholdSec = 3
	DefaultConfidenceThreshold    = 0.5
	DefaultAlertThresholdSec      = 10
)

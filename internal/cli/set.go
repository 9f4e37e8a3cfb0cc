package cli

import (
	"context"
	"fmt"

	"watchtune/internal/constants"
	"watchtune/internal/models"
	"watchtune/internal/validation"
)

// SetCmd applies partial updates from flags. The full document is fetched
// first and saved whole afterwards; the backend knows no PATCH semantics.
// Mapping keys are server-defined, so referencing an unknown key is an
// error rather than an insert.
type SetCmd struct {
	AbsenceThreshold    *int `help:"Seconds without a detected person before an absence alert."`
	SmartphoneThreshold *int `help:"Seconds of continuous smartphone use before an alert."`

	Extension       map[string]int     `help:"Message extension seconds per status label (e.g. --extension 休憩中=300)." mapsep:","`
	EnableLandmark  []string           `help:"Landmark keys to enable."`
	DisableLandmark []string           `help:"Landmark keys to disable."`
	EnableObject    []string           `help:"Detection object keys to enable."`
	DisableObject   []string           `help:"Detection object keys to disable."`
	Confidence      map[string]float64 `help:"Confidence threshold per object key (e.g. --confidence person=0.5)." mapsep:","`
	AlertThreshold  map[string]int     `help:"Alert seconds per object key (e.g. --alert-threshold person=10)." mapsep:","`
}

func (c *SetCmd) Run(ctx *Context) error {
	reqCtx, cancel := context.WithTimeout(context.Background(), constants.RequestTimeout)
	defer cancel()

	settings, err := ctx.Client.FetchSettings(reqCtx)
	if err != nil {
		ctx.Sink.NotifyError(constants.ContextFetch, constants.MsgLoadFailed)
		return fmt.Errorf("failed to get settings: %w", err)
	}

	updated, err := c.apply(&settings)
	if err != nil {
		return err
	}
	if !updated {
		fmt.Println("No changes specified. Use 'show' to view settings or flags to update them.")
		return nil
	}

	saveCtx, cancel := context.WithTimeout(context.Background(), constants.RequestTimeout)
	defer cancel()

	if err := ctx.Client.SaveSettings(saveCtx, settings); err != nil {
		ctx.Sink.NotifyError(constants.ContextSave, constants.MsgSaveFailed)
		return fmt.Errorf("failed to save settings: %w", err)
	}
	ctx.Sink.NotifySuccess(constants.ContextSave, constants.MsgSaveOK)
	return nil
}

func (c *SetCmd) apply(settings *models.Settings) (bool, error) {
	updated := false

	if c.AbsenceThreshold != nil {
		if *c.AbsenceThreshold <= 0 {
			return false, fmt.Errorf("absence threshold must be a positive number of seconds")
		}
		settings.AbsenceThreshold = *c.AbsenceThreshold
		updated = true
	}
	if c.SmartphoneThreshold != nil {
		if *c.SmartphoneThreshold <= 0 {
			return false, fmt.Errorf("smartphone threshold must be a positive number of seconds")
		}
		settings.SmartphoneThreshold = *c.SmartphoneThreshold
		updated = true
	}

	for k, v := range c.Extension {
		if _, ok := settings.MessageExtensions[k]; !ok {
			return false, fmt.Errorf("unknown status label: %s", k)
		}
		if v <= 0 {
			return false, fmt.Errorf("extension for %s must be a positive number of seconds", k)
		}
		settings.MessageExtensions[k] = v
		updated = true
	}

	for _, k := range c.EnableLandmark {
		if err := setLandmark(settings, k, true); err != nil {
			return false, err
		}
		updated = true
	}
	for _, k := range c.DisableLandmark {
		if err := setLandmark(settings, k, false); err != nil {
			return false, err
		}
		updated = true
	}

	for _, k := range c.EnableObject {
		if err := setObjectEnabled(settings, k, true); err != nil {
			return false, err
		}
		updated = true
	}
	for _, k := range c.DisableObject {
		if err := setObjectEnabled(settings, k, false); err != nil {
			return false, err
		}
		updated = true
	}

	for k, v := range c.Confidence {
		obj, ok := settings.DetectionObjects[k]
		if !ok {
			return false, fmt.Errorf("unknown detection object: %s", k)
		}
		if _, err := validation.ParseConfidence(fmt.Sprintf("%v", v)); err != nil {
			return false, fmt.Errorf("confidence for %s: %v", k, err)
		}
		obj.ConfidenceThreshold = v
		settings.DetectionObjects[k] = obj
		updated = true
	}

	for k, v := range c.AlertThreshold {
		obj, ok := settings.DetectionObjects[k]
		if !ok {
			return false, fmt.Errorf("unknown detection object: %s", k)
		}
		if v <= 0 {
			return false, fmt.Errorf("alert threshold for %s must be a positive number of seconds", k)
		}
		obj.AlertThreshold = v
		settings.DetectionObjects[k] = obj
		updated = true
	}

	return updated, nil
}

func setLandmark(settings *models.Settings, key string, enabled bool) error {
	lm, ok := settings.LandmarkSettings[key]
	if !ok {
		return fmt.Errorf("unknown landmark: %s", key)
	}
	lm.Enabled = enabled
	settings.LandmarkSettings[key] = lm
	return nil
}

func setObjectEnabled(settings *models.Settings, key string, enabled bool) error {
	obj, ok := settings.DetectionObjects[key]
	if !ok {
		return fmt.Errorf("unknown detection object: %s", key)
	}
	obj.Enabled = enabled
	settings.DetectionObjects[key] = obj
	return nil
}

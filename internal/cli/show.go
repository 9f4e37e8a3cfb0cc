package cli

import (
	"context"
	"fmt"

	"watchtune/internal/constants"
)

type ShowCmd struct{}

func (c *ShowCmd) Run(ctx *Context) error {
	reqCtx, cancel := context.WithTimeout(context.Background(), constants.RequestTimeout)
	defer cancel()

	settings, err := ctx.Client.FetchSettings(reqCtx)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	fmt.Println("Detection Thresholds:")
	fmt.Printf("  Absence Threshold:     %d sec\n", settings.AbsenceThreshold)
	fmt.Printf("  Smartphone Threshold:  %d sec\n", settings.SmartphoneThreshold)

	fmt.Println("\nMessage Extensions:")
	for _, k := range settings.ExtensionKeys() {
		fmt.Printf("  %-20s %d sec\n", k+":", settings.MessageExtensions[k])
	}

	fmt.Println("\nLandmark Tracking:")
	for _, k := range settings.LandmarkKeys() {
		lm := settings.LandmarkSettings[k]
		fmt.Printf("  %-20s %-10s (%s)\n", k+":", onOff(lm.Enabled), lm.Name)
	}

	fmt.Println("\nDetection Objects:")
	for _, k := range settings.ObjectKeys() {
		obj := settings.DetectionObjects[k]
		fmt.Printf("  %-20s %-10s conf %.2f, alert %d sec (%s)\n",
			k+":", onOff(obj.Enabled), obj.ConfidenceThreshold, obj.AlertThreshold, obj.Name)
	}

	return nil
}

func onOff(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}

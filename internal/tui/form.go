package tui

import (
	"github.com/charmbracelet/huh"

	"watchtune/internal/validation"
)

// NewThresholdsForm creates the bulk edit form for the detection thresholds
func NewThresholdsForm(fm *SettingsFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Absence threshold (seconds)").
				Description("Time with no detected person before an absence alert fires").
				Value(&fm.AbsenceThreshold).
				Validate(func(s string) error {
					_, err := validation.ParseSeconds(s)
					return err
				}),
			huh.NewInput().
				Title("Smartphone threshold (seconds)").
				Description("Time of continuous smartphone use before an alert fires").
				Value(&fm.SmartphoneThreshold).
				Validate(func(s string) error {
					_, err := validation.ParseSeconds(s)
					return err
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

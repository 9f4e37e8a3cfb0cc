package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"watchtune/internal/constants"
	"watchtune/internal/models"
)

type settingsLoadedMsg struct {
	settings models.Settings
}

type settingsLoadFailedMsg struct {
	err error
}

type settingsSavedMsg struct {
	saved models.Settings
}

type settingsSaveFailedMsg struct {
	err error
}

func fetchSettingsCmd(client SettingsClient) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), constants.RequestTimeout)
		defer cancel()

		settings, err := client.FetchSettings(ctx)
		if err != nil {
			return settingsLoadFailedMsg{err: err}
		}
		return settingsLoadedMsg{settings: settings}
	}
}

// saveSettingsCmd captures its own deep copy so edits made while the save
// is in flight cannot alter the transmitted document.
func saveSettingsCmd(client SettingsClient, settings models.Settings) tea.Cmd {
	snapshot := settings.Clone()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), constants.RequestTimeout)
		defer cancel()

		if err := client.SaveSettings(ctx, snapshot); err != nil {
			return settingsSaveFailedMsg{err: err}
		}
		return settingsSavedMsg{saved: snapshot}
	}
}

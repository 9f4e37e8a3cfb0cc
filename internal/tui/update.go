package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"watchtune/internal/constants"
	"watchtune/internal/logger"
	"watchtune/internal/validation"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// A response arriving after teardown must not touch the sink.
	if m.quitting {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if m.state == constants.StateLoading || m.state == constants.StateSaving {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case settingsLoadedMsg:
		m.settings = msg.settings
		m.baseline = msg.settings.Clone()
		m.state = constants.StateReady
		m.section = constants.SectionThresholds
		m.cursor = 0
		m.status = ""
		m.statusErr = false
		return m, nil

	case settingsLoadFailedMsg:
		// The working copy stays zero-valued; there is nothing meaningful
		// to edit until a retry succeeds.
		m.state = constants.StateLoadError
		m.reportError(constants.ContextFetch, constants.MsgLoadFailed, msg.err)
		return m, nil

	case settingsSavedMsg:
		if m.state != constants.StateSaving {
			return m, nil
		}
		m.baseline = msg.saved
		m.state = constants.StateReady
		m.reportSuccess(constants.ContextSave, constants.MsgSaveOK)
		return m, nil

	case settingsSaveFailedMsg:
		if m.state != constants.StateSaving {
			return m, nil
		}
		// Edits are preserved; the operator may retry the save as-is.
		m.state = constants.StateReady
		m.reportError(constants.ContextSave, constants.MsgSaveFailed, msg.err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	switch m.state {
	case constants.StateEditThresholds:
		if m.form != nil {
			return m.updateThresholdsForm(msg)
		}
	case constants.StateEditField:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) && m.state != constants.StateEditField && m.state != constants.StateEditThresholds {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state {
	case constants.StateLoading, constants.StateSaving:
		// Read-only while a request is in flight. A save requested during
		// StateSaving is dropped, not queued.
		return m, nil

	case constants.StateLoadError:
		if key.Matches(msg, m.keys.Retry) {
			m.state = constants.StateLoading
			return m, tea.Batch(m.spinner.Tick, fetchSettingsCmd(m.client))
		}
		return m, nil

	case constants.StateEditField:
		return m.handleFieldEditKey(msg)

	case constants.StateEditThresholds:
		if msg.Type == tea.KeyEsc {
			m.state = constants.StateReady
			m.form = nil
			return m, nil
		}
		return m.updateThresholdsForm(msg)
	}

	// StateReady
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.NextSection):
		m.section = (m.section + 1) % constants.SectionCount
		m.cursor = 0
	case key.Matches(msg, m.keys.PrevSection):
		m.section = (m.section + constants.SectionCount - 1) % constants.SectionCount
		m.cursor = 0
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.sectionRows()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		m.toggleCurrent()
	case key.Matches(msg, m.keys.Edit):
		return m.startFieldEdit()
	case key.Matches(msg, m.keys.Confidence):
		if m.section == constants.SectionObjects {
			return m.startObjectEdit(fieldConfidence)
		}
	case key.Matches(msg, m.keys.Alert):
		if m.section == constants.SectionObjects {
			return m.startObjectEdit(fieldAlert)
		}
	case key.Matches(msg, m.keys.BulkEdit):
		if m.section == constants.SectionThresholds {
			return m.openThresholdsForm()
		}
	case key.Matches(msg, m.keys.Save):
		m.state = constants.StateSaving
		logger.Info("Saving settings document")
		return m, tea.Batch(m.spinner.Tick, saveSettingsCmd(m.client, m.settings))
	}
	return m, nil
}

// handleFieldEditKey routes keystrokes into the edit buffer. The buffer
// shows exactly what was typed; coercion success commits into the working
// copy immediately, coercion failure leaves the committed value untouched.
func (m Model) handleFieldEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.state = constants.StateReady
		m.editField = fieldRef{}
		m.editErr = ""
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.commitEdit()
	return m, cmd
}

func (m *Model) commitEdit() {
	raw := m.input.Value()

	switch m.editField.kind {
	case fieldAbsence:
		if v, err := validation.ParseSeconds(raw); err == nil {
			m.settings.AbsenceThreshold = v
			m.editErr = ""
		} else {
			m.editErr = err.Error()
		}
	case fieldSmartphone:
		if v, err := validation.ParseSeconds(raw); err == nil {
			m.settings.SmartphoneThreshold = v
			m.editErr = ""
		} else {
			m.editErr = err.Error()
		}
	case fieldExtension:
		if v, err := validation.ParseSeconds(raw); err == nil {
			m.settings.MessageExtensions[m.editField.key] = v
			m.editErr = ""
		} else {
			m.editErr = err.Error()
		}
	case fieldConfidence:
		if v, err := validation.ParseConfidence(raw); err == nil {
			obj := m.settings.DetectionObjects[m.editField.key]
			obj.ConfidenceThreshold = v
			m.settings.DetectionObjects[m.editField.key] = obj
			m.editErr = ""
		} else {
			m.editErr = err.Error()
		}
	case fieldAlert:
		if v, err := validation.ParseSeconds(raw); err == nil {
			obj := m.settings.DetectionObjects[m.editField.key]
			obj.AlertThreshold = v
			m.settings.DetectionObjects[m.editField.key] = obj
			m.editErr = ""
		} else {
			m.editErr = err.Error()
		}
	}
}

// toggleCurrent flips the enabled flag under the cursor synchronously.
// Only values change; the key sets stay exactly as the server defined them.
func (m *Model) toggleCurrent() {
	switch m.section {
	case constants.SectionLandmarks:
		keys := m.settings.LandmarkKeys()
		if m.cursor < len(keys) {
			k := keys[m.cursor]
			lm := m.settings.LandmarkSettings[k]
			lm.Enabled = !lm.Enabled
			m.settings.LandmarkSettings[k] = lm
		}
	case constants.SectionObjects:
		keys := m.settings.ObjectKeys()
		if m.cursor < len(keys) {
			k := keys[m.cursor]
			obj := m.settings.DetectionObjects[k]
			obj.Enabled = !obj.Enabled
			m.settings.DetectionObjects[k] = obj
		}
	}
}

func (m Model) startFieldEdit() (tea.Model, tea.Cmd) {
	switch m.section {
	case constants.SectionThresholds:
		if m.cursor == 0 {
			return m.beginEdit(fieldRef{kind: fieldAbsence}, strconv.Itoa(m.settings.AbsenceThreshold))
		}
		return m.beginEdit(fieldRef{kind: fieldSmartphone}, strconv.Itoa(m.settings.SmartphoneThreshold))
	case constants.SectionExtensions:
		keys := m.settings.ExtensionKeys()
		if m.cursor < len(keys) {
			k := keys[m.cursor]
			return m.beginEdit(fieldRef{kind: fieldExtension, key: k}, strconv.Itoa(m.settings.MessageExtensions[k]))
		}
	case constants.SectionObjects:
		return m.startObjectEdit(fieldConfidence)
	}
	return m, nil
}

func (m Model) startObjectEdit(kind fieldKind) (tea.Model, tea.Cmd) {
	keys := m.settings.ObjectKeys()
	if m.cursor >= len(keys) {
		return m, nil
	}
	k := keys[m.cursor]
	obj := m.settings.DetectionObjects[k]
	if kind == fieldConfidence {
		return m.beginEdit(fieldRef{kind: fieldConfidence, key: k}, strconv.FormatFloat(obj.ConfidenceThreshold, 'f', -1, 64))
	}
	return m.beginEdit(fieldRef{kind: fieldAlert, key: k}, strconv.Itoa(obj.AlertThreshold))
}

func (m Model) beginEdit(ref fieldRef, current string) (tea.Model, tea.Cmd) {
	m.editField = ref
	m.editErr = ""
	m.input.SetValue(current)
	m.input.CursorEnd()
	m.state = constants.StateEditField
	return m, m.input.Focus()
}

func (m Model) openThresholdsForm() (tea.Model, tea.Cmd) {
	m.settingsForm = &SettingsFormModel{
		AbsenceThreshold:    strconv.Itoa(m.settings.AbsenceThreshold),
		SmartphoneThreshold: strconv.Itoa(m.settings.SmartphoneThreshold),
	}
	m.form = NewThresholdsForm(m.settingsForm)
	m.state = constants.StateEditThresholds
	return m, m.form.Init()
}

func (m Model) updateThresholdsForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		if v, err := strconv.Atoi(m.settingsForm.AbsenceThreshold); err == nil {
			m.settings.AbsenceThreshold = v
		}
		if v, err := strconv.Atoi(m.settingsForm.SmartphoneThreshold); err == nil {
			m.settings.SmartphoneThreshold = v
		}
		m.state = constants.StateReady
		m.form = nil
	case huh.StateAborted:
		m.state = constants.StateReady
		m.form = nil
	}
	return m, tea.Batch(cmds...)
}

func (m Model) sectionRows() int {
	switch m.section {
	case constants.SectionThresholds:
		return 2
	case constants.SectionExtensions:
		return len(m.settings.MessageExtensions)
	case constants.SectionLandmarks:
		return len(m.settings.LandmarkSettings)
	case constants.SectionObjects:
		return len(m.settings.DetectionObjects)
	}
	return 0
}

func (m *Model) reportError(ctx constants.NotifyContext, message string, err error) {
	logger.Error("Settings operation failed", "context", ctx, "error", err)
	m.status = message
	m.statusErr = true
	m.sink.NotifyError(ctx, message)
}

func (m *Model) reportSuccess(ctx constants.NotifyContext, message string) {
	m.status = message
	m.statusErr = false
	m.sink.NotifySuccess(ctx, message)
}

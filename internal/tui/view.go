package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"watchtune/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case constants.StateLoading:
		content = fmt.Sprintf("%s 設定を読み込み中...", m.spinner.View())
	case constants.StateLoadError:
		content = lipgloss.JoinVertical(
			lipgloss.Left,
			dangerStyle.Render(fmt.Sprintf("[%s] %s", constants.LabelError, constants.MsgLoadFailed)),
			"",
			hintStyle.Render("データなし — 'r' で再読み込み、'q' で終了"),
		)
	case constants.StateEditThresholds:
		if m.form != nil {
			content = m.form.View()
		}
	default:
		content = m.viewSettings()
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatus(),
		m.help.View(m.keys),
	)
	return docStyle.Render(ui)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Thresholds", "Extensions", "Landmarks", "Objects"}
	for i, title := range tabTitles {
		if m.section == constants.Section(i) && m.Loaded() {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewSettings() string {
	var rows []string

	title := "監視設定"
	if m.dirty() {
		title += " *"
	}
	rows = append(rows, titleStyle.Render(title))

	switch m.section {
	case constants.SectionThresholds:
		rows = append(rows,
			m.viewNumericRow(0, "不在検知 (秒):", fieldAbsence, "", m.settings.AbsenceThreshold),
			m.viewNumericRow(1, "スマホ検知 (秒):", fieldSmartphone, "", m.settings.SmartphoneThreshold),
			"",
			hintStyle.Render("enter: 編集  e: フォーム編集  s: 保存"),
		)
	case constants.SectionExtensions:
		for i, k := range m.settings.ExtensionKeys() {
			rows = append(rows, m.viewNumericRow(i, k+" (秒):", fieldExtension, k, m.settings.MessageExtensions[k]))
		}
		rows = append(rows, "", hintStyle.Render("enter: 編集  s: 保存"))
	case constants.SectionLandmarks:
		for i, k := range m.settings.LandmarkKeys() {
			lm := m.settings.LandmarkSettings[k]
			rows = append(rows, m.viewToggleRow(i, lm.Name, lm.Enabled, ""))
		}
		rows = append(rows, "", hintStyle.Render("space: 切り替え  s: 保存"))
	case constants.SectionObjects:
		for i, k := range m.settings.ObjectKeys() {
			obj := m.settings.DetectionObjects[k]
			detail := fmt.Sprintf("conf %s  alert %s",
				m.editableValue(fieldConfidence, k, fmt.Sprintf("%.2f", obj.ConfidenceThreshold)),
				m.editableValue(fieldAlert, k, fmt.Sprintf("%d秒", obj.AlertThreshold)))
			rows = append(rows, m.viewToggleRow(i, obj.Name, obj.Enabled, detail))
		}
		rows = append(rows, "", hintStyle.Render("space: 切り替え  c: 信頼度  a: 通知秒数  s: 保存"))
	}

	if m.state == constants.StateSaving {
		rows = append(rows, "", fmt.Sprintf("%s 保存中...", m.spinner.View()))
	}
	if m.state == constants.StateEditField && m.editErr != "" {
		rows = append(rows, "", dangerStyle.Render(m.editErr))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// viewNumericRow renders one numeric control. While the row is being
// edited, the raw edit buffer is shown in place of the committed value.
func (m Model) viewNumericRow(idx int, label string, kind fieldKind, key string, committed int) string {
	value := valueStyle.Render(fmt.Sprintf("%d", committed))
	if m.state == constants.StateEditField && m.editField.kind == kind && m.editField.key == key {
		value = m.input.View()
	}
	return fmt.Sprintf("%s%s %s", m.viewCursor(idx), labelStyle.Render(label), value)
}

func (m Model) viewToggleRow(idx int, name string, enabled bool, detail string) string {
	mark := disabledStyle.Render("[ ]")
	label := disabledStyle.Render(name)
	if enabled {
		mark = successStyle.Render("[x]")
		label = valueStyle.Render(name)
	}
	row := fmt.Sprintf("%s%s %s", m.viewCursor(idx), mark, label)
	if detail != "" {
		row += "  " + detail
	}
	return row
}

// editableValue shows the raw edit buffer when the referenced object field
// is being edited, the committed value otherwise.
func (m Model) editableValue(kind fieldKind, key string, committed string) string {
	if m.state == constants.StateEditField && m.editField.kind == kind && m.editField.key == key {
		return m.input.View()
	}
	return committed
}

func (m Model) viewCursor(idx int) string {
	if idx == m.cursor && m.Loaded() {
		return cursorStyle.Render("> ")
	}
	return "  "
}

func (m Model) viewStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return dangerStyle.Render(fmt.Sprintf("[%s] %s", constants.LabelError, m.status))
	}
	return successStyle.Render(m.status)
}

package tui

import (
	"context"
	"reflect"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"watchtune/internal/constants"
	"watchtune/internal/models"
	"watchtune/internal/notify"
)

// SettingsClient is the slice of the remote client the controller needs.
type SettingsClient interface {
	FetchSettings(ctx context.Context) (models.Settings, error)
	SaveSettings(ctx context.Context, settings models.Settings) error
}

// fieldKind identifies which numeric control an edit buffer is bound to.
type fieldKind int

const (
	fieldNone fieldKind = iota
	fieldAbsence
	fieldSmartphone
	fieldExtension
	fieldConfidence
	fieldAlert
)

// fieldRef addresses a single numeric control; key is the mapping key for
// extension/object fields and empty for the top-level thresholds.
type fieldRef struct {
	kind fieldKind
	key  string
}

// SettingsFormModel buffers the threshold group for the bulk edit form.
// Numeric fields are held as strings and committed with strconv on
// completion, so a half-typed value never reaches the working copy.
type SettingsFormModel struct {
	AbsenceThreshold    string
	SmartphoneThreshold string
}

// Model owns the mutable working copy of the settings document and drives
// the load/edit/save cycle. All mutation rules live here; the document
// itself stays inert.
type Model struct {
	client SettingsClient
	sink   notify.Sink

	state    constants.SessionState
	settings models.Settings // working copy, mutated field by field
	baseline models.Settings // last fetched or saved document

	section constants.Section
	cursor  int

	input     textinput.Model
	editField fieldRef
	editErr   string

	form         *huh.Form
	settingsForm *SettingsFormModel

	spinner   spinner.Model
	keys      KeyMap
	help      help.Model
	status    string
	statusErr bool
	quitting  bool
	width     int
	height    int
}

// NewModel creates the settings console model. The fetch itself is issued
// by Init, once per mount.
func NewModel(client SettingsClient, sink notify.Sink) Model {
	if sink == nil {
		sink = notify.NopSink{}
	}

	in := textinput.New()
	in.CharLimit = 12
	in.Width = 14

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		client:  client,
		sink:    sink,
		state:   constants.StateLoading,
		input:   in,
		spinner: sp,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchSettingsCmd(m.client))
}

// Settings exposes the current working copy for read-only inspection.
func (m Model) Settings() models.Settings {
	return m.settings
}

// State exposes the controller state for read-only inspection.
func (m Model) State() constants.SessionState {
	return m.state
}

// Loaded reports whether a fetched document backs the working copy. Until
// it does, the view renders "no data" instead of zero values.
func (m Model) Loaded() bool {
	return m.state != constants.StateLoading && m.state != constants.StateLoadError
}

func (m Model) dirty() bool {
	return !reflect.DeepEqual(m.settings, m.baseline)
}

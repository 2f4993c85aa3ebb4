package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bitcoin-connect/internal/logger"
	"github.com/MKhiriev/go-bitcoin-connect/internal/state"
	"github.com/MKhiriev/go-bitcoin-connect/internal/validators"
	"github.com/MKhiriev/go-bitcoin-connect/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// rootModel is the modal router:
// 1) renders the page for the store's current route
// 2) handles global quit and version hotkeys
// 3) turns key presses into store operations
// The store is the single source of truth; the model keeps only view state.
type rootModel struct {
	ctx       context.Context
	store     Store
	log       *logger.Logger
	buildInfo models.BuildInfo
	validator validators.Validator

	connectors connectorListModel
	form       *connectorFormModel
	spinner    spinner.Model

	balance *models.Balance
	status  string

	showBuildInfo bool
}

func newRootModel(ctx context.Context, store Store, types []models.ConnectorType, buildInfo models.BuildInfo, log *logger.Logger) rootModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return rootModel{
		ctx:        ctx,
		store:      store,
		log:        log,
		buildInfo:  buildInfo,
		validator:  validators.NewConnectorConfigValidator(),
		connectors: connectorListModel{types: types},
		spinner:    s,
	}
}

func (m rootModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateChangedMsg:
		if !m.store.Get().Connected {
			m.balance = nil
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case connectDoneMsg:
		switch {
		case msg.err == nil:
			m.form = nil
			m.status = "Connected"
			return m, m.cmdBalance()
		case errors.Is(msg.err, state.ErrConnectSuperseded):
			// a newer attempt reports its own outcome
		default:
			m.status = ""
		}
		return m, nil
	case disconnectDoneMsg:
		m.balance = nil
		m.status = "Disconnected"
		if msg.err != nil {
			m.status = "Disconnected, but the saved wallet could not be forgotten"
		}
		return m, nil
	case balanceMsg:
		if msg.err != nil {
			m.balance = nil
			return m, nil
		}
		b := msg.balance
		m.balance = &b
		return m, nil
	case copiedMsg:
		m.status = "Connection config copied to clipboard"
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.form != nil {
		form, cmd := m.form.Update(msg)
		m.form = &form
		return m, cmd
	}
	return m, nil
}

func (m rootModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.version) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	st := m.store.Get()

	if m.errorVisible(st) {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.store.SetError("")
		}
		return m, nil
	}

	switch st.Route {
	case models.RouteHelp:
		if key.Matches(msg, keys.esc, keys.help, keys.quit) {
			m.store.PopRoute()
		}
		return m, nil
	case models.RouteNWC, models.RouteLNbits, models.RouteLNC:
		return m.handleFormKey(msg, st)
	}

	return m.handleStartKey(msg, st)
}

func (m rootModel) handleStartKey(msg tea.KeyMsg, st state.State) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.help):
		m.store.PushRoute(models.RouteHelp)
		return m, nil
	case key.Matches(msg, keys.version):
		m.showBuildInfo = true
		return m, nil
	}

	if st.Connecting {
		return m, nil
	}

	if st.Connected {
		switch {
		case key.Matches(msg, keys.disconnect):
			return m, m.cmdDisconnect()
		case key.Matches(msg, keys.balance):
			return m, m.cmdBalance()
		case key.Matches(msg, keys.copy):
			return m, cmdCopyConfig(st.ConnectorConfig)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		m.connectors.up()
	case key.Matches(msg, keys.down):
		m.connectors.down()
	case key.Matches(msg, keys.enter):
		t, ok := m.connectors.selected()
		if !ok {
			return m, nil
		}
		m.status = ""
		if route, needsForm := formRoute(t); needsForm {
			form := newConnectorForm(t)
			m.form = &form
			m.store.PushRoute(route)
			return m, textinput.Blink
		}
		return m, m.cmdConnect(models.ConnectorConfig{ConnectorType: t, ConnectorName: connectorLabel(t)})
	}
	return m, nil
}

func (m rootModel) handleFormKey(msg tea.KeyMsg, st state.State) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) || m.form == nil {
		m.form = nil
		m.store.PopRoute()
		return m, nil
	}
	if st.Connecting {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.tab):
		form := m.form.next()
		m.form = &form
		return m, nil
	case key.Matches(msg, keys.backtab):
		form := m.form.prev()
		m.form = &form
		return m, nil
	case key.Matches(msg, keys.enter):
		cfg, err := m.form.config(m.ctx, m.validator)
		form := *m.form
		form.err = err
		m.form = &form
		if err != nil {
			return m, nil
		}
		return m, m.cmdConnect(cfg)
	}

	form, cmd := m.form.Update(msg)
	m.form = &form
	return m, cmd
}

func (m rootModel) errorVisible(st state.State) bool {
	return st.Error != "" && !st.Connecting
}

func (m rootModel) cmdConnect(cfg models.ConnectorConfig) tea.Cmd {
	return func() tea.Msg {
		return connectDoneMsg{err: m.store.Connect(m.ctx, cfg)}
	}
}

func (m rootModel) cmdDisconnect() tea.Cmd {
	return func() tea.Msg {
		return disconnectDoneMsg{err: m.store.Disconnect(m.ctx)}
	}
}

func (m rootModel) cmdBalance() tea.Cmd {
	return func() tea.Msg {
		balance, err := m.store.Balance(m.ctx)
		return balanceMsg{balance: balance, err: err}
	}
}

func cmdCopyConfig(cfg *models.ConnectorConfig) tea.Cmd {
	return func() tea.Msg {
		if cfg == nil {
			return copiedMsg{err: errors.New("no active connection")}
		}
		data, err := json.Marshal(cfg)
		if err != nil {
			return copiedMsg{err: err}
		}
		return copiedMsg{err: writeClipboard(string(data))}
	}
}

func (m rootModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	st := m.store.Get()

	var page string
	switch st.Route {
	case models.RouteHelp:
		page = renderHelp()
	case models.RouteNWC, models.RouteLNbits, models.RouteLNC:
		body := ""
		if m.form != nil {
			body = m.form.View()
		}
		if st.Connecting {
			body += "\n\n" + m.spinner.View() + " Connecting..."
		}
		page = renderPage(m.title(st), body, "enter: connect │ tab: next field │ esc: back")
	default:
		page = renderPage(m.title(st), m.startView(st), m.startHotKeys(st))
	}

	if m.errorVisible(st) {
		page += "\n" + renderErrorOverlay(st)
	}
	return page
}

func (m rootModel) title(st state.State) string {
	name := st.BitcoinConnectConfig.AppName
	if name == "" {
		name = "Bitcoin Connect"
	}
	return strings.ToUpper(name)
}

func (m rootModel) startView(st state.State) string {
	var b strings.Builder

	switch st.Status() {
	case models.StatusConnecting:
		b.WriteString(m.spinner.View())
		b.WriteString(" Connecting...")
	case models.StatusConnected:
		b.WriteString(connectedStyle.Render("Connected to " + st.ConnectorName))
		b.WriteString("\n")
		if st.Info != nil && st.Info.Node.Alias != "" {
			b.WriteString("\nNode: " + fitText(st.Info.Node.Alias, 40))
		}
		if st.BitcoinConnectConfig.BalanceVisible() && st.SupportsGetBalance {
			b.WriteString("\nBalance: ")
			if m.balance != nil {
				b.WriteString(fmt.Sprintf("%d %s", m.balance.Amount, m.balance.Currency))
			} else {
				b.WriteString("…")
			}
		}
		if st.Currency != "" {
			b.WriteString("\nCurrency: " + st.Currency)
		}
	default:
		b.WriteString(m.connectors.View())
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render(m.status))
	}
	return b.String()
}

func (m rootModel) startHotKeys(st state.State) string {
	switch {
	case st.Connecting:
		return "?: help │ q: quit"
	case st.Connected:
		return "d: disconnect │ b: refresh balance │ c: copy config │ ?: help │ v: version │ q: quit"
	default:
		return "enter: connect │ ↑/↓: navigate │ ?: help │ v: version │ q: quit"
	}
}

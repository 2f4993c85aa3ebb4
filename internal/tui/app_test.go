package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-bitcoin-connect/internal/connector"
	"github.com/MKhiriev/go-bitcoin-connect/internal/logger"
	"github.com/MKhiriev/go-bitcoin-connect/internal/state"
	"github.com/MKhiriev/go-bitcoin-connect/internal/store"
	"github.com/MKhiriev/go-bitcoin-connect/internal/validators"
	"github.com/MKhiriev/go-bitcoin-connect/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) (rootModel, *state.Store) {
	t.Helper()
	registry := connector.NewRegistry()
	require.NoError(t, registry.Register(models.ConnectorTypeDev, connector.DevFactory(0)))
	require.NoError(t, registry.Register(models.ConnectorTypeNWC, connector.DevFactory(0)))

	st, err := state.New(store.NewMemoryKeyValueStorage(), registry, logger.Nop())
	require.NoError(t, err)

	info := models.NewBuildInfo("1.2.3", "2026-10-19", "abc123")
	return newRootModel(context.Background(), st, registry.Types(), info, logger.Nop()), st
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(m rootModel, k string) (rootModel, tea.Cmd) {
	next, cmd := m.Update(keyMsg(k))
	return next.(rootModel), cmd
}

func apply(m rootModel, msg tea.Msg) (rootModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(rootModel), cmd
}

func TestNew_NilStore(t *testing.T) {
	_, err := New(nil, nil, models.BuildInfo{}, nil)
	assert.ErrorIs(t, err, ErrNilStore)
}

func TestRootModel_HelpRoute(t *testing.T) {
	m, st := newTestModel(t)

	m, _ = press(m, "?")
	assert.Equal(t, models.RouteHelp, st.Get().Route)
	assert.Contains(t, m.View(), "HELP")

	m, _ = press(m, "esc")
	assert.Equal(t, models.RouteStart, st.Get().Route)
	assert.Contains(t, m.View(), "Choose a wallet")
}

func TestRootModel_ConnectDev(t *testing.T) {
	m, st := newTestModel(t)

	m, cmd := press(m, "enter")
	require.NotNil(t, cmd)
	msg := cmd()
	done, ok := msg.(connectDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)
	assert.True(t, st.Get().Connected)

	m, cmd = apply(m, msg)
	assert.Equal(t, "Connected", m.status)
	require.NotNil(t, cmd)

	m, _ = apply(m, cmd())
	require.NotNil(t, m.balance)
	assert.Equal(t, int64(21_000), m.balance.Amount)

	view := m.View()
	assert.Contains(t, view, "Connected to Dev wallet")
	assert.Contains(t, view, "21000 sats")
}

func TestRootModel_NWCForm(t *testing.T) {
	m, st := newTestModel(t)

	m, _ = press(m, "down")
	m, _ = press(m, "enter")
	assert.Equal(t, models.RouteNWC, st.Get().Route)
	require.NotNil(t, m.form)

	m, cmd := press(m, "enter")
	assert.Nil(t, cmd)
	assert.ErrorIs(t, m.form.err, errFormIncomplete)

	m, _ = apply(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("https://example.com")})
	m, cmd = press(m, "enter")
	assert.Nil(t, cmd)
	assert.ErrorIs(t, m.form.err, validators.ErrInvalidNWCURL)
	m.form.inputs[0].SetValue("")

	url := "nostr+walletconnect://b889ff5b?relay=wss%3A%2F%2Frelay.example.com&secret=abc"
	m, _ = apply(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(url)})

	m, cmd = press(m, "enter")
	require.NotNil(t, cmd)
	m, _ = apply(m, cmd())

	got := st.Get()
	require.True(t, got.Connected)
	require.NotNil(t, got.ConnectorConfig)
	assert.Equal(t, url, got.ConnectorConfig.NWCURL)
	assert.Equal(t, models.RouteStart, got.Route)
	assert.Nil(t, m.form)
}

func TestRootModel_FormEscGoesBack(t *testing.T) {
	m, st := newTestModel(t)

	m, _ = press(m, "down")
	m, _ = press(m, "enter")
	m, _ = press(m, "esc")

	assert.Equal(t, models.RouteStart, st.Get().Route)
	assert.Nil(t, m.form)
}

func TestRootModel_Disconnect(t *testing.T) {
	m, st := newTestModel(t)
	require.NoError(t, st.Connect(context.Background(), models.ConnectorConfig{ConnectorType: models.ConnectorTypeDev, ConnectorName: "Dev wallet"}))

	m, cmd := press(m, "d")
	require.NotNil(t, cmd)
	m, _ = apply(m, cmd())

	assert.False(t, st.Get().Connected)
	assert.Equal(t, "Disconnected", m.status)
}

func TestRootModel_ErrorOverlay(t *testing.T) {
	m, st := newTestModel(t)
	st.SetError("invoice expired")

	assert.Contains(t, m.View(), "invoice expired")

	// keys other than enter/esc are swallowed by the overlay
	m, _ = press(m, "?")
	assert.Equal(t, models.RouteStart, st.Get().Route)

	m, _ = press(m, "enter")
	assert.Empty(t, st.Get().Error)
	assert.NotContains(t, m.View(), "invoice expired")
}

func TestRootModel_CopyConfig(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	m, st := newTestModel(t)
	require.NoError(t, st.Connect(context.Background(), models.ConnectorConfig{ConnectorType: models.ConnectorTypeDev, ConnectorName: "Dev wallet"}))

	m, cmd := press(m, "c")
	require.NotNil(t, cmd)
	m, _ = apply(m, cmd())

	assert.Contains(t, copied, `"connectorType":"dev"`)
	assert.Equal(t, "Connection config copied to clipboard", m.status)
}

func TestRootModel_BuildInfo(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(m, "v")
	view := m.View()
	assert.Contains(t, view, "1.2.3")
	assert.Contains(t, view, "abc123")

	m, _ = press(m, "esc")
	assert.False(t, m.showBuildInfo)
}

func TestRootModel_Title(t *testing.T) {
	m, st := newTestModel(t)
	require.NoError(t, st.SetBitcoinConnectConfig(models.BitcoinConnectConfig{AppName: "Coffee Shop"}))

	assert.Contains(t, m.View(), "COFFEE SHOP")
}

func TestFormRoute(t *testing.T) {
	tests := []struct {
		connectorType models.ConnectorType
		route         models.Route
		ok            bool
	}{
		{models.ConnectorTypeNWCAlby, models.RouteNWC, true},
		{models.ConnectorTypeNWCMutiny, models.RouteNWC, true},
		{models.ConnectorTypeLNbits, models.RouteLNbits, true},
		{models.ConnectorTypeLNC, models.RouteLNC, true},
		{models.ConnectorTypeExtension, "", false},
		{models.ConnectorTypeDev, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.connectorType.String(), func(t *testing.T) {
			route, ok := formRoute(tt.connectorType)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.route, route)
		})
	}
}

func TestConnectorForm_LNbits(t *testing.T) {
	form := newConnectorForm(models.ConnectorTypeLNbits)
	require.Len(t, form.inputs, 2)

	form.inputs[0].SetValue(" https://legend.lnbits.com ")
	form.inputs[1].SetValue("admin-key")

	v := validators.NewConnectorConfigValidator()
	cfg, err := form.config(context.Background(), v)
	require.NoError(t, err)
	assert.Equal(t, models.ConnectorTypeLNbits, cfg.ConnectorType)
	assert.Equal(t, "LNbits", cfg.ConnectorName)
	assert.Equal(t, "https://legend.lnbits.com", cfg.LNbitsInstanceURL)
	assert.Equal(t, "admin-key", cfg.LNbitsAdminKey)

	form.inputs[0].SetValue("legend.lnbits.com")
	_, err = form.config(context.Background(), v)
	assert.ErrorIs(t, err, validators.ErrInvalidLNbitsURL)

	form = form.next()
	assert.Equal(t, 1, form.focus)
	form = form.next()
	assert.Equal(t, 0, form.focus)
	form = form.prev()
	assert.Equal(t, 1, form.focus)
}

func TestHumanizeError(t *testing.T) {
	st := state.State{Error: "unknown connector type: \"bogus\"", ErrorKind: models.ErrorKindUnknownConnectorType}
	assert.Contains(t, humanizeError(st), "not available")
	assert.Contains(t, humanizeError(st), "bogus")

	st = state.State{Error: "context deadline exceeded", ErrorKind: models.ErrorKindCanceled}
	assert.Equal(t, "The connection attempt timed out or was canceled.", humanizeError(st))

	st = state.State{Error: "external", ErrorKind: models.ErrorKindExternal}
	assert.Equal(t, "external", humanizeError(st))
}

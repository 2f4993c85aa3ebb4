package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-bitcoin-connect/internal/validators"
	"github.com/MKhiriev/go-bitcoin-connect/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var errFormIncomplete = errors.New("all fields are required")

type formField struct {
	label  string
	secret bool
	apply  func(cfg *models.ConnectorConfig, value string)
}

func formFields(t models.ConnectorType) []formField {
	switch t {
	case models.ConnectorTypeLNbits:
		return []formField{
			{label: "Instance URL", apply: func(cfg *models.ConnectorConfig, v string) { cfg.LNbitsInstanceURL = v }},
			{label: "Admin key", secret: true, apply: func(cfg *models.ConnectorConfig, v string) { cfg.LNbitsAdminKey = v }},
		}
	case models.ConnectorTypeLNC:
		return []formField{
			{label: "Pairing phrase", secret: true, apply: func(cfg *models.ConnectorConfig, v string) { cfg.LNCPairingPhrase = v }},
		}
	default:
		return []formField{
			{label: "NWC URL", secret: true, apply: func(cfg *models.ConnectorConfig, v string) { cfg.NWCURL = v }},
		}
	}
}

// connectorFormModel collects the credentials of one connector type.
type connectorFormModel struct {
	connectorType models.ConnectorType
	fields        []formField
	inputs        []textinput.Model
	focus         int
	err           error
}

func newConnectorForm(t models.ConnectorType) connectorFormModel {
	fields := formFields(t)
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
		inputs[i].Placeholder = f.label
		if f.secret {
			inputs[i].EchoMode = textinput.EchoPassword
		}
	}
	inputs[0].Focus()

	return connectorFormModel{connectorType: t, fields: fields, inputs: inputs}
}

func (m *connectorFormModel) setFocus(i int) {
	n := len(m.inputs)
	m.inputs[m.focus].Blur()
	m.focus = ((i % n) + n) % n
	m.inputs[m.focus].Focus()
}

func (m connectorFormModel) next() connectorFormModel {
	m.setFocus(m.focus + 1)
	return m
}

func (m connectorFormModel) prev() connectorFormModel {
	m.setFocus(m.focus - 1)
	return m
}

func (m connectorFormModel) Update(msg tea.Msg) (connectorFormModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// config builds the connector config from the inputs and runs it through v.
func (m connectorFormModel) config(ctx context.Context, v validators.Validator) (models.ConnectorConfig, error) {
	cfg := models.ConnectorConfig{
		ConnectorType: m.connectorType,
		ConnectorName: connectorLabel(m.connectorType),
	}
	for i, f := range m.fields {
		value := strings.TrimSpace(m.inputs[i].Value())
		if value == "" {
			return models.ConnectorConfig{}, errFormIncomplete
		}
		f.apply(&cfg, value)
	}
	if err := v.Validate(ctx, cfg); err != nil {
		return models.ConnectorConfig{}, err
	}
	return cfg, nil
}

func (m connectorFormModel) View() string {
	var b strings.Builder
	b.WriteString("Connect " + connectorLabel(m.connectorType) + "\n\n")
	for i, f := range m.fields {
		b.WriteString(f.label + ":\n")
		b.WriteString("[" + m.inputs[i].View() + "]\n")
	}
	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render(m.err.Error()) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

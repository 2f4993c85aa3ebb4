package tui

import (
	"strings"

	"github.com/MKhiriev/go-bitcoin-connect/models"
)

var connectorLabels = map[models.ConnectorType]string{
	models.ConnectorTypeExtension: "Browser extension",
	models.ConnectorTypeNWCAlby:   "Alby",
	models.ConnectorTypeNWC:       "Nostr Wallet Connect",
	models.ConnectorTypeNWCMutiny: "Mutiny",
	models.ConnectorTypeLNbits:    "LNbits",
	models.ConnectorTypeLNC:       "Lightning Node Connect",
	models.ConnectorTypeDev:       "Dev wallet",
}

func connectorLabel(t models.ConnectorType) string {
	if label, ok := connectorLabels[t]; ok {
		return label
	}
	return t.String()
}

// formRoute returns the route of the form collecting the credentials of t.
// Connectors without credentials connect straight from the list.
func formRoute(t models.ConnectorType) (models.Route, bool) {
	switch t {
	case models.ConnectorTypeNWCAlby, models.ConnectorTypeNWC, models.ConnectorTypeNWCMutiny:
		return models.RouteNWC, true
	case models.ConnectorTypeLNbits:
		return models.RouteLNbits, true
	case models.ConnectorTypeLNC:
		return models.RouteLNC, true
	default:
		return "", false
	}
}

type connectorListModel struct {
	types []models.ConnectorType
	idx   int
}

func (m *connectorListModel) up() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *connectorListModel) down() {
	if m.idx < len(m.types)-1 {
		m.idx++
	}
}

func (m connectorListModel) selected() (models.ConnectorType, bool) {
	if m.idx < 0 || m.idx >= len(m.types) {
		return "", false
	}
	return m.types[m.idx], true
}

func (m connectorListModel) View() string {
	if len(m.types) == 0 {
		return "No wallet connectors are registered."
	}

	var b strings.Builder
	b.WriteString("Choose a wallet to connect:\n\n")
	for i, t := range m.types {
		cursor := "  "
		if i == m.idx {
			cursor = cursorStyle.Render("> ")
		}
		b.WriteString(cursor)
		b.WriteString(connectorLabel(t))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

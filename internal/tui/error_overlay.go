package tui

import (
	"github.com/MKhiriev/go-bitcoin-connect/internal/state"
	"github.com/MKhiriev/go-bitcoin-connect/models"
)

// renderErrorOverlay draws the connection error box. Errors raised by the
// connect flow get a retry hint; external ones only close.
func renderErrorOverlay(st state.State) string {
	hint := "enter / esc: close"
	if st.ErrorKind != models.ErrorKindExternal {
		hint = "enter / esc: close, then pick a wallet to retry"
	}
	content := errorStyle.Render("Connection error") + "\n\n" +
		humanizeError(st) + "\n\n" + hintStyle.Render(hint)
	return overlayStyle.Render(content)
}

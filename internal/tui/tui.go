package tui

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-bitcoin-connect/internal/logger"
	"github.com/MKhiriev/go-bitcoin-connect/internal/state"
	"github.com/MKhiriev/go-bitcoin-connect/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI renders the wallet connection modal in the terminal.
type TUI struct {
	store     Store
	types     []models.ConnectorType
	buildInfo models.BuildInfo
	log       *logger.Logger

	mu      sync.Mutex
	program *tea.Program
}

// New creates a TUI offering the given connector types.
func New(store Store, types []models.ConnectorType, buildInfo models.BuildInfo, log *logger.Logger) (*TUI, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{store: store, types: types, buildInfo: buildInfo, log: log.GetChildLogger("tui")}, nil
}

// Run shows the modal and blocks until the user quits or ctx is done.
// Store calls made from the modal log through the TUI's logger.
func (t *TUI) Run(ctx context.Context) error {
	ctx = t.log.WithContext(ctx)
	program := tea.NewProgram(
		newRootModel(ctx, t.store, t.types, t.buildInfo, t.log),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	t.mu.Lock()
	t.program = program
	t.mu.Unlock()
	defer func() {
		t.mu.Lock()
		t.program = nil
		t.mu.Unlock()
	}()

	unsubscribe := t.store.Subscribe(func(state.State, state.State) {
		t.send(stateChangedMsg{})
	})
	defer unsubscribe()

	t.store.SetModalOpen(true)
	defer t.store.SetModalOpen(false)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// OnBalance forwards a balance refresh result to the running modal. It
// matches workers.BalanceSink.
func (t *TUI) OnBalance(balance models.Balance, err error) {
	t.send(balanceMsg{balance: balance, err: err})
}

// send never blocks: it may be called from a store listener while the
// program is inside Update.
func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		go program.Send(msg)
	}
}

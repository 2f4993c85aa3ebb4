package connector

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bitcoin-connect/models"
)

// InfoStatus is the outcome of a best-effort info request.
type InfoStatus int

const (
	// InfoFetched means Info holds the provider metadata.
	InfoFetched InfoStatus = iota
	// InfoUnsupported means the provider does not implement InfoProvider.
	InfoUnsupported
	// InfoFailed means the request failed; Err wraps ErrInfoFetch.
	InfoFailed
)

func (s InfoStatus) String() string {
	switch s {
	case InfoFetched:
		return "fetched"
	case InfoUnsupported:
		return "unsupported"
	case InfoFailed:
		return "failed"
	default:
		return fmt.Sprintf("InfoStatus(%d)", int(s))
	}
}

// InfoResult carries the outcome of FetchInfo. A failure is data here, not a
// returned error, because it never aborts a connection.
type InfoResult struct {
	Status InfoStatus
	Info   *models.WalletInfo
	Err    error
}

// FetchInfo asks provider for its metadata when it supports it.
func FetchInfo(ctx context.Context, provider Provider) InfoResult {
	infoProvider, ok := provider.(InfoProvider)
	if !ok {
		return InfoResult{Status: InfoUnsupported}
	}

	info, err := infoProvider.GetInfo(ctx)
	if err != nil {
		return InfoResult{Status: InfoFailed, Err: fmt.Errorf("%w: %w", ErrInfoFetch, err)}
	}

	return InfoResult{Status: InfoFetched, Info: &info}
}

// SupportsGetBalance reports whether the balance can be shown: the info
// must advertise getBalance and the provider must implement BalanceProvider.
func SupportsGetBalance(info *models.WalletInfo, provider Provider) bool {
	if !info.SupportsMethod(models.MethodGetBalance) {
		return false
	}
	_, ok := provider.(BalanceProvider)
	return ok
}

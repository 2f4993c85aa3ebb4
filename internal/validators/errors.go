package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyConnectorType  = errors.New("connector type is required")
	ErrInvalidNWCURL       = errors.New("invalid nostr wallet connect url")
	ErrInvalidLNbitsURL    = errors.New("invalid lnbits instance url")
	ErrEmptyLNbitsAdminKey = errors.New("lnbits admin key is required")
	ErrEmptyPairingPhrase  = errors.New("lnc pairing phrase is required")
)

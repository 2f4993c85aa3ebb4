package validators

import (
	"context"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-bitcoin-connect/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldConnectorType targets the connector discriminator.
	FieldConnectorType = "connector_type"

	// FieldNWCURL targets the Nostr Wallet Connect URL of nwc.* connectors.
	FieldNWCURL = "nwc_url"

	// FieldLNbitsInstanceURL targets the base URL of an LNbits instance.
	FieldLNbitsInstanceURL = "lnbits_instance_url"

	// FieldLNbitsAdminKey targets the LNbits admin key.
	FieldLNbitsAdminKey = "lnbits_admin_key"

	// FieldLNCPairingPhrase targets the Lightning Node Connect pairing phrase.
	FieldLNCPairingPhrase = "lnc_pairing_phrase"
)

// nwcSchemes are the URL schemes wallets hand out for NWC pairing.
var nwcSchemes = []string{"nostr+walletconnect", "nostrwalletconnect"}

// ConnectorConfigValidator implements Validator for models.ConnectorConfig.
// Without explicit fields it checks the credentials the connector type needs.
type ConnectorConfigValidator struct {
}

func NewConnectorConfigValidator() Validator {
	return &ConnectorConfigValidator{}
}

// Validate accepts models.ConnectorConfig and *models.ConnectorConfig.
// Returns ErrUnsupportedType for anything else.
func (v *ConnectorConfigValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ConnectorConfig:
		return v.validateConnectorConfig(ctx, value, fields...)
	case *models.ConnectorConfig:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateConnectorConfig(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func defaultFields(t models.ConnectorType) []string {
	switch {
	case strings.HasPrefix(t.String(), "nwc."):
		return []string{FieldConnectorType, FieldNWCURL}
	case t == models.ConnectorTypeLNbits:
		return []string{FieldConnectorType, FieldLNbitsInstanceURL, FieldLNbitsAdminKey}
	case t == models.ConnectorTypeLNC:
		return []string{FieldConnectorType, FieldLNCPairingPhrase}
	default:
		return []string{FieldConnectorType}
	}
}

func (v *ConnectorConfigValidator) validateConnectorConfig(_ context.Context, cfg models.ConnectorConfig, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultFields(cfg.ConnectorType)
	}

	for _, f := range fields {
		switch f {
		case FieldConnectorType:
			if strings.TrimSpace(cfg.ConnectorType.String()) == "" {
				return ErrEmptyConnectorType
			}
		case FieldNWCURL:
			if !isValidNWCURL(cfg.NWCURL) {
				return ErrInvalidNWCURL
			}
		case FieldLNbitsInstanceURL:
			if !isValidHTTPURL(cfg.LNbitsInstanceURL) {
				return ErrInvalidLNbitsURL
			}
		case FieldLNbitsAdminKey:
			if strings.TrimSpace(cfg.LNbitsAdminKey) == "" {
				return ErrEmptyLNbitsAdminKey
			}
		case FieldLNCPairingPhrase:
			if strings.TrimSpace(cfg.LNCPairingPhrase) == "" {
				return ErrEmptyPairingPhrase
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isValidNWCURL requires the wallet pubkey as host plus relay and secret
// query parameters.
func isValidNWCURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return false
	}

	schemeOK := false
	for _, s := range nwcSchemes {
		if strings.EqualFold(u.Scheme, s) {
			schemeOK = true
			break
		}
	}
	if !schemeOK {
		return false
	}

	q := u.Query()
	return q.Get("relay") != "" && q.Get("secret") != ""
}

func isValidHTTPURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

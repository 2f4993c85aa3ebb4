// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-bitcoin-connect/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validNWC = "nostr+walletconnect://b889ff5b1513b641e2a139f661a661364979c5beee91842f8f0ef42ab558e9d4?relay=wss%3A%2F%2Frelay.example.com&secret=71a8c14c"

func TestNewConnectorConfigValidator(t *testing.T) {
	v := NewConnectorConfigValidator()
	require.NotNil(t, v)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewConnectorConfigValidator()
	ctx := context.Background()
	cfg := models.ConnectorConfig{ConnectorType: models.ConnectorTypeDev}

	assert.NoError(t, v.Validate(ctx, cfg))
	assert.NoError(t, v.Validate(ctx, &cfg))
	assert.ErrorIs(t, v.Validate(ctx, (*models.ConnectorConfig)(nil)), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, "nwc.alby"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, models.BitcoinConnectConfig{}), ErrUnsupportedType)
}

func TestValidate_ConnectorConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     models.ConnectorConfig
		wantErr error
	}{
		{
			name:    "empty type",
			cfg:     models.ConnectorConfig{},
			wantErr: ErrEmptyConnectorType,
		},
		{
			name: "extension needs nothing else",
			cfg:  models.ConnectorConfig{ConnectorType: models.ConnectorTypeExtension},
		},
		{
			name: "nwc valid",
			cfg:  models.ConnectorConfig{ConnectorType: models.ConnectorTypeNWCAlby, NWCURL: validNWC},
		},
		{
			name: "nwc legacy scheme",
			cfg: models.ConnectorConfig{
				ConnectorType: models.ConnectorTypeNWC,
				NWCURL:        "nostrwalletconnect://abc?relay=wss://r.example&secret=s",
			},
		},
		{
			name:    "nwc missing secret",
			cfg:     models.ConnectorConfig{ConnectorType: models.ConnectorTypeNWC, NWCURL: "nostr+walletconnect://abc?relay=wss://r.example"},
			wantErr: ErrInvalidNWCURL,
		},
		{
			name:    "nwc missing relay",
			cfg:     models.ConnectorConfig{ConnectorType: models.ConnectorTypeNWCMutiny, NWCURL: "nostr+walletconnect://abc?secret=s"},
			wantErr: ErrInvalidNWCURL,
		},
		{
			name:    "nwc wrong scheme",
			cfg:     models.ConnectorConfig{ConnectorType: models.ConnectorTypeNWC, NWCURL: "https://abc?relay=r&secret=s"},
			wantErr: ErrInvalidNWCURL,
		},
		{
			name: "lnbits valid",
			cfg: models.ConnectorConfig{
				ConnectorType:     models.ConnectorTypeLNbits,
				LNbitsInstanceURL: "https://legend.lnbits.com",
				LNbitsAdminKey:    "admin",
			},
		},
		{
			name: "lnbits bad url",
			cfg: models.ConnectorConfig{
				ConnectorType:     models.ConnectorTypeLNbits,
				LNbitsInstanceURL: "legend.lnbits.com",
				LNbitsAdminKey:    "admin",
			},
			wantErr: ErrInvalidLNbitsURL,
		},
		{
			name: "lnbits missing key",
			cfg: models.ConnectorConfig{
				ConnectorType:     models.ConnectorTypeLNbits,
				LNbitsInstanceURL: "http://localhost:5000",
				LNbitsAdminKey:    "  ",
			},
			wantErr: ErrEmptyLNbitsAdminKey,
		},
		{
			name: "lnc valid",
			cfg:  models.ConnectorConfig{ConnectorType: models.ConnectorTypeLNC, LNCPairingPhrase: "artefact morning piano"},
		},
		{
			name:    "lnc missing phrase",
			cfg:     models.ConnectorConfig{ConnectorType: models.ConnectorTypeLNC},
			wantErr: ErrEmptyPairingPhrase,
		},
	}

	v := NewConnectorConfigValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.cfg)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_ExplicitFields(t *testing.T) {
	v := NewConnectorConfigValidator()
	ctx := context.Background()

	// only the listed fields are checked
	cfg := models.ConnectorConfig{ConnectorType: models.ConnectorTypeLNbits, LNbitsAdminKey: "admin"}
	assert.NoError(t, v.Validate(ctx, cfg, FieldConnectorType, FieldLNbitsAdminKey))
	assert.ErrorIs(t, v.Validate(ctx, cfg, FieldLNbitsInstanceURL), ErrInvalidLNbitsURL)

	assert.ErrorIs(t, v.Validate(ctx, cfg, "nope"), ErrUnknownField)
}

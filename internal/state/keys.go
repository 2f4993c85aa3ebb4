package state

// Storage keys written by the Store.
const (
	// KeyConfig holds the JSON encoded models.ConnectorConfig of the last
	// successful connection.
	KeyConfig = "bc:config"
	// KeyCurrency holds the last selected currency.
	KeyCurrency = "bc:currency"
)

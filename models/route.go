package models

// Route identifies a screen inside the widget modal.
type Route string

// Known routes. RouteStart is also the fallback whenever the history is
// exhausted.
const (
	RouteStart     Route = "/start"
	RouteHelp      Route = "/help"
	RouteNewWallet Route = "/new-wallet"
	RouteNWC       Route = "/nwc"
	RouteLNbits    Route = "/lnbits"
	RouteLNC       Route = "/lnc"
)

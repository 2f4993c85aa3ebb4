package tui

const helpText = `Bitcoin Connect links this application to your lightning wallet.

Pick a wallet from the list. Some wallets need credentials:
  Nostr Wallet Connect  a nostr+walletconnect:// URL from your wallet
  LNbits                the instance URL and an admin key
  LNC                   a pairing phrase from Lightning Terminal

The last successful connection is remembered and restored on start.
Disconnecting forgets it.`

func renderHelp() string {
	return renderPage("HELP", helpText, "esc: back")
}

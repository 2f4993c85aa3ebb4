package models

// ErrorKind classifies the last connection failure. The human readable
// message stays in the state's Error field; the kind is an additive,
// machine-readable companion to it.
type ErrorKind string

const (
	ErrorKindNone                 ErrorKind = ""
	ErrorKindUnknownConnectorType ErrorKind = "unknown_connector_type"
	ErrorKindConnectorInit        ErrorKind = "connector_init"
	ErrorKindEnable               ErrorKind = "enable"
	ErrorKindCanceled             ErrorKind = "canceled"
	ErrorKindExternal             ErrorKind = "external"
)

package bridge

// Host Messages

// InboundMsg carries one decoded host message into the event loop
type InboundMsg struct {
	Message Inbound
}

// InboundErrorMsg reports a message the transport could not decode
type InboundErrorMsg struct {
	Err error
}

// Bridge Notifications

// MonitorsUpdatedMsg tells the panel to rebuild from the current monitor list
type MonitorsUpdatedMsg struct {
	Version uint64
}

// SendFailedMsg reports an outbound message the transport rejected
type SendFailedMsg struct {
	Kind Kind
	Err  error
}

// localizationRetryMsg fires once, after the startup delay
type localizationRetryMsg struct{}

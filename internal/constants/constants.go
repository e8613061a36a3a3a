package constants

const (
	DefaultPropertyEventsExchange = "estify_property_events"
	PropertyEventsExchangeType    = "direct"

	TraceIDHeader = "X-Trace-ID"
	// TraceIDAMQPHeader carries the request trace id on published events.
	TraceIDAMQPHeader = "x-trace-id"

	APIPrefix = "/api/v1"
)

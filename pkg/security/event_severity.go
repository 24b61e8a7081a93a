package security

import "go.uber.org/zap/zapcore"

// Severity represents the severity level of a security event.
// It is derived from EventType, never supplied by callers.
type Severity string

const (
	SeverityINFO   Severity = "INFO"
	SeverityMEDIUM Severity = "MEDIUM"
	SeverityWARN   Severity = "WARN"
	SeverityHIGH   Severity = "HIGH"
)

// EventSeverityMap defines the hard-coded severity for each event type
var EventSeverityMap = map[EventType]Severity{
	EventLoginSuccess:   SeverityINFO,
	EventUserRegistered: SeverityINFO,

	EventUserUpdated: SeverityMEDIUM,

	EventLoginFailed:   SeverityWARN,
	EventTokenRejected: SeverityWARN,

	EventUserDeleted: SeverityHIGH,
}

// GetSeverity returns the severity for an event type.
// Unmapped event types default to MEDIUM.
func GetSeverity(eventType EventType) Severity {
	if severity, ok := EventSeverityMap[eventType]; ok {
		return severity
	}
	return SeverityMEDIUM
}

// IsHighOrAbove returns true if the event is HIGH severity
func IsHighOrAbove(eventType EventType) bool {
	return GetSeverity(eventType) == SeverityHIGH
}

// zapLevel maps a severity onto the log level the event is written at.
func (s Severity) zapLevel() zapcore.Level {
	switch s {
	case SeverityWARN, SeverityHIGH:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}

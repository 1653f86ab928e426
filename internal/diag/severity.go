package diag

// Severity defines the importance of a reported message.
type Severity uint8

const (
	// SevInfo is for informational messages.
	SevInfo Severity = iota
	// SevWarning is for warnings.
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

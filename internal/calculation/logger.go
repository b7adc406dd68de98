package calculation

import "github.com/ecomet/investor-dashboard/internal/domain"

// Logger receives projection traces and dataset findings.
// *zap.SugaredLogger satisfies it.
type Logger interface {
	Debugf(template string, args ...any)
	Infof(template string, args ...any)
	Warnf(template string, args ...any)
}

// NopLogger discards everything; it is the default for engines and parsers.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}

func orNop(l Logger) Logger {
	if l == nil {
		return NopLogger{}
	}
	return l
}

// LogIssues reports each issue at the level matching its severity.
func LogIssues(l Logger, issues []domain.Issue) {
	l = orNop(l)
	for _, is := range issues {
		switch is.Severity {
		case domain.SeverityInfo:
			l.Infof("%s: %s", is.Path, is.Message)
		default:
			l.Warnf("%s: %s", is.Path, is.Message)
		}
	}
}

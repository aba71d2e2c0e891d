package htmltokenizer

import "github.com/sirupsen/logrus"

// Logger is the minimal structured-logging surface the state machine uses
// for optional trace-level diagnostics. The only event traced is an
// end-of-input suspension (with its blocked byte count); state transitions
// and bookmarks are not logged. *logrus.Logger and
// *logrus.Entry both satisfy it.
type Logger interface {
	WithFields(fields logrus.Fields) *logrus.Entry
}

type nopLogger struct{}

func (nopLogger) WithFields(logrus.Fields) *logrus.Entry { return nil }

// disabledLogger is the zero-overhead default: WithFields returns nil, and
// the machine always nil-checks the result before calling a logging
// method on it, so an unconfigured machine never touches logrus at all.
var disabledLogger Logger = nopLogger{}

func (m *StateMachine) trace(event string, fields logrus.Fields) {
	if m.logger == nil {
		return
	}
	entry := m.logger.WithFields(fields)
	if entry == nil {
		return
	}
	entry.Trace(event)
}

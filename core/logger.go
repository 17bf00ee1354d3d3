package core

// Logger is any service that can report application events; implementations
// decide where the events go (console, Rollbar, ...).
//
// Arguments may include a session.User to attribute the event to the person
// currently signed in.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}

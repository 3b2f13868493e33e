package console

import "github.com/rs/zerolog"

// Notifier surfaces form outcomes to the user, typically as toasts.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}

// LogNotifier writes notifications to a zerolog logger, for headless use.
type LogNotifier struct {
	Log zerolog.Logger
}

func (n LogNotifier) Success(msg string) { n.Log.Info().Msg(msg) }
func (n LogNotifier) Error(msg string)   { n.Log.Error().Msg(msg) }

package usecase

import "github.com/VictoriaMetrics/metrics"

var (
	composerFallbackCounter = metrics.NewCounter(`message_file_fallbacks_total`)
	settingsUpdatedCounter  = metrics.NewCounter(`settings_updated_total`)

	notificationsCounter = func(state string) *metrics.Counter {
		return metrics.GetOrCreateCounter(`notifications_total{state="` + state + `"}`)
	}
	buildsReceivedCounter = func(result string) *metrics.Counter {
		return metrics.GetOrCreateCounter(`builds_received_total{result="` + result + `"}`)
	}
)

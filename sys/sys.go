package sys

import (
	"time"
)

// Config contains all the configs gathered from env vars. It is built once
// in main and passed by reference into every component that needs it.
type Config struct {
	Http struct {
		Port            string
		ShutdownTimeout time.Duration
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		IdleTimeout     time.Duration
	}
	Database struct {
		Driver           string
		ConnectionURL    string
		PingTimeout      time.Duration
		OperationTimeout time.Duration
	}
	Cache struct {
		ConnectionURL    string
		User             string
		Pass             string
		PingTimeout      time.Duration
		OperationTimeout time.Duration
		NotesTTL         time.Duration
	}
	Session struct {
		Secret     string
		TTL        time.Duration
		CookieName string
	}
	NewRelic struct {
		AppName           string
		Licence           string
		Enabled           bool
		ConnectionTimeout time.Duration
		ShutdownTimeout   time.Duration
	}
}

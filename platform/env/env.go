package env

import (
	"os"

	"go.uber.org/zap"
)

// OrDefault return the result of searching an env var, if the env var value is empty, return a default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	log.Infow("config", "env", env, "using default", def)
	return def
}

// Must return the result of searching an env var, logging an error when the env var is not set
func Must(log *zap.SugaredLogger, env string) string {
	v := os.Getenv(env)
	if v == "" {
		log.Errorw("config", "env", env, "error", "required env var is not set")
	}
	return v
}

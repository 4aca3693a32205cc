package logger

import (
	"os"
	"screening-service/internal/app/config"

	"github.com/sirupsen/logrus"
)

// InitBootstrapLogger configures the process-level logrus logger used during
// driver initialization and shutdown, before the zap request logger exists.
func InitBootstrapLogger(internalConfig *config.InternalConfig) {
	switch internalConfig.App.Env {
	case "production":
		logrus.SetFormatter(&logrus.JSONFormatter{})
		file, err := os.OpenFile("bootstrap.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			logrus.SetOutput(file)
		} else {
			logrus.Info("Failed to log to file, using default stderr")
		}
	default:
		logrus.SetFormatter(&logrus.TextFormatter{})
	}
}

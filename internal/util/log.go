package util

import (
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

// InitLog parses and sets log-level input
func InitLog(logLevel string) error {
	return initLog(logLevel, os.Stderr)
}

func initLog(logLevel string, out io.Writer) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		log.Errorf("Failed parsing log-level %s: %s", logLevel, err)
		return err
	}

	log.SetOutput(out)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	log.SetLevel(level)
	return nil
}

package services

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// TrackTime logs how long the named service operation took. Call it
// deferred with the operation's start time.
func TrackTime(operation string, start time.Time) {
	log.WithFields(log.Fields{
		"operation":   operation,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("service operation finished")
}

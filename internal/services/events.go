package services

import (
	"blogapi/internal/events"

	"github.com/sirupsen/logrus"
)

// publish is best-effort: the record is already stored, so a broker failure
// is logged and otherwise ignored.
func publish(pub events.Publisher, log *logrus.Logger, subject string, payload any) {
	if err := pub.Publish(subject, payload); err != nil {
		log.WithError(err).WithField("subject", subject).Warn("Failed to publish event")
	}
}

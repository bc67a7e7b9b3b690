package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

// Publisher delivers domain events after a write has been stored.
type Publisher interface {
	Publish(subject string, payload any) error
	Close()
}

type NATSConfig struct {
	URL           string
	MaxReconnects int
	ReconnectWait time.Duration
	ClientName    string
}

type NATSPublisher struct {
	conn *nats.Conn
	log  *logrus.Logger
}

func NewNATSPublisher(cfg NATSConfig, log *logrus.Logger) (*NATSPublisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ClientName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				log.WithError(err).Warn("NATS disconnected")
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.WithField("url", nc.ConnectedUrl()).Info("NATS reconnected")
		}),
	}

	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}
	return &NATSPublisher{conn: conn, log: log}, nil
}

func (p *NATSPublisher) Publish(subject string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if err := p.conn.Publish(subject, data); err != nil {
		return err
	}
	p.log.WithField("subject", subject).Debug("published event")
	return nil
}

func (p *NATSPublisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}

// NopPublisher drops every event. Used when NATS_URL is unset.
type NopPublisher struct{}

func (NopPublisher) Publish(string, any) error { return nil }
func (NopPublisher) Close()                    {}

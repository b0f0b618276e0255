package messaging

import (
	"dentflow-service/internal/app/config"
	"dentflow-service/internal/pkg/constvars"
	"log"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

// NewRabbitMQ returns nil when activity events are disabled.
func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	if !driverConfig.RabbitMQ.Enabled {
		log.Println("RabbitMQ disabled, activity events will be discarded")
		return nil
	}

	conn, err := amqp091.DialConfig(connectionURL(driverConfig.RabbitMQ), dialConfig(driverConfig.RabbitMQ))
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ at %s: %s", net.JoinHostPort(driverConfig.RabbitMQ.Host, driverConfig.RabbitMQ.Port), err.Error())
	}
	log.Printf("Successfully connected to rabbitMQ vhost %q", driverConfig.RabbitMQ.Vhost)
	return conn
}

// connectionURL escapes credentials and the vhost, so "/" becomes "%2F".
func connectionURL(cfg config.RabbitMQ) string {
	u := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(cfg.Username, cfg.Password),
		Host:   net.JoinHostPort(cfg.Host, cfg.Port),
	}
	if cfg.Vhost != "" {
		u.RawPath = "/" + url.PathEscape(cfg.Vhost)
		u.Path = "/" + cfg.Vhost
	}
	return u.String()
}

// dialConfig names the connection after the service so it shows up in the
// management UI.
func dialConfig(cfg config.RabbitMQ) amqp091.Config {
	properties := amqp091.NewConnectionProperties()
	properties.SetClientConnectionName(constvars.ServiceName)

	heartbeat := time.Duration(cfg.HeartbeatInSeconds) * time.Second
	if heartbeat <= 0 {
		heartbeat = 10 * time.Second
	}

	return amqp091.Config{
		Vhost:      strings.TrimSpace(cfg.Vhost),
		Heartbeat:  heartbeat,
		Locale:     "en_US",
		Properties: properties,
	}
}

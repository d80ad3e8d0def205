package mqtt

import (
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

// Options describes the broker connection of the relay.
type Options struct {
	Protocol string // tcp, ssl, mqtt, mqtts, ws or wss
	Host     string
	Port     int
	Path     string // websocket path, ignored for tcp/ssl
	Username string
	Password string
	Topic    string
	QoS      byte

	ClientIDPrefix     string
	InsecureSkipVerify bool

	KeepAlive      time.Duration
	ConnectTimeout time.Duration
	// ConnectRetry keeps retrying the first connect in the background
	// instead of failing Connect.
	ConnectRetry bool
	StoreTimeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.Protocol == "" {
		o.Protocol = "tcp"
	}
	if o.KeepAlive <= 0 {
		o.KeepAlive = 30 * time.Second
	}
	if o.ConnectTimeout <= 0 {
		o.ConnectTimeout = 10 * time.Second
	}
	if o.StoreTimeout <= 0 {
		o.StoreTimeout = 5 * time.Second
	}
	return o
}

// BrokerURL renders protocol://host:port[/path].
func (o Options) BrokerURL() string {
	proto := strings.ToLower(o.Protocol)
	if proto == "" {
		proto = "tcp"
	}
	u := fmt.Sprintf("%s://%s:%d", proto, o.Host, o.Port)
	if proto == "ws" || proto == "wss" {
		path := o.Path
		if path != "" && !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		u += path
	}
	return u
}

// UseTLS reports whether the protocol is encrypted.
func (o Options) UseTLS() bool {
	switch strings.ToLower(o.Protocol) {
	case "wss", "ssl", "mqtts", "tls":
		return true
	default:
		return false
	}
}

// NewClientID returns prefix followed by eight random hex characters.
func NewClientID(prefix string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + id[:8]
}

func (o Options) pahoOptions() *mqtt.ClientOptions {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(o.BrokerURL())
	opts.SetClientID(NewClientID(o.ClientIDPrefix))
	if o.Username != "" {
		opts.SetUsername(o.Username)
	}
	if o.Password != "" {
		opts.SetPassword(o.Password)
	}
	if o.UseTLS() {
		opts.SetTLSConfig(&tls.Config{
			InsecureSkipVerify: o.InsecureSkipVerify,
			ServerName:         o.Host,
		})
	}

	opts.SetKeepAlive(o.KeepAlive)
	opts.SetConnectTimeout(o.ConnectTimeout)
	opts.SetCleanSession(true)
	opts.SetOrderMatters(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(o.ConnectRetry)

	return opts
}

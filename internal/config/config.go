package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"people-counting-service/internal/storage"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds application-wide configuration
type Config struct {
	MQTT     MQTTConfig `mapstructure:"mqtt"`
	DB       DBConfig   `mapstructure:"db"`
	HTTP     HTTPConfig `mapstructure:"http"`
	Timezone string     `mapstructure:"timezone"`
	LogLevel string     `mapstructure:"logLevel"`
}

type MQTTConfig struct {
	Host               string `mapstructure:"host"`
	Port               int    `mapstructure:"port"`
	Protocol           string `mapstructure:"protocol"`
	Path               string `mapstructure:"path"`
	Username           string `mapstructure:"username"`
	Password           string `mapstructure:"password"`
	Topic              string `mapstructure:"topic"`
	QoS                int    `mapstructure:"qos"`
	ClientIDPrefix     string `mapstructure:"clientIDPrefix"`
	InsecureSkipVerify bool   `mapstructure:"insecureSkipVerify"`
}

type DBConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"` // file path for sqlite3, connection string for postgres
}

type HTTPConfig struct {
	Port      int    `mapstructure:"port"`
	StaticDir string `mapstructure:"staticDir"`
}

// env names are shared with the dashboards' deployment scripts.
var envBindings = map[string][]string{
	"mqtt.host":               {"MQTT_HOST"},
	"mqtt.port":               {"MQTT_PORT"},
	"mqtt.protocol":           {"MQTT_PROTOCOL"},
	"mqtt.path":               {"MQTT_PATH"},
	"mqtt.username":           {"MQTT_USERNAME"},
	"mqtt.password":           {"MQTT_PASSWORD"},
	"mqtt.topic":              {"MQTT_TOPIC"},
	"mqtt.qos":                {"MQTT_QOS"},
	"mqtt.clientIDPrefix":     {"MQTT_CLIENT_ID_PREFIX"},
	"mqtt.insecureSkipVerify": {"MQTT_INSECURE_SKIP_VERIFY"},
	"db.driver":               {"DB_DRIVER"},
	"db.dsn":                  {"DB_DSN", "DB_PATH"},
	"http.port":               {"PORT"},
	"http.staticDir":          {"STATIC_DIR"},
	"timezone":                {"TIMEZONE"},
	"logLevel":                {"LOG_LEVEL"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mqtt.host", "mqtt.swedeniot.se")
	v.SetDefault("mqtt.port", 9001)
	v.SetDefault("mqtt.protocol", "wss")
	v.SetDefault("mqtt.path", "/ws")
	v.SetDefault("mqtt.username", "")
	v.SetDefault("mqtt.password", "")
	v.SetDefault("mqtt.topic", "gs-retail/sensor/onvif-ej/PeopleCounting/PeopleCountPunctual/&VideoEncoderToken-01-0/line2")
	v.SetDefault("mqtt.qos", 0)
	v.SetDefault("mqtt.clientIDPrefix", "gs-retail-server-")
	v.SetDefault("mqtt.insecureSkipVerify", false)
	v.SetDefault("db.driver", storage.DriverSQLite)
	v.SetDefault("db.dsn", "people_counting.db")
	v.SetDefault("http.port", 3000)
	v.SetDefault("http.staticDir", "")
	v.SetDefault("timezone", "Europe/Stockholm")
	v.SetDefault("logLevel", "info")
}

// Load reads an optional config file, then the environment, then defaults.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("bind env for %s: %w", key, err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	cfg.MQTT.Protocol = strings.ToLower(cfg.MQTT.Protocol)
	cfg.DB.Driver = strings.ToLower(cfg.DB.Driver)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validProtocols = map[string]bool{
	"tcp": true, "ssl": true, "mqtt": true, "mqtts": true, "ws": true, "wss": true,
}

func (c *Config) Validate() error {
	switch {
	case c.MQTT.Host == "":
		return fmt.Errorf("%w: mqtt host is required", ErrInvalidConfig)
	case c.MQTT.Port < 1 || c.MQTT.Port > 65535:
		return fmt.Errorf("%w: mqtt port %d out of range", ErrInvalidConfig, c.MQTT.Port)
	case !validProtocols[c.MQTT.Protocol]:
		return fmt.Errorf("%w: unsupported mqtt protocol %q", ErrInvalidConfig, c.MQTT.Protocol)
	case c.MQTT.Topic == "":
		return fmt.Errorf("%w: mqtt topic is required", ErrInvalidConfig)
	case c.MQTT.QoS < 0 || c.MQTT.QoS > 2:
		return fmt.Errorf("%w: mqtt qos must be 0, 1 or 2", ErrInvalidConfig)
	case c.DB.Driver != storage.DriverSQLite && c.DB.Driver != storage.DriverPostgres:
		return fmt.Errorf("%w: unsupported db driver %q", ErrInvalidConfig, c.DB.Driver)
	case c.DB.DSN == "":
		return fmt.Errorf("%w: db dsn is required", ErrInvalidConfig)
	case c.HTTP.Port < 1 || c.HTTP.Port > 65535:
		return fmt.Errorf("%w: http port %d out of range", ErrInvalidConfig, c.HTTP.Port)
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Location resolves the zone used for stored wall-clock timestamps.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func (c *Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.HTTP.Port)
}

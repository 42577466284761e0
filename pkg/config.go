package pkg

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Config struct {
	LogLevel string        `default:"info" split_words:"true"`
	LogJSON  bool          `default:"false" split_words:"true"`
	LogColor bool          `default:"false" split_words:"true"`
	Port     int           `default:"8000"`
	Timeout  time.Duration `default:"60s"`
	Throttle int           `default:"100"`
}

func LoadConfig() (*Config, error) {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return nil, errors.Wrap(err, "process env config")
	}
	return c, nil
}

func (c *Config) SetupLogger(l *logrus.Logger) error {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return errors.Wrap(err, "parse log level")
	}
	l.SetLevel(level)
	if c.LogJSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(
			&logrus.TextFormatter{
				ForceColors: c.LogColor, FullTimestamp: true,
			},
		)
	}
	return nil
}

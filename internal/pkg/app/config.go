package app

import (
	"github.com/nil-go/konf"
	"github.com/nil-go/konf/provider/file"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type WebConfig struct {
	Host string
	Port string
}

type DBConfig struct {
	DriverName       string
	ConnectionString string
}

type KafkaConfig struct {
	Addresses []string
	Topic     string
}

type LoggingConfig struct {
	Level int
}

type AuthConfig struct {
	JWTSecret     string
	TokenTTLHours int
}

type Config struct {
	Web     WebConfig
	DB      DBConfig
	Kafka   KafkaConfig
	Logging LoggingConfig
	Auth    AuthConfig
}

func ReadLocalConfig(path string) (Config, error) {
	k := konf.New()
	if err := k.Load(file.New(path, file.WithUnmarshal(yaml.Unmarshal))); err != nil {
		return Config{}, errors.Wrap(err, "load config file")
	}

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}

	return config, nil
}

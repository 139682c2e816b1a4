package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Addr          string        `koanf:"addr"`
	Currency      string        `koanf:"currency"`
	Storage       Storage       `koanf:"storage"`
	Notifications Notifications `koanf:"notifications"`
	Gateway       Gateway       `koanf:"gateway"`
}

type Storage struct {
	Path string `koanf:"path"`
}

type Notifications struct {
	// TTLSeconds is how long a notification stays visible before it expires.
	TTLSeconds int `koanf:"ttlseconds"`
}

type Gateway struct {
	// LatencyMs is the simulated round-trip delay of account operations.
	LatencyMs int `koanf:"latencyms"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Addr:     ":8181",
		Currency: "USD",
		Storage: Storage{
			Path: "storage/vacaytracker.db",
		},
		Notifications: Notifications{
			TTLSeconds: 3,
		},
		Gateway: Gateway{
			LatencyMs: 1500,
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "VACAY_",
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "VACAY_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}

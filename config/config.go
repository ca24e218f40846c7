package config

import (
	"os"

	"github.com/pelletier/go-toml"
	"github.com/powerman/structlog"
)

type Config struct {
	Port         string `toml:"port" comment:"HTTP listen port"`
	DatabaseFile string `toml:"database_file" comment:"sqlite database file, created on first run"`
}

func Default() Config {
	return Config{
		Port:         "8080",
		DatabaseFile: "business.db",
	}
}

// Open reads the TOML config at filename. A missing or unreadable file is
// replaced with defaults and written back. The PORT environment variable,
// when set, overrides the configured port.
func Open(log *structlog.Logger, filename string) Config {
	conf := Default()

	b, err := os.ReadFile(filename)
	if err == nil {
		err = toml.Unmarshal(b, &conf)
	}
	if err != nil {
		log.PrintErr(err)
		Save(log, filename, conf)
	}

	if port := os.Getenv("PORT"); port != "" {
		conf.Port = port
	}
	return conf
}

// Save writes conf to filename as TOML.
func Save(log *structlog.Logger, filename string, conf Config) {
	b, err := toml.Marshal(conf)
	if err == nil {
		err = os.WriteFile(filename, b, 0666)
	}
	if err != nil {
		log.PrintErr(err)
		return
	}
	log.Info("config saved", "file", filename)
}

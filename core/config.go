package core

import (
	"log"
	"os"

	"github.com/go-yaml/yaml"
)

type Config struct {
	Server Server `yaml:"server"`
	Engine Engine `yaml:"engine"`
}

type Server struct {
	Dsn         string `yaml:"dsn"`
	EnableTrace bool   `yaml:"enableTrace"`
}

type Engine struct {
	// SearchLimit caps permitted-object searches. 0 means DefaultSearchLimit.
	SearchLimit int `yaml:"searchLimit"`

	// AllowNoAuth grants unrestricted access when the deployment runs
	// without any authentication backend (auth status "unknown"). Off
	// by default: an absent identity denies, it never silently allows.
	AllowNoAuth bool `yaml:"allowNoAuth"`
}

// Load loads config from given path
func (c *Config) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal("failed to open configuration file:", err)
		return err
	}
	defer f.Close()

	err = yaml.NewDecoder(f).Decode(&c)
	if err != nil {
		log.Fatal("failed to load configuration file:", err)
		return err
	}

	return nil
}

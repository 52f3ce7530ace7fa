// Package config loads the migration tool's YAML configuration file: the
// ScyllaDB cluster to write to and the PostgreSQL database to read from.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fireproject/scylla-migrate/internal/apperr"
)

// Config is the top-level configuration shape, loaded from a YAML file with
// camelCase keys.
type Config struct {
	Scylla *ScyllaConfig `yaml:"scylla"`
	DB     DBConfig      `yaml:"db"`
}

// ScyllaConfig describes the destination cluster.
type ScyllaConfig struct {
	Nodes             []string     `yaml:"nodes"`
	Keyspace          string       `yaml:"keyspace"`
	ReplicationFactor int32        `yaml:"replicationFactor"`
	Credentials       *Credentials `yaml:"credentials"`
}

// Credentials holds the username/password authenticator for the destination.
type Credentials struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// DBConfig describes the source PostgreSQL connection.
type DBConfig struct {
	Host string `yaml:"host"`
	Port uint32 `yaml:"port"`
	DB   string `yaml:"db"`
	User string `yaml:"user"`
	Pass string `yaml:"pass"`
}

// Load reads and parses the YAML config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.IO, fmt.Errorf("read config %s: %w", path, err))
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, apperr.Wrap(apperr.IO, fmt.Errorf("parse config %s: %w", path, err))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration is complete enough to run a
// migration. An absent "scylla" block is treated as a configuration error:
// running this tool at all implies the operator intends to migrate, so a
// silent no-op would hide a likely mistake.
func (c *Config) Validate() error {
	if c.Scylla == nil {
		return apperr.Wrap(apperr.IO, fmt.Errorf(`config: "scylla" section is required`))
	}
	if len(c.Scylla.Nodes) == 0 {
		return apperr.Wrap(apperr.IO, fmt.Errorf("config: scylla.nodes must not be empty"))
	}
	if c.Scylla.Keyspace == "" {
		return apperr.Wrap(apperr.IO, fmt.Errorf("config: scylla.keyspace is required"))
	}
	if c.DB.Host == "" || c.DB.DB == "" || c.DB.User == "" {
		return apperr.Wrap(apperr.IO, fmt.Errorf("config: db.host, db.db, and db.user are required"))
	}
	return nil
}

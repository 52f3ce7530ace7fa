// Package scylladest establishes the destination cluster session, compiles
// the six statements the stream driver writes through, and binds
// destination row values onto them.
package scylladest

import (
	"fmt"

	"github.com/gocql/gocql"

	"github.com/fireproject/scylla-migrate/internal/apperr"
	"github.com/fireproject/scylla-migrate/internal/config"
)

// Dial opens a session against the destination cluster. When credentials
// are configured a password authenticator is attached. The keyspace is set
// on the cluster config: gocql issues the USE itself on every connection,
// with the name quoted, so keyspace matching is case-sensitive.
func Dial(cfg *config.ScyllaConfig) (*gocql.Session, error) {
	cluster := gocql.NewCluster(cfg.Nodes...)
	cluster.Keyspace = cfg.Keyspace
	cluster.Consistency = gocql.Quorum
	if cfg.Credentials != nil {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: cfg.Credentials.Username,
			Password: cfg.Credentials.Password,
		}
	}

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, apperr.Wrap(apperr.DestinationSession, fmt.Errorf("create scylla session (keyspace %q): %w", cfg.Keyspace, err))
	}

	return session, nil
}

package users

import (
	"fmt"
	"os"
	"strings"
)

const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

func backendFromEnv() string {
	raw := strings.ToLower(strings.TrimSpace(os.Getenv("USERS_BACKEND")))
	switch raw {
	case "", BackendMemory, "mem":
		return BackendMemory
	case BackendSQLite, "sqlite3":
		return BackendSQLite
	case BackendPostgres, "postgresql", "pg":
		return BackendPostgres
	default:
		return raw
	}
}

func NewServiceFromEnv() (Service, string, error) {
	backend := backendFromEnv()

	switch backend {
	case BackendMemory:
		return NewMemoryService(), backend, nil
	case BackendSQLite:
		service, err := NewSQLiteServiceFromEnv()
		if err != nil {
			return nil, backend, err
		}
		return service, backend, nil
	case BackendPostgres:
		service, err := NewPostgresServiceFromEnv()
		if err != nil {
			return nil, backend, err
		}
		return service, backend, nil
	default:
		return nil, backend, fmt.Errorf("invalid USERS_BACKEND %q (supported: %s, %s, %s)", backend, BackendMemory, BackendSQLite, BackendPostgres)
	}
}

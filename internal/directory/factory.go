package directory

import (
	"fmt"
	"os"
	"strings"
)

const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

func backendFromEnv() string {
	raw := strings.ToLower(strings.TrimSpace(os.Getenv("DIRECTORY_BACKEND")))
	switch raw {
	case "", BackendMemory, "mem":
		return BackendMemory
	case BackendSQLite, "sqlite3":
		return BackendSQLite
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
	default:
		return nil, backend, fmt.Errorf("invalid DIRECTORY_BACKEND %q (supported: %s, %s)", backend, BackendMemory, BackendSQLite)
	}
}

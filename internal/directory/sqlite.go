package directory

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

const defaultDirectoryDBName = "monopolydeal_rooms.db"

// SQLiteService persists the directory so room codes survive a server
// restart. Single writer connection; WAL keeps readers unblocked.
type SQLiteService struct {
	db *sql.DB

	mu  sync.Mutex
	rng *rand.Rand
}

func NewSQLiteServiceFromEnv() (*SQLiteService, error) {
	dbPath := strings.TrimSpace(os.Getenv("DIRECTORY_SQLITE_PATH"))
	if dbPath == "" {
		dbPath = defaultDirectoryDBName
	}
	return NewSQLiteService(dbPath)
}

func NewSQLiteService(dbPath string) (*SQLiteService, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, fmt.Errorf("empty sqlite database path")
	}
	if dbPath != ":memory:" {
		parent := filepath.Dir(dbPath)
		if parent != "" && parent != "." {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return nil, err
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, pragma := range []string{
		`PRAGMA busy_timeout = 5000;`,
		`PRAGMA journal_mode = WAL;`,
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := ensureRoomSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteService{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

func (s *SQLiteService) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteService) Create() (Room, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		s.mu.Lock()
		code := randomCode(s.rng)
		s.mu.Unlock()

		now := time.Now().UTC()
		_, err := s.db.ExecContext(ctx, `
INSERT INTO rooms (code, player_count, max_players, has_started, roster, created_at_ms)
VALUES (?, 0, ?, 0, '[]', ?)
`, code, DefaultMaxPlayers, now.UnixMilli())
		if err != nil {
			if isSQLiteUniqueViolation(err) {
				continue
			}
			return Room{}, err
		}
		return Room{
			Code:       code,
			MaxPlayers: DefaultMaxPlayers,
			Players:    []RosterPlayer{},
			CreatedAt:  now,
		}, nil
	}
	return Room{}, errCodeSpaceExhausted
}

func (s *SQLiteService) Get(code string) (Room, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var room Room
	var started int
	var roster string
	var createdMs int64
	err := s.db.QueryRowContext(ctx, `
SELECT code, player_count, max_players, has_started, roster, created_at_ms
FROM rooms
WHERE code = ?
`, code).Scan(&room.Code, &room.PlayerCount, &room.MaxPlayers, &started, &roster, &createdMs)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Room{}, ErrNotFound
		}
		return Room{}, err
	}
	if err := json.Unmarshal([]byte(roster), &room.Players); err != nil {
		return Room{}, err
	}
	room.HasStarted = started != 0
	room.CreatedAt = time.UnixMilli(createdMs).UTC()
	return room, nil
}

func (s *SQLiteService) SetRoster(code string, players []RosterPlayer) error {
	if players == nil {
		players = []RosterPlayer{}
	}
	roster, err := json.Marshal(players)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res, err := s.db.ExecContext(ctx, `
UPDATE rooms SET roster = ?, player_count = ? WHERE code = ?
`, string(roster), len(players), code)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteService) SetStarted(code string, started bool) error {
	flag := 0
	if started {
		flag = 1
	}
	return s.updateRoom(code, `UPDATE rooms SET has_started = ? WHERE code = ?`, flag)
}

func (s *SQLiteService) updateRoom(code, query string, value any) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res, err := s.db.ExecContext(ctx, query, value, code)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteService) Delete(code string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := s.db.ExecContext(ctx, `DELETE FROM rooms WHERE code = ?`, code)
	return err
}

func (s *SQLiteService) List() ([]Room, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
SELECT code, player_count, max_players, has_started, roster, created_at_ms
FROM rooms
ORDER BY created_at_ms DESC
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Room
	for rows.Next() {
		var room Room
		var started int
		var roster string
		var createdMs int64
		if err := rows.Scan(&room.Code, &room.PlayerCount, &room.MaxPlayers, &started, &roster, &createdMs); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(roster), &room.Players); err != nil {
			return nil, err
		}
		room.HasStarted = started != 0
		room.CreatedAt = time.UnixMilli(createdMs).UTC()
		out = append(out, room)
	}
	return out, rows.Err()
}

func ensureRoomSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS rooms (
    code TEXT PRIMARY KEY,
    player_count INTEGER NOT NULL DEFAULT 0,
    max_players INTEGER NOT NULL,
    has_started INTEGER NOT NULL DEFAULT 0,
    roster TEXT NOT NULL DEFAULT '[]',
    created_at_ms INTEGER NOT NULL
)`)
	return err
}

func isSQLiteUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

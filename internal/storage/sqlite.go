// Package storage provides SQLite-based persistence for solve summaries and
// play scores. The explored state graph itself is never stored.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single play score record.
type ScoreEntry struct {
	ID        int64
	LevelID   string
	Player    string
	Score     int
	Moves     int
	CreatedAt time.Time
}

// Solution is the recorded outcome of one state-space build.
type Solution struct {
	ID         int64
	RunID      string
	LevelID    string
	BoardKey   string
	StateCount int
	BestScore  int
	BestMoves  string // letter form, e.g. "rrul"
	MaxDepth   int
	Elapsed    time.Duration
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_level_id ON scores(level_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(level_id, score DESC, moves ASC);

		CREATE TABLE IF NOT EXISTS solutions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			level_id TEXT NOT NULL,
			board_key TEXT NOT NULL,
			state_count INTEGER NOT NULL,
			best_score INTEGER NOT NULL,
			best_moves TEXT NOT NULL,
			max_depth INTEGER NOT NULL DEFAULT 0,
			elapsed_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solutions_level_id ON solutions(level_id);
		CREATE INDEX IF NOT EXISTS idx_solutions_board_key ON solutions(board_key);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a play score for the given level.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(levelID, player string, score, moves int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (level_id, player, score, moves) VALUES (?, ?, ?, ?)",
		levelID, player, score, moves,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given level.
// Results are ordered by score descending, fewer moves first on ties.
func (s *Store) TopScores(levelID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, player, score, moves, created_at
		 FROM scores
		 WHERE level_id = ?
		 ORDER BY score DESC, moves ASC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.LevelID, &e.Player, &e.Score, &e.Moves, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest play score for the given level.
// Returns 0 if no scores exist.
func (s *Store) HighScore(levelID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE level_id = ?",
		levelID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all play scores for the given level.
func (s *Store) ClearScores(levelID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE level_id = ?", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// SaveSolution records a solve summary. A fresh run ID is assigned when
// sol.RunID is empty. Returns the stored run ID.
func (s *Store) SaveSolution(sol Solution) (string, error) {
	if sol.RunID == "" {
		sol.RunID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO solutions
		 (run_id, level_id, board_key, state_count, best_score, best_moves, max_depth, elapsed_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sol.RunID,
		sol.LevelID,
		sol.BoardKey,
		sol.StateCount,
		sol.BestScore,
		sol.BestMoves,
		sol.MaxDepth,
		sol.Elapsed.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save solution: %w", err)
	}
	return sol.RunID, nil
}

// LatestSolution returns the most recent summary recorded for a board.
// Returns nil when the board has never been solved.
func (s *Store) LatestSolution(boardKey string) (*Solution, error) {
	row := s.db.QueryRow(
		`SELECT id, run_id, level_id, board_key, state_count, best_score, best_moves,
		        max_depth, elapsed_ms, created_at
		 FROM solutions
		 WHERE board_key = ?
		 ORDER BY id DESC
		 LIMIT 1`,
		boardKey,
	)

	sol, err := scanSolution(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solution: %w", err)
	}
	return sol, nil
}

// Solutions returns the recorded summaries for a level, newest first.
// An empty levelID returns summaries for every level.
func (s *Store) Solutions(levelID string, limit int) ([]Solution, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, level_id, board_key, state_count, best_score, best_moves,
		        max_depth, elapsed_ms, created_at
		 FROM solutions
		 WHERE ? = '' OR level_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		levelID, levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solutions: %w", err)
	}
	defer rows.Close()

	var results []Solution
	for rows.Next() {
		sol, err := scanSolution(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, *sol)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSolution(r rowScanner) (*Solution, error) {
	var sol Solution
	var elapsedMS int64
	var createdAt any

	if err := r.Scan(
		&sol.ID,
		&sol.RunID,
		&sol.LevelID,
		&sol.BoardKey,
		&sol.StateCount,
		&sol.BestScore,
		&sol.BestMoves,
		&sol.MaxDepth,
		&elapsedMS,
		&createdAt,
	); err != nil {
		return nil, err
	}

	sol.Elapsed = time.Duration(elapsedMS) * time.Millisecond
	sol.CreatedAt = parseTime(createdAt)
	return &sol, nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

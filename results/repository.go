// Package results records self-play runs in a sqlite database.
package results

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	_ "github.com/mattn/go-sqlite3" // repository assumes sqlite
)

type Repository struct {
	db *sqlx.DB
}

// Run summarizes one self-play invocation. Player1 and Player2 hold
// the weights each side played with.
type Run struct {
	ID        string    `db:"id"`
	Time      time.Time `db:"time"`
	Size      int       `db:"size"`
	Seed      int64     `db:"seed"`
	Player1   string    `db:"player1"`
	Player2   string    `db:"player2"`
	Games     int       `db:"games"`
	P1Wins    int       `db:"p1_wins"`
	P2Wins    int       `db:"p2_wins"`
	BlackWins int       `db:"black_wins"`
	WhiteWins int       `db:"white_wins"`
	Draws     int       `db:"draws"`
}

type Game struct {
	RunID   string `db:"run_id"`
	Index   int    `db:"idx"`
	P1Color string `db:"p1_color"`
	Winner  string `db:"winner"`
	Moves   int    `db:"moves"`
}

type Record struct {
	Wins, Losses, Ties int
}

func Open(db string) (*Repository, error) {
	sql, err := sqlx.Open("sqlite3", db)
	if err != nil {
		return nil, err
	}
	for _, stmt := range []struct{ name, sql string }{
		{"runs table", createRunTable},
		{"games table", createGameTable},
		{"player_games view", createPlayerView},
	} {
		if _, err := sql.Exec(stmt.sql); err != nil {
			sql.Close()
			return nil, fmt.Errorf("create %s: %w", stmt.name, err)
		}
	}
	return &Repository{db: sql}, nil
}

// InsertRun stores r and its games in one transaction, assigning
// r.ID if it is empty.
func (r *Repository) InsertRun(run *Run, games []Game) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.Time.IsZero() {
		run.Time = time.Now()
	}
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.NamedExec(insertRun, run); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	for i := range games {
		games[i].RunID = run.ID
		if _, err := tx.NamedExec(insertGame, &games[i]); err != nil {
			return fmt.Errorf("insert game %d: %w", games[i].Index, err)
		}
	}
	return tx.Commit()
}

func (r *Repository) Runs() ([]Run, error) {
	var out []Run
	if err := r.db.Select(&out, selectRuns); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository) Games(runID string) ([]Game, error) {
	var out []Game
	if err := r.db.Select(&out, selectGames, runID); err != nil {
		return nil, err
	}
	return out, nil
}

// PlayerRecord totals results for a weight set across all runs.
func (r *Repository) PlayerRecord(player string) (Record, error) {
	rows, err := r.db.Query(selectPlayerRecord, player)
	if err != nil {
		return Record{}, err
	}
	defer rows.Close()
	var rec Record
	for rows.Next() {
		var (
			result string
			n      int
		)
		if err := rows.Scan(&result, &n); err != nil {
			return Record{}, err
		}
		switch result {
		case "win":
			rec.Wins = n
		case "lose":
			rec.Losses = n
		case "tie":
			rec.Ties = n
		}
	}
	return rec, rows.Err()
}

func (r *Repository) Close() {
	r.db.Close()
}

package narrative

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

// ErrEmptyDeck is returned when the deck holds no playable entries
var ErrEmptyDeck = errors.New("narrative deck is empty")

const deckSchema = `
CREATE TABLE IF NOT EXISTS mystery_events (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	message     TEXT    NOT NULL,
	effect_type TEXT    NOT NULL,
	value       INTEGER NOT NULL DEFAULT 0,
	weight      INTEGER NOT NULL DEFAULT 1
);`

// Entry is one card in the deck
type Entry struct {
	Result
	Weight int
}

// DefaultEntries seed a fresh deck
func DefaultEntries() []Entry {
	return []Entry{
		{Result{"A dwarf's lost purse spills out!", EffectGold, 300}, 3},
		{Result{"Dragon hoard crumbs. Still shiny.", EffectGold, 800}, 1},
		{Result{"A cursed coin, but coin nonetheless.", EffectGold, 100}, 3},
		{Result{"The stone hums a timeless tune.", EffectTime, 15}, 3},
		{Result{"An hourglass falls out, unbroken!", EffectTime, 30}, 1},
		{Result{"A sleepy sprite grants you ten seconds.", EffectTime, 10}, 2},
		{Result{"Troll sweat! Your grip feels mighty.", EffectStrength, 0}, 2},
		{Result{"Just a very smug pebble.", EffectNothing, 0}, 2},
		{Result{"A frog. It leaves.", EffectNothing, 0}, 2},
	}
}

// Deck draws mystery events from a weighted sqlite table
type Deck struct {
	db  *sql.DB
	mu  sync.Mutex
	rng *rand.Rand
}

// OpenDeck opens or creates the deck at path; ":memory:" is allowed
func OpenDeck(ctx context.Context, path string, rng *rand.Rand) (*Deck, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open deck %s: %w", path, err)
	}
	// Single connection keeps in-memory databases alive across calls
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, deckSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create deck schema: %w", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Deck{db: db, rng: rng}, nil
}

// Close releases the database
func (d *Deck) Close() error {
	return d.db.Close()
}

// Count returns the number of entries
func (d *Deck) Count(ctx context.Context) (int, error) {
	var n int
	if err := d.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM mystery_events`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count deck: %w", err)
	}
	return n, nil
}

// Add inserts entries after validating them
func (d *Deck) Add(ctx context.Context, entries ...Entry) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin deck insert: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO mystery_events (message, effect_type, value, weight) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare deck insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if err := Validate(e.Result); err != nil {
			return err
		}
		weight := e.Weight
		if weight < 1 {
			weight = 1
		}
		if _, err := stmt.ExecContext(ctx, e.Message, string(e.EffectType), e.Value, weight); err != nil {
			return fmt.Errorf("insert deck entry: %w", err)
		}
	}
	return tx.Commit()
}

// Seed fills an empty deck with entries; a populated deck is left untouched
func (d *Deck) Seed(ctx context.Context, entries []Entry) error {
	n, err := d.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return d.Add(ctx, entries...)
}

// Generate implements Generator with a weighted draw
func (d *Deck) Generate(ctx context.Context) (Result, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT message, effect_type, value, weight FROM mystery_events ORDER BY id`)
	if err != nil {
		return Result{}, fmt.Errorf("query deck: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	total := 0
	for rows.Next() {
		var e Entry
		var effect string
		if err := rows.Scan(&e.Message, &effect, &e.Value, &e.Weight); err != nil {
			return Result{}, fmt.Errorf("scan deck entry: %w", err)
		}
		e.EffectType = EffectType(effect)
		if e.Weight < 1 {
			e.Weight = 1
		}
		entries = append(entries, e)
		total += e.Weight
	}
	if err := rows.Err(); err != nil {
		return Result{}, fmt.Errorf("read deck: %w", err)
	}
	if total == 0 {
		return Result{}, ErrEmptyDeck
	}

	d.mu.Lock()
	pick := d.rng.IntN(total)
	d.mu.Unlock()

	for _, e := range entries {
		if pick < e.Weight {
			return e.Result, nil
		}
		pick -= e.Weight
	}
	return entries[len(entries)-1].Result, nil
}

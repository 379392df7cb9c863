package store

import (
	"database/sql"
	"time"
)

// SignEvent is a single confirmed sign, recorded as it happens.
type SignEvent struct {
	ID          int64
	Symbol      string
	ConfirmedAt time.Time
}

// EventRepository records confirmed signs for the statistics view.
type EventRepository struct {
	db *sql.DB
}

// Events returns the sign event repository for this store.
func (s *Store) Events() *EventRepository {
	return &EventRepository{db: s.db}
}

// Record appends a confirmed sign to the event log.
func (r *EventRepository) Record(symbol string) error {
	_, err := r.db.Exec(
		`INSERT INTO sign_events (symbol, confirmed_at) VALUES (?, ?)`,
		symbol, time.Now(),
	)
	return err
}

// Recent retrieves the most recent events, newest first, up to limit.
func (r *EventRepository) Recent(limit int) ([]*SignEvent, error) {
	rows, err := r.db.Query(
		`SELECT id, symbol, confirmed_at
		 FROM sign_events ORDER BY confirmed_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*SignEvent
	for rows.Next() {
		e := &SignEvent{}
		if err := rows.Scan(&e.ID, &e.Symbol, &e.ConfirmedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// CountBySymbol returns the total number of recorded events per symbol.
func (r *EventRepository) CountBySymbol() (map[string]int, error) {
	rows, err := r.db.Query(
		`SELECT symbol, COUNT(*) FROM sign_events GROUP BY symbol`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var symbol string
		var n int
		if err := rows.Scan(&symbol, &n); err != nil {
			return nil, err
		}
		counts[symbol] = n
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/gravitrone/cardgraph/internal/domain"
)

const cardColumns = `
	c.id, c.question, c.answer, c.topic_id, c.source_id, c.status,
	f.stability, f.difficulty, f.due_date`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (domain.Card, error) {
	var (
		c          domain.Card
		source     sql.NullInt64
		stability  sql.NullFloat64
		difficulty sql.NullFloat64
		due        sql.NullTime
	)
	if err := row.Scan(
		&c.ID, &c.Question, &c.Answer, &c.Topic, &source, &c.Status,
		&stability, &difficulty, &due,
	); err != nil {
		return domain.Card{}, err
	}
	if source.Valid {
		id := domain.SourceID(source.Int64)
		c.Source = &id
	}
	if c.Status == domain.Finished && stability.Valid {
		c.Finished = &domain.FinishedInfo{
			Stability:  stability.Float64,
			Difficulty: difficulty.Float64,
			Due:        due.Time,
		}
	}
	return c, nil
}

// FetchCard loads a card with its dependency edges.
func (s *Store) FetchCard(id domain.CardID) (domain.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.conn.QueryRow(`SELECT`+cardColumns+`
		FROM cards c LEFT JOIN finished_cards f ON f.card_id = c.id
		WHERE c.id = ?`, id)
	card, err := scanCard(row)
	if err != nil {
		return domain.Card{}, fmt.Errorf("fetch card %d: %w", id, MapError(err))
	}

	card.Dependencies, err = s.relatedIDs(`SELECT dependency_id FROM dependencies WHERE dependent_id = ? ORDER BY dependency_id`, id)
	if err != nil {
		return domain.Card{}, fmt.Errorf("dependencies of card %d: %w", id, err)
	}
	card.Dependents, err = s.relatedIDs(`SELECT dependent_id FROM dependencies WHERE dependency_id = ? ORDER BY dependent_id`, id)
	if err != nil {
		return domain.Card{}, fmt.Errorf("dependents of card %d: %w", id, err)
	}
	return card, nil
}

func (s *Store) relatedIDs(query string, id domain.CardID) ([]domain.CardID, error) {
	rows, err := s.conn.Query(query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []domain.CardID
	for rows.Next() {
		var related domain.CardID
		if err := rows.Scan(&related); err != nil {
			return nil, err
		}
		ids = append(ids, related)
	}
	return ids, rows.Err()
}

// ListCards returns the most recent cards, newest first. Edges are not loaded.
func (s *Store) ListCards(limit int) ([]domain.Card, error) {
	return s.queryCards(`SELECT`+cardColumns+`
		FROM cards c LEFT JOIN finished_cards f ON f.card_id = c.id
		ORDER BY c.id DESC LIMIT ?`, limit)
}

// SearchCards returns cards whose question contains query (case-insensitive).
func (s *Store) SearchCards(query string, limit int) ([]domain.Card, error) {
	pattern := "%" + escapeLike(strings.TrimSpace(query)) + "%"
	return s.queryCards(`SELECT`+cardColumns+`
		FROM cards c LEFT JOIN finished_cards f ON f.card_id = c.id
		WHERE c.question LIKE ? ESCAPE '\'
		ORDER BY c.id DESC LIMIT ?`, pattern, limit)
}

func (s *Store) queryCards(query string, args ...any) ([]domain.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query cards: %w", err)
	}
	defer rows.Close()

	var cards []domain.Card
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// WriteCardWithEdges writes the card, its status metadata and all of its
// dependency edges in one transaction. Either everything is visible to
// readers afterwards or nothing is.
func (s *Store) WriteCardWithEdges(p domain.PendingCard) (domain.CardID, error) {
	if p.Source != nil && len(p.Edges) > 0 {
		return 0, fmt.Errorf("card cannot have both a source and graph edges")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.conn.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO cards (question, answer, topic_id, source_id, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.Question, p.Answer, p.Topic, nullSource(p.Source), p.Status, s.now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert card: %w", err)
	}
	rowID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("card id: %w", err)
	}
	id := domain.CardID(rowID)

	if p.Status == domain.Finished {
		info := domain.DefaultFinishedInfo(s.now())
		if p.Finished != nil {
			info = *p.Finished
		}
		if _, err := tx.Exec(
			`INSERT INTO finished_cards (card_id, stability, difficulty, due_date) VALUES (?, ?, ?, ?)`,
			id, info.Stability, info.Difficulty, info.Due.UTC().Truncate(time.Second),
		); err != nil {
			return 0, fmt.Errorf("insert finished info for card %d: %w", id, err)
		}
	}

	for _, e := range p.Edges {
		dependent, dependency := e.Target, id
		if e.Kind == domain.Dependent {
			dependent, dependency = id, e.Target
		}
		if _, err := tx.Exec(
			`INSERT INTO dependencies (dependent_id, dependency_id) VALUES (?, ?)`,
			dependent, dependency,
		); err != nil {
			return 0, fmt.Errorf("insert %s edge to card %d: %w", e.Kind, e.Target, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

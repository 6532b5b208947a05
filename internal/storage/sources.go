package storage

import (
	"fmt"
	"strings"

	"github.com/gravitrone/cardgraph/internal/domain"
)

// CreateSource inserts a reading item under a topic and returns its ID.
func (s *Store) CreateSource(title string, topic domain.TopicID) (domain.SourceID, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return 0, fmt.Errorf("source title is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.conn.Exec(
		`INSERT INTO sources (title, topic_id, created_at) VALUES (?, ?, ?)`,
		title, topic, s.now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert source %q: %w", title, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("source id for %q: %w", title, err)
	}
	return domain.SourceID(id), nil
}

// ListSources returns all reading items ordered by ID.
func (s *Store) ListSources() ([]domain.Source, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.conn.Query(`SELECT id, title, topic_id FROM sources ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	defer rows.Close()

	var sources []domain.Source
	for rows.Next() {
		var src domain.Source
		if err := rows.Scan(&src.ID, &src.Title, &src.Topic); err != nil {
			return nil, fmt.Errorf("scan source: %w", err)
		}
		sources = append(sources, src)
	}
	return sources, rows.Err()
}

// FetchSourceTopic returns the topic a reading item belongs to.
func (s *Store) FetchSourceTopic(id domain.SourceID) (domain.TopicID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var topic domain.TopicID
	err := s.conn.QueryRow(`SELECT topic_id FROM sources WHERE id = ?`, id).Scan(&topic)
	if err != nil {
		return 0, fmt.Errorf("topic of source %d: %w", id, MapError(err))
	}
	return topic, nil
}

// FetchSourceTitle returns the title of a reading item cut to maxLen runes.
// A maxLen of zero or less returns the full title.
func (s *Store) FetchSourceTitle(id domain.SourceID, maxLen int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var title string
	err := s.conn.QueryRow(`SELECT title FROM sources WHERE id = ?`, id).Scan(&title)
	if err != nil {
		return "", fmt.Errorf("title of source %d: %w", id, MapError(err))
	}
	if runes := []rune(title); maxLen > 0 && len(runes) > maxLen {
		title = string(runes[:maxLen])
	}
	return title, nil
}

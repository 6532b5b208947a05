package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/gravitrone/cardgraph/internal/domain"
)

// CreateTopic inserts a topic and returns its ID.
func (s *Store) CreateTopic(name string, parent *domain.TopicID) (domain.TopicID, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("topic name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.conn.Exec(`INSERT INTO topics (name, parent_id) VALUES (?, ?)`, name, nullTopic(parent))
	if err != nil {
		return 0, fmt.Errorf("insert topic %q: %w", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("topic id for %q: %w", name, err)
	}
	return domain.TopicID(id), nil
}

// ListTopics returns all topics ordered by ID.
func (s *Store) ListTopics() ([]domain.Topic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.conn.Query(`SELECT id, name, parent_id FROM topics ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	defer rows.Close()

	var topics []domain.Topic
	for rows.Next() {
		var (
			t      domain.Topic
			parent sql.NullInt64
		)
		if err := rows.Scan(&t.ID, &t.Name, &parent); err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		if parent.Valid {
			p := domain.TopicID(parent.Int64)
			t.Parent = &p
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

package storage

const schema = `
CREATE TABLE IF NOT EXISTS topics (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    name      TEXT NOT NULL,
    parent_id INTEGER REFERENCES topics(id) ON DELETE SET NULL
);

-- Incremental reading items that cards can be derived from.
CREATE TABLE IF NOT EXISTS sources (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    title      TEXT NOT NULL,
    topic_id   INTEGER NOT NULL REFERENCES topics(id),
    created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS cards (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    question   TEXT NOT NULL,
    answer     TEXT NOT NULL,
    topic_id   INTEGER NOT NULL REFERENCES topics(id),
    source_id  INTEGER REFERENCES sources(id),
    status     INTEGER NOT NULL DEFAULT 0, -- 0: unfinished, 1: finished
    created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS finished_cards (
    card_id    INTEGER PRIMARY KEY REFERENCES cards(id) ON DELETE CASCADE,
    stability  REAL NOT NULL,
    difficulty REAL NOT NULL,
    due_date   DATETIME NOT NULL
);

-- dependent_id requires dependency_id.
CREATE TABLE IF NOT EXISTS dependencies (
    dependent_id  INTEGER NOT NULL REFERENCES cards(id) ON DELETE CASCADE,
    dependency_id INTEGER NOT NULL REFERENCES cards(id) ON DELETE CASCADE,
    PRIMARY KEY (dependent_id, dependency_id)
);

CREATE INDEX IF NOT EXISTS idx_cards_topic ON cards(topic_id);
CREATE INDEX IF NOT EXISTS idx_cards_source ON cards(source_id);
CREATE INDEX IF NOT EXISTS idx_dependencies_dependency ON dependencies(dependency_id);
`

package domain

// Topic groups cards. Parent is nil for top-level topics.
type Topic struct {
	ID     TopicID
	Name   string
	Parent *TopicID
}

// Source is an incremental reading item that cards can be derived from.
type Source struct {
	ID    SourceID
	Title string
	Topic TopicID
}

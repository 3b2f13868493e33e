package domain

import "time"

// Meta carries the identity and bookkeeping fields shared by every record.
type Meta struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

func (m *Meta) RecordID() string { return m.ID }

// StampNew assigns the identity and timestamps of a freshly created record.
func (m *Meta) StampNew(id string, now time.Time) {
	m.ID = id
	m.CreatedAt = now
	m.UpdatedAt = now
}

// StampUpdate refreshes the modification timestamp.
func (m *Meta) StampUpdate(now time.Time) { m.UpdatedAt = now }

// Record is satisfied by a pointer to any entity embedding Meta.
type Record interface {
	RecordID() string
	StampNew(id string, now time.Time)
	StampUpdate(now time.Time)
}

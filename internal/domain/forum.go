package domain

import (
	"context"
	"time"
)

// Topic is a reusable category label attached to rooms. Topics are
// get-or-create by name and never deleted.
type Topic struct {
	ID        string    `gorm:"primarykey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

// Room is a topic-tagged discussion thread with one owning host user.
// Participants is the set of users who have posted in the room.
type Room struct {
	ID           string    `gorm:"primarykey;size:36" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	HostID       string    `gorm:"size:36;not null;index" json:"host_id"`
	Host         User      `gorm:"foreignKey:HostID" json:"host"`
	TopicID      string    `gorm:"size:36;not null;index" json:"topic_id"`
	Topic        Topic     `gorm:"foreignKey:TopicID" json:"topic"`
	Name         string    `gorm:"size:200;not null" json:"name"`
	Description  string    `gorm:"size:1000" json:"description"`
	Participants []User    `gorm:"many2many:room_participants;constraint:OnDelete:CASCADE" json:"participants"`
}

// Message is a timestamped post authored by a user within a room.
type Message struct {
	ID        string    `gorm:"primarykey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	RoomID    string    `gorm:"size:36;not null;index" json:"room_id"`
	Room      Room      `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"-"`
	UserID    string    `gorm:"size:36;not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	Body      string    `gorm:"size:4000;not null" json:"body"`
}

// TopicRepository defines the contract for topic storage.
type TopicRepository interface {
	// GetOrCreate returns the topic with the given name, creating it if
	// no topic by that name exists yet.
	GetOrCreate(ctx context.Context, name string) (*Topic, error)
	// Search returns topics whose name contains q (case-insensitive).
	// An empty q matches every topic.
	Search(ctx context.Context, q string) ([]Topic, error)
	// Recent returns up to limit topics, newest first.
	Recent(ctx context.Context, limit int) ([]Topic, error)
}

// RoomRepository defines the contract for room storage.
type RoomRepository interface {
	Create(ctx context.Context, room *Room) error
	// GetByID loads a room with its host, topic and participants.
	GetByID(ctx context.Context, id string) (*Room, error)
	Update(ctx context.Context, room *Room) error
	// Delete removes the room, its messages and its participant rows.
	Delete(ctx context.Context, id string) error
	// Search returns rooms whose topic name, name or description contains
	// q (case-insensitive), newest first. An empty q matches every room.
	Search(ctx context.Context, q string) ([]Room, error)
	// ByHost returns the rooms hosted by the given user, newest first.
	ByHost(ctx context.Context, userID string) ([]Room, error)
	// AddParticipant records that the user has posted in the room. Adding
	// an existing participant is a no-op.
	AddParticipant(ctx context.Context, roomID, userID string) error
}

// MessageRepository defines the contract for message storage.
type MessageRepository interface {
	Create(ctx context.Context, msg *Message) error
	GetByID(ctx context.Context, id string) (*Message, error)
	Delete(ctx context.Context, id string) error
	// ByRoom returns the room's messages, newest first.
	ByRoom(ctx context.Context, roomID string) ([]Message, error)
	// ByUser returns the user's messages, newest first.
	ByUser(ctx context.Context, userID string) ([]Message, error)
	// ByTopicQuery returns messages whose room's topic name contains q
	// (case-insensitive), newest first.
	ByTopicQuery(ctx context.Context, q string) ([]Message, error)
	// All returns every message, newest first.
	All(ctx context.Context) ([]Message, error)
}

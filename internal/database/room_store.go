package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mchadwick/parley/internal/domain"
)

// RoomStore implements domain.RoomRepository over GORM.
type RoomStore struct {
	db *gorm.DB
}

var _ domain.RoomRepository = (*RoomStore)(nil)

// NewRoomStore creates a new RoomStore.
func NewRoomStore(db *gorm.DB) *RoomStore {
	return &RoomStore{db: db}
}

// Create persists a new room.
func (s *RoomStore) Create(ctx context.Context, room *domain.Room) error {
	if room.ID == "" {
		room.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Omit("Participants", "Host", "Topic").Create(room).Error; err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

// GetByID retrieves a room with its host, topic and participants.
func (s *RoomStore) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	var room domain.Room
	err := s.db.WithContext(ctx).
		Preload("Host").
		Preload("Topic").
		Preload("Participants").
		First(&room, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find room: %w", err)
	}
	return &room, nil
}

// Update saves changes to the room's name, description and topic.
func (s *RoomStore) Update(ctx context.Context, room *domain.Room) error {
	result := s.db.WithContext(ctx).Model(&domain.Room{}).
		Where("id = ?", room.ID).
		Updates(map[string]any{
			"name":        room.Name,
			"description": room.Description,
			"topic_id":    room.TopicID,
		})
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the room, its messages and its participant rows. The
// cascade runs in one transaction so a partial delete never survives.
func (s *RoomStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room domain.Room
		if err := tx.First(&room, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("failed to find room: %w", err)
		}

		if err := tx.Where("room_id = ?", id).Delete(&domain.Message{}).Error; err != nil {
			return fmt.Errorf("failed to delete room messages: %w", err)
		}
		if err := tx.Model(&room).Association("Participants").Clear(); err != nil {
			return fmt.Errorf("failed to clear participants: %w", err)
		}
		if err := tx.Delete(&room).Error; err != nil {
			return fmt.Errorf("failed to delete room: %w", err)
		}
		return nil
	})
}

// Search returns rooms matching q on topic name, room name or
// description, case-insensitively. An empty q matches everything.
func (s *RoomStore) Search(ctx context.Context, q string) ([]domain.Room, error) {
	pattern := "%" + q + "%"
	var rooms []domain.Room
	err := s.db.WithContext(ctx).
		Preload("Host").
		Preload("Topic").
		Preload("Participants").
		Joins("JOIN topics ON topics.id = rooms.topic_id").
		Where(
			"topics.name LIKE ? COLLATE NOCASE OR rooms.name LIKE ? COLLATE NOCASE OR rooms.description LIKE ? COLLATE NOCASE",
			pattern, pattern, pattern,
		).
		Order("rooms.created_at DESC").
		Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search rooms: %w", err)
	}
	return rooms, nil
}

// ByHost returns the rooms hosted by the given user, newest first.
func (s *RoomStore) ByHost(ctx context.Context, userID string) ([]domain.Room, error) {
	var rooms []domain.Room
	err := s.db.WithContext(ctx).
		Preload("Host").
		Preload("Topic").
		Preload("Participants").
		Where("host_id = ?", userID).
		Order("created_at DESC").
		Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms by host: %w", err)
	}
	return rooms, nil
}

// AddParticipant records that the user has posted in the room. Appending
// an existing participant leaves the association unchanged.
func (s *RoomStore) AddParticipant(ctx context.Context, roomID, userID string) error {
	room := domain.Room{ID: roomID}
	user := domain.User{ID: userID}
	if err := s.db.WithContext(ctx).Model(&room).Association("Participants").Append(&user); err != nil {
		return fmt.Errorf("failed to add participant: %w", err)
	}
	return nil
}

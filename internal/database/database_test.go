package database_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mchadwick/parley/internal/database"
	"github.com/mchadwick/parley/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "parley_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *domain.User {
	t.Helper()

	user := &domain.User{Username: username, Password: "hashed"}
	require.NoError(t, database.NewUserStore(db).Create(context.Background(), user))
	return user
}

func createRoom(t *testing.T, db *gorm.DB, host *domain.User, topicName, name, description string) *domain.Room {
	t.Helper()

	ctx := context.Background()
	topic, err := database.NewTopicStore(db).GetOrCreate(ctx, topicName)
	require.NoError(t, err)

	room := &domain.Room{
		HostID:      host.ID,
		TopicID:     topic.ID,
		Name:        name,
		Description: description,
	}
	require.NoError(t, database.NewRoomStore(db).Create(ctx, room))
	return room
}

func TestUserStore_CreateAndLookup(t *testing.T) {
	db := newTestDB(t)
	store := database.NewUserStore(db)
	ctx := context.Background()

	user := createUser(t, db, "alice")
	assert.NotEmpty(t, user.ID)

	found, err := store.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = store.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserStore_DuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	store := database.NewUserStore(db)

	createUser(t, db, "alice")

	err := store.Create(context.Background(), &domain.User{Username: "alice", Password: "hashed"})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestUserStore_Update(t *testing.T) {
	db := newTestDB(t)
	store := database.NewUserStore(db)
	ctx := context.Background()

	user := createUser(t, db, "alice")
	user.Username = "alice2"
	user.Email = "alice@example.com"
	require.NoError(t, store.Update(ctx, user))

	found, err := store.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice2", found.Username)
	assert.Equal(t, "alice@example.com", found.Email)

	err = store.Update(ctx, &domain.User{ID: uuid.NewString(), Username: "ghost"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTopicStore_GetOrCreate(t *testing.T) {
	db := newTestDB(t)
	store := database.NewTopicStore(db)
	ctx := context.Background()

	first, err := store.GetOrCreate(ctx, "Cooking")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	// Same name must reuse the existing row.
	second, err := store.GetOrCreate(ctx, "Cooking")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	topics, err := store.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, topics, 1)
}

func TestTopicStore_SearchIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	store := database.NewTopicStore(db)
	ctx := context.Background()

	_, err := store.GetOrCreate(ctx, "Cooking")
	require.NoError(t, err)
	_, err = store.GetOrCreate(ctx, "Go")
	require.NoError(t, err)

	topics, err := store.Search(ctx, "cook")
	require.NoError(t, err)
	require.Len(t, topics, 1)
	assert.Equal(t, "Cooking", topics[0].Name)
}

func TestTopicStore_RecentLimits(t *testing.T) {
	db := newTestDB(t)
	store := database.NewTopicStore(db)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		_, err := store.GetOrCreate(ctx, name)
		require.NoError(t, err)
	}

	topics, err := store.Recent(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, topics, 5)
}

func TestRoomStore_SearchMatchesTopicNameAndDescription(t *testing.T) {
	db := newTestDB(t)
	store := database.NewRoomStore(db)
	ctx := context.Background()

	host := createUser(t, db, "alice")
	createRoom(t, db, host, "Cooking", "Pasta night", "all about noodles")
	createRoom(t, db, host, "Go", "Generics", "type parameters in practice")
	createRoom(t, db, host, "Go", "Channels", "nothing to see here")

	// Matches topic name, case-insensitively.
	rooms, err := store.Search(ctx, "go")
	require.NoError(t, err)
	assert.Len(t, rooms, 2)

	// Matches room name.
	rooms, err = store.Search(ctx, "pasta")
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "Pasta night", rooms[0].Name)
	assert.Equal(t, "Cooking", rooms[0].Topic.Name)
	assert.Equal(t, "alice", rooms[0].Host.Username)

	// Matches description.
	rooms, err = store.Search(ctx, "NOODLES")
	require.NoError(t, err)
	assert.Len(t, rooms, 1)

	// Empty query matches everything.
	rooms, err = store.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, rooms, 3)

	// No match.
	rooms, err = store.Search(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestRoomStore_UpdateAndByHost(t *testing.T) {
	db := newTestDB(t)
	store := database.NewRoomStore(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	room := createRoom(t, db, alice, "Go", "Generics", "desc")
	createRoom(t, db, bob, "Go", "Bob's room", "desc")

	topic, err := database.NewTopicStore(db).GetOrCreate(ctx, "Cooking")
	require.NoError(t, err)

	room.Name = "Renamed"
	room.Description = "new desc"
	room.TopicID = topic.ID
	require.NoError(t, store.Update(ctx, room))

	found, err := store.GetByID(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", found.Name)
	assert.Equal(t, "Cooking", found.Topic.Name)

	mine, err := store.ByHost(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, room.ID, mine[0].ID)
}

func TestRoomStore_AddParticipantIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	store := database.NewRoomStore(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	room := createRoom(t, db, alice, "Go", "Generics", "desc")

	require.NoError(t, store.AddParticipant(ctx, room.ID, bob.ID))
	require.NoError(t, store.AddParticipant(ctx, room.ID, bob.ID))

	found, err := store.GetByID(ctx, room.ID)
	require.NoError(t, err)
	require.Len(t, found.Participants, 1)
	assert.Equal(t, "bob", found.Participants[0].Username)
}

func TestRoomStore_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	rooms := database.NewRoomStore(db)
	messages := database.NewMessageStore(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	room := createRoom(t, db, alice, "Go", "Generics", "desc")
	other := createRoom(t, db, alice, "Go", "Other", "desc")

	require.NoError(t, messages.Create(ctx, &domain.Message{RoomID: room.ID, UserID: alice.ID, Body: "hi"}))
	require.NoError(t, messages.Create(ctx, &domain.Message{RoomID: room.ID, UserID: alice.ID, Body: "again"}))
	require.NoError(t, messages.Create(ctx, &domain.Message{RoomID: other.ID, UserID: alice.ID, Body: "elsewhere"}))
	require.NoError(t, rooms.AddParticipant(ctx, room.ID, alice.ID))

	require.NoError(t, rooms.Delete(ctx, room.ID))

	_, err := rooms.GetByID(ctx, room.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Messages of the deleted room are gone; the other room's survive.
	left, err := messages.All(ctx)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, other.ID, left[0].RoomID)

	assert.ErrorIs(t, rooms.Delete(ctx, room.ID), domain.ErrNotFound)
}

func TestMessageStore_ByRoomOrdersNewestFirst(t *testing.T) {
	db := newTestDB(t)
	store := database.NewMessageStore(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	room := createRoom(t, db, alice, "Go", "Generics", "desc")

	now := time.Now()
	older := &domain.Message{RoomID: room.ID, UserID: alice.ID, Body: "first", CreatedAt: now.Add(-time.Minute)}
	newer := &domain.Message{RoomID: room.ID, UserID: alice.ID, Body: "second", CreatedAt: now}
	require.NoError(t, store.Create(ctx, older))
	require.NoError(t, store.Create(ctx, newer))

	msgs, err := store.ByRoom(ctx, room.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "second", msgs[0].Body)
	assert.Equal(t, "alice", msgs[0].User.Username)
}

func TestMessageStore_ByTopicQuery(t *testing.T) {
	db := newTestDB(t)
	store := database.NewMessageStore(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	cooking := createRoom(t, db, alice, "Cooking", "Pasta", "desc")
	golang := createRoom(t, db, alice, "Go", "Generics", "desc")

	require.NoError(t, store.Create(ctx, &domain.Message{RoomID: cooking.ID, UserID: alice.ID, Body: "sauce"}))
	require.NoError(t, store.Create(ctx, &domain.Message{RoomID: golang.ID, UserID: alice.ID, Body: "types"}))

	msgs, err := store.ByTopicQuery(ctx, "cook")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "sauce", msgs[0].Body)

	// Empty query matches all messages, like the home page default.
	msgs, err = store.ByTopicQuery(ctx, "")
	require.NoError(t, err)
	assert.Len(t, msgs, 2)
}

func TestMessageStore_DeleteAndByUser(t *testing.T) {
	db := newTestDB(t)
	store := database.NewMessageStore(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	room := createRoom(t, db, alice, "Go", "Generics", "desc")

	msg := &domain.Message{RoomID: room.ID, UserID: alice.ID, Body: "hi"}
	require.NoError(t, store.Create(ctx, msg))

	mine, err := store.ByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	require.NoError(t, store.Delete(ctx, msg.ID))
	assert.ErrorIs(t, store.Delete(ctx, msg.ID), domain.ErrNotFound)

	_, err = store.GetByID(ctx, msg.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

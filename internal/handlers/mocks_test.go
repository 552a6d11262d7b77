package handlers_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mchadwick/parley/internal/domain"
	"github.com/mchadwick/parley/internal/pubsub"
)

// The fakes below are small in-memory implementations of the domain
// repositories, enough to drive the handlers without a database.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User // by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username {
			return domain.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	r.users[user.ID] = user
	return nil
}

type fakeTopicRepo struct {
	mu     sync.Mutex
	topics map[string]*domain.Topic // by id
}

func newFakeTopicRepo() *fakeTopicRepo {
	return &fakeTopicRepo{topics: make(map[string]*domain.Topic)}
}

func (r *fakeTopicRepo) GetOrCreate(_ context.Context, name string) (*domain.Topic, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.topics {
		if t.Name == name {
			return t, nil
		}
	}
	topic := &domain.Topic{ID: uuid.NewString(), Name: name, CreatedAt: time.Now()}
	r.topics[topic.ID] = topic
	return topic, nil
}

func (r *fakeTopicRepo) Search(_ context.Context, q string) ([]domain.Topic, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Topic
	for _, t := range r.topics {
		if contains(t.Name, q) {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeTopicRepo) Recent(ctx context.Context, limit int) ([]domain.Topic, error) {
	topics, err := r.Search(ctx, "")
	if err != nil {
		return nil, err
	}
	if len(topics) > limit {
		topics = topics[:limit]
	}
	return topics, nil
}

func (r *fakeTopicRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.topics)
}

type fakeRoomRepo struct {
	mu    sync.Mutex
	rooms map[string]*domain.Room

	users  *fakeUserRepo
	topics *fakeTopicRepo
}

func newFakeRoomRepo(users *fakeUserRepo, topics *fakeTopicRepo) *fakeRoomRepo {
	return &fakeRoomRepo{
		rooms:  make(map[string]*domain.Room),
		users:  users,
		topics: topics,
	}
}

func (r *fakeRoomRepo) hydrate(room *domain.Room) *domain.Room {
	out := *room
	if u, err := r.users.GetByID(context.Background(), room.HostID); err == nil {
		out.Host = *u
	}
	r.topics.mu.Lock()
	if t, ok := r.topics.topics[room.TopicID]; ok {
		out.Topic = *t
	}
	r.topics.mu.Unlock()
	return &out
}

func (r *fakeRoomRepo) Create(_ context.Context, room *domain.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if room.ID == "" {
		room.ID = uuid.NewString()
	}
	room.CreatedAt = time.Now()
	r.rooms[room.ID] = room
	return nil
}

func (r *fakeRoomRepo) GetByID(_ context.Context, id string) (*domain.Room, error) {
	r.mu.Lock()
	room, ok := r.rooms[id]
	r.mu.Unlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	return r.hydrate(room), nil
}

func (r *fakeRoomRepo) Update(_ context.Context, room *domain.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.rooms[room.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Name = room.Name
	stored.Description = room.Description
	stored.TopicID = room.TopicID
	return nil
}

func (r *fakeRoomRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rooms[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rooms, id)
	return nil
}

func (r *fakeRoomRepo) Search(_ context.Context, q string) ([]domain.Room, error) {
	r.mu.Lock()
	rooms := make([]*domain.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		rooms = append(rooms, room)
	}
	r.mu.Unlock()

	var out []domain.Room
	for _, room := range rooms {
		h := r.hydrate(room)
		if contains(h.Topic.Name, q) || contains(h.Name, q) || contains(h.Description, q) {
			out = append(out, *h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeRoomRepo) ByHost(ctx context.Context, userID string) ([]domain.Room, error) {
	all, err := r.Search(ctx, "")
	if err != nil {
		return nil, err
	}
	var out []domain.Room
	for _, room := range all {
		if room.HostID == userID {
			out = append(out, room)
		}
	}
	return out, nil
}

func (r *fakeRoomRepo) AddParticipant(ctx context.Context, roomID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[roomID]
	if !ok {
		return domain.ErrNotFound
	}
	for _, p := range room.Participants {
		if p.ID == userID {
			return nil
		}
	}
	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	room.Participants = append(room.Participants, *user)
	return nil
}

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages map[string]*domain.Message

	users *fakeUserRepo
	rooms *fakeRoomRepo
}

func newFakeMessageRepo(users *fakeUserRepo, rooms *fakeRoomRepo) *fakeMessageRepo {
	return &fakeMessageRepo{
		messages: make(map[string]*domain.Message),
		users:    users,
		rooms:    rooms,
	}
}

func (r *fakeMessageRepo) hydrate(msg *domain.Message) *domain.Message {
	out := *msg
	if u, err := r.users.GetByID(context.Background(), msg.UserID); err == nil {
		out.User = *u
	}
	return &out
}

func (r *fakeMessageRepo) Create(_ context.Context, msg *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	r.messages[msg.ID] = msg
	return nil
}

func (r *fakeMessageRepo) GetByID(_ context.Context, id string) (*domain.Message, error) {
	r.mu.Lock()
	msg, ok := r.messages[id]
	r.mu.Unlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	return r.hydrate(msg), nil
}

func (r *fakeMessageRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.messages[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.messages, id)
	return nil
}

func (r *fakeMessageRepo) list(filter func(*domain.Message) bool) []domain.Message {
	r.mu.Lock()
	msgs := make([]*domain.Message, 0, len(r.messages))
	for _, m := range r.messages {
		msgs = append(msgs, m)
	}
	r.mu.Unlock()

	var out []domain.Message
	for _, m := range msgs {
		if filter(m) {
			out = append(out, *r.hydrate(m))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *fakeMessageRepo) ByRoom(_ context.Context, roomID string) ([]domain.Message, error) {
	return r.list(func(m *domain.Message) bool { return m.RoomID == roomID }), nil
}

func (r *fakeMessageRepo) ByUser(_ context.Context, userID string) ([]domain.Message, error) {
	return r.list(func(m *domain.Message) bool { return m.UserID == userID }), nil
}

func (r *fakeMessageRepo) ByTopicQuery(ctx context.Context, q string) ([]domain.Message, error) {
	return r.list(func(m *domain.Message) bool {
		room, err := r.rooms.GetByID(ctx, m.RoomID)
		if err != nil {
			return false
		}
		return contains(room.Topic.Name, q)
	}), nil
}

func (r *fakeMessageRepo) All(_ context.Context) ([]domain.Message, error) {
	return r.list(func(*domain.Message) bool { return true }), nil
}

// fakePublisher records every published bus message.
type fakePublisher struct {
	mu        sync.Mutex
	published []pubsub.Message
}

func (p *fakePublisher) Publish(_ context.Context, msg pubsub.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, msg)
	return nil
}

func (p *fakePublisher) Close() error { return nil }

func (p *fakePublisher) topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.published))
	for _, m := range p.published {
		out = append(out, m.Topic)
	}
	return out
}

func contains(s, q string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(q))
}

package core

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

const defaultEventBuffer = 100

// ServiceConfig tunes a Service. The zero value is usable.
type ServiceConfig struct {
	Logger      *slog.Logger
	EventBuffer int // per-subscriber buffer, zero means 100
}

// Service is the entry point the presentation layer calls for every user action.
// Writes are serialized through a single lock; reads go straight to the store
// and observe the last committed state.
type Service struct {
	store  Store
	logger *slog.Logger

	writeMu sync.Mutex

	mu              sync.RWMutex
	subscribers     map[int]chan Event
	nextSub         int
	eventBufferSize int
	dropped         int
	closed          bool

	done     chan struct{}
	watchers sync.WaitGroup
}

// NewService creates a new Service on top of store.
func NewService(store Store, cfg ServiceConfig) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	size := cfg.EventBuffer
	if size <= 0 {
		size = defaultEventBuffer
	}
	return &Service{
		store:           store,
		logger:          logger,
		subscribers:     make(map[int]chan Event),
		eventBufferSize: size,
		done:            make(chan struct{}),
	}
}

// Store exposes the underlying store.
func (s *Service) Store() Store {
	return s.store
}

// InsertNote saves a new note and returns its ID.
func (s *Service) InsertNote(ctx context.Context, content string, tags []string) (string, error) {
	s.writeMu.Lock()
	id, err := s.store.InsertNote(ctx, content, tags)
	s.writeMu.Unlock()
	if err != nil {
		return "", err
	}

	s.logger.Debug("note inserted", "id", id, "tags", len(tags))
	s.publish(EventCreate, id)
	return id, nil
}

// UpdateNoteContent replaces the content of a note.
func (s *Service) UpdateNoteContent(ctx context.Context, noteID, content string) error {
	s.writeMu.Lock()
	err := s.store.UpdateNoteContent(ctx, noteID, content)
	s.writeMu.Unlock()
	if err != nil {
		return err
	}

	s.logger.Debug("note content updated", "id", noteID)
	s.publish(EventModify, noteID)
	return nil
}

// ReplaceNoteTags swaps the tag set of a note.
func (s *Service) ReplaceNoteTags(ctx context.Context, noteID string, tags []string) error {
	s.writeMu.Lock()
	err := s.store.ReplaceNoteTags(ctx, noteID, tags)
	s.writeMu.Unlock()
	if err != nil {
		return err
	}

	s.logger.Debug("note tags replaced", "id", noteID, "tags", len(tags))
	s.publish(EventRetag, noteID)
	return nil
}

// SearchNotes runs a library search.
func (s *Service) SearchNotes(ctx context.Context, query string, tags []string, limit int) ([]NoteListItem, error) {
	return s.store.SearchNotes(ctx, query, tags, limit)
}

// GetNoteContent returns the content of a live note.
func (s *Service) GetNoteContent(ctx context.Context, noteID string) (string, bool, error) {
	return s.store.GetNoteContent(ctx, noteID)
}

// GetNoteTags returns the sorted tags of a live note.
func (s *Service) GetNoteTags(ctx context.Context, noteID string) ([]string, error) {
	return s.store.GetNoteTags(ctx, noteID)
}

// ListTagsPrefix drives tag autocompletion.
func (s *Service) ListTagsPrefix(ctx context.Context, prefix string, limit int) ([]string, error) {
	return s.store.ListTagsPrefix(ctx, prefix, limit)
}

// GetNote returns the full record of a live note if the store supports it.
func (s *Service) GetNote(ctx context.Context, noteID string) (Note, bool, error) {
	b, ok := s.store.(Browsable)
	if !ok {
		return Note{}, false, errors.New("store does not support full note reads")
	}
	return b.GetNote(ctx, noteID)
}

// ListNotes returns every live note if the store supports it.
func (s *Service) ListNotes(ctx context.Context) ([]Note, error) {
	b, ok := s.store.(Browsable)
	if !ok {
		return nil, errors.New("store does not support full note reads")
	}
	return b.ListNotes(ctx)
}

// Watch subscribes to committed write events until ctx is done or the
// service is closed, whichever comes first.
// Delivery never blocks writers: events beyond the buffer are dropped.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, errors.New("service is closed")
	}

	id := s.nextSub
	s.nextSub++
	ch := make(chan Event, s.eventBufferSize)
	s.subscribers[id] = ch

	s.watchers.Add(1)
	go func() {
		defer s.watchers.Done()
		select {
		case <-ctx.Done():
			s.unsubscribe(id)
		case <-s.done:
		}
	}()

	return ch, nil
}

func (s *Service) unsubscribe(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ch, ok := s.subscribers[id]; ok {
		delete(s.subscribers, id)
		close(ch)
	}
}

func (s *Service) publish(t EventType, id string) {
	e := Event{Type: t, ID: id, Timestamp: time.Now().Unix()}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ch := range s.subscribers {
		select {
		case ch <- e:
		default:
			s.dropped++
			if s.dropped == 1 || s.dropped%defaultEventBuffer == 0 {
				s.logger.Warn("event subscriber is falling behind", "dropped", s.dropped)
			}
		}
	}
}

// Close closes every subscription and the underlying store.
func (s *Service) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.done)
	for id, ch := range s.subscribers {
		delete(s.subscribers, id)
		close(ch)
	}
	s.mu.Unlock()
	s.watchers.Wait()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.store.Close()
}

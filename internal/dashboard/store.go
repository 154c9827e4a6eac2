// Package dashboard holds the card store behind the demo admin dashboard
// widget. Cards are local scratch state with an explicit load/save
// lifecycle: loaded from a JSON file at startup, seeded with defaults when
// the file is absent, and saved back on every mutation. They are never
// synchronized with MongoDB.
package dashboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/trendora-shop/storefront-backend/internal/models"
)

var ErrCardNotFound = errors.New("card not found")

type Store struct {
	mu    sync.Mutex
	path  string
	cards []models.Card
}

func defaultCards() []models.Card {
	return []models.Card{
		{
			ID:          uuid.NewString(),
			Title:       "Lizard",
			Description: "Lizards are a widespread group of squamate reptiles.",
			Image:       "/static/images/cards/contemplative-reptile.jpg",
		},
		{
			ID:          uuid.NewString(),
			Title:       "Snake",
			Description: "Snakes are elongated, legless, carnivorous reptiles.",
			Image:       "/static/images/cards/contemplative-snake.jpg",
		},
		{
			ID:          uuid.NewString(),
			Title:       "Turtle",
			Description: "Turtles are reptiles with a special bony or cartilaginous shell.",
			Image:       "/static/images/cards/contemplative-turtle.jpg",
		},
	}
}

// Open loads the store from path, seeding it with the default cards when
// the file does not exist yet.
func Open(path string) (*Store, error) {
	store := &Store{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		store.cards = defaultCards()
		return store, store.save()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read card store: %w", err)
	}

	if err := json.Unmarshal(data, &store.cards); err != nil {
		return nil, fmt.Errorf("failed to parse card store: %w", err)
	}
	return store, nil
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cards, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

func (s *Store) List() []models.Card {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards := make([]models.Card, len(s.cards))
	copy(cards, s.cards)
	return cards
}

func (s *Store) Add(card models.Card) (models.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	card.ID = uuid.NewString()
	s.cards = append(s.cards, card)
	return card, s.save()
}

func (s *Store) Update(id string, card models.Card) (models.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cards {
		if s.cards[i].ID == id {
			card.ID = id
			s.cards[i] = card
			return card, s.save()
		}
	}
	return models.Card{}, ErrCardNotFound
}

func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cards {
		if s.cards[i].ID == id {
			s.cards = append(s.cards[:i], s.cards[i+1:]...)
			return s.save()
		}
	}
	return ErrCardNotFound
}

package session

import (
	"strconv"
	"time"
)

// Card is a display-level payment card. Numbers are masked placeholders and
// never real PANs; balance stays a formatted string because the app only
// renders it.
type Card struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Name         string    `json:"name,omitempty"`
	Balance      string    `json:"balance"`
	CardNumber   string    `json:"cardNumber"`
	Gradient     [2]string `json:"gradient"`
	IsFrozen     bool      `json:"isFrozen"`
	IsInfoHidden bool      `json:"isInfoHidden"`
	Limit        float64   `json:"limit"`
	CardType     string    `json:"cardType,omitempty"` // "virtual" | "premium"
	Pattern      int       `json:"pattern,omitempty"`
}

// CardUpdate is a partial card; nil fields are left untouched.
type CardUpdate struct {
	Type         *string
	Name         *string
	Balance      *string
	CardNumber   *string
	Gradient     *[2]string
	IsFrozen     *bool
	IsInfoHidden *bool
	Limit        *float64
	CardType     *string
	Pattern      *int
}

// Every fresh install starts with the same three placeholder cards.
func seedCards() []Card {
	return []Card{
		{
			ID:         "1",
			Type:       "Card",
			Balance:    "0.00",
			CardNumber: "•••• •••• •••• 0000",
			Gradient:   [2]string{"#667eea", "#764ba2"},
			Limit:      1000,
		},
		{
			ID:         "2",
			Type:       "Card",
			Balance:    "0.00",
			CardNumber: "•••• •••• •••• 0000",
			Gradient:   [2]string{"#f093fb", "#f5576c"},
			Limit:      2000,
		},
		{
			ID:         "3",
			Type:       "Card",
			Balance:    "0.00",
			CardNumber: "•••• •••• •••• 0000",
			Gradient:   [2]string{"#4facfe", "#00f2fe"},
			Limit:      1500,
		},
	}
}

// Cards returns a snapshot of the collection in insertion order.
func (s *Store) Cards() []Card {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Card, len(s.cards))
	copy(out, s.cards)
	return out
}

// AddCard appends a card and returns its assigned ID. IDs derive from the
// creation timestamp; when two cards land in the same millisecond the ID is
// bumped until unique, so the collection invariant holds even in tight loops.
func (s *Store) AddCard(card Card) string {
	s.mu.Lock()

	ms := time.Now().UnixMilli()
	id := strconv.FormatInt(ms, 10)
	for s.cardIndex(id) >= 0 {
		ms++
		id = strconv.FormatInt(ms, 10)
	}

	card.ID = id
	s.cards = append(s.cards, card)
	s.mu.Unlock()
	s.notify()
	return id
}

// UpdateCard merges the given fields into the card with the given ID.
// Silently does nothing when the ID is absent.
func (s *Store) UpdateCard(id string, updates CardUpdate) {
	s.mu.Lock()
	i := s.cardIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}

	card := &s.cards[i]
	if updates.Type != nil {
		card.Type = *updates.Type
	}
	if updates.Name != nil {
		card.Name = *updates.Name
	}
	if updates.Balance != nil {
		card.Balance = *updates.Balance
	}
	if updates.CardNumber != nil {
		card.CardNumber = *updates.CardNumber
	}
	if updates.Gradient != nil {
		card.Gradient = *updates.Gradient
	}
	if updates.IsFrozen != nil {
		card.IsFrozen = *updates.IsFrozen
	}
	if updates.IsInfoHidden != nil {
		card.IsInfoHidden = *updates.IsInfoHidden
	}
	if updates.Limit != nil {
		card.Limit = *updates.Limit
	}
	if updates.CardType != nil {
		card.CardType = *updates.CardType
	}
	if updates.Pattern != nil {
		card.Pattern = *updates.Pattern
	}
	s.mu.Unlock()
	s.notify()
}

// DeleteCard removes the card with the given ID. Silently does nothing when
// the ID is absent.
func (s *Store) DeleteCard(id string) {
	s.mu.Lock()
	i := s.cardIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.cards = append(s.cards[:i], s.cards[i+1:]...)
	s.mu.Unlock()
	s.notify()
}

// cardIndex returns the position of a card, or -1. Caller holds the lock.
func (s *Store) cardIndex(id string) int {
	for i := range s.cards {
		if s.cards[i].ID == id {
			return i
		}
	}
	return -1
}

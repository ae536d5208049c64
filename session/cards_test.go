package session

import "testing"

func TestStoreStartsWithThreePlaceholderCards(t *testing.T) {
	store := NewStore()

	cards := store.Cards()
	if len(cards) != 3 {
		t.Fatalf("expected 3 seeded cards, got %d", len(cards))
	}
	for _, c := range cards {
		if c.CardNumber != "•••• •••• •••• 0000" {
			t.Errorf("card %s has unexpected number %q", c.ID, c.CardNumber)
		}
		if c.Balance != "0.00" {
			t.Errorf("card %s has unexpected balance %q", c.ID, c.Balance)
		}
	}
}

func TestAddCardAssignsUniqueIDs(t *testing.T) {
	store := NewStore()
	before := store.Cards()

	id := store.AddCard(Card{Type: "Card", Balance: "0.00", CardNumber: "•••• •••• •••• 1234"})

	after := store.Cards()
	if len(after) != len(before)+1 {
		t.Fatalf("size = %d, want %d", len(after), len(before)+1)
	}
	for _, c := range before {
		if c.ID == id {
			t.Fatalf("new id %q collides with existing card", id)
		}
	}

	// Tight loop: same-millisecond additions must still get distinct IDs.
	seen := map[string]bool{id: true}
	for i := 0; i < 50; i++ {
		next := store.AddCard(Card{Type: "Card"})
		if seen[next] {
			t.Fatalf("duplicate id %q on iteration %d", next, i)
		}
		seen[next] = true
	}
}

func TestDeleteCard(t *testing.T) {
	store := NewStore()

	store.DeleteCard("2")
	if got := len(store.Cards()); got != 2 {
		t.Fatalf("size after delete = %d, want 2", got)
	}

	// Absent id is a silent no-op.
	store.DeleteCard("does-not-exist")
	if got := len(store.Cards()); got != 2 {
		t.Errorf("size after absent-id delete = %d, want 2", got)
	}
}

func TestUpdateCardPartialMerge(t *testing.T) {
	store := NewStore()

	name := "Travel"
	limit := 500.0
	store.UpdateCard("1", CardUpdate{Name: &name, Limit: &limit})

	card := store.Cards()[0]
	if card.Name != "Travel" {
		t.Errorf("name = %q, want Travel", card.Name)
	}
	if card.Limit != 500 {
		t.Errorf("limit = %v, want 500", card.Limit)
	}
	if card.Balance != "0.00" || card.CardNumber != "•••• •••• •••• 0000" {
		t.Errorf("untouched fields changed: %+v", card)
	}
}

func TestUpdateCardAbsentIDIsNoop(t *testing.T) {
	store := NewStore()
	before := store.Cards()

	frozen := true
	store.UpdateCard("missing", CardUpdate{IsFrozen: &frozen})

	after := store.Cards()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("card %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestFreezeToggleRoundTrip(t *testing.T) {
	store := NewStore()
	original := store.Cards()[0].IsFrozen

	frozen := !original
	store.UpdateCard("1", CardUpdate{IsFrozen: &frozen})
	back := original
	store.UpdateCard("1", CardUpdate{IsFrozen: &back})

	if got := store.Cards()[0].IsFrozen; got != original {
		t.Errorf("isFrozen after toggle-toggle = %v, want %v", got, original)
	}
}

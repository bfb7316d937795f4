package deck

import (
	"fmt"
	"math/rand"
)

// Card is one entry in the catalog. Identity is the name.
type Card struct {
	Name    string
	Meaning string
}

// Deck is a fixed, ordered card catalog.
type Deck struct {
	cards []Card
}

// Default returns the standard nine-card mini deck.
func Default() *Deck {
	return New([]Card{
		{Name: "The Fool", Meaning: "New beginnings, spontaneity"},
		{Name: "The Magician", Meaning: "Power, skill, concentration"},
		{Name: "The High Priestess", Meaning: "Mystery, intuition"},
		{Name: "The Lovers", Meaning: "Love, harmony"},
		{Name: "Death", Meaning: "Endings, transformation"},
		{Name: "The Tower", Meaning: "Sudden change, upheaval"},
		{Name: "The Sun", Meaning: "Success, vitality, joy"},
		{Name: "The Moon", Meaning: "Illusion, fear, subconscious"},
		{Name: "The Star", Meaning: "Hope, inspiration"},
	})
}

func New(cards []Card) *Deck {
	return &Deck{cards: cards}
}

func (d *Deck) Size() int {
	return len(d.cards)
}

// Sample draws k distinct cards uniformly at random without replacement
// using a partial Fisher-Yates pass over a copy of the catalog.
func (d *Deck) Sample(k int) ([]Card, error) {
	if k > len(d.cards) {
		return nil, fmt.Errorf("deck: sample size %d exceeds deck size %d", k, len(d.cards))
	}

	pool := make([]Card, len(d.cards))
	copy(pool, d.cards)

	for i := 0; i < k; i++ {
		j := i + rand.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k], nil
}

// Filter returns the catalog entries whose names appear in names,
// in catalog order. Unknown names are dropped.
func (d *Deck) Filter(names []string) []Card {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}

	var out []Card
	for _, c := range d.cards {
		if want[c.Name] {
			out = append(out, c)
		}
	}
	return out
}

package deal

import "math/rand"

// Deck owns the draw pile and the discard pile. The draw pile is a
// stack drawn from the tail; when it runs dry mid-draw the discard pile
// is shuffled back in.
type Deck struct {
	draw    []*Card
	discard []*Card
	rng     *rand.Rand
}

func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{draw: catalog(), rng: rng}
	d.shuffle()
	return d
}

func (d *Deck) shuffle() {
	d.rng.Shuffle(len(d.draw), func(i, j int) {
		d.draw[i], d.draw[j] = d.draw[j], d.draw[i]
	})
}

// Draw removes up to n cards. Fewer are returned only when draw pile
// and discard pile together cannot cover n.
func (d *Deck) Draw(n int) []*Card {
	out := make([]*Card, 0, n)
	for len(out) < n {
		if len(d.draw) == 0 {
			if len(d.discard) == 0 {
				break
			}
			d.draw = d.discard
			d.discard = nil
			d.shuffle()
		}
		last := len(d.draw) - 1
		out = append(out, d.draw[last])
		d.draw = d.draw[:last]
	}
	return out
}

func (d *Deck) Discard(c *Card) {
	d.discard = append(d.discard, c)
}

// Count is the number of cards left in the draw pile.
func (d *Deck) Count() int { return len(d.draw) }

// DiscardPile returns the discard pile, oldest first. Callers must not
// mutate the returned slice.
func (d *Deck) DiscardPile() []*Card { return d.discard }

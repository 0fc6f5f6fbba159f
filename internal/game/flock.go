package game

// Flock owns the live geese.
type Flock struct {
	Geese []Goose
	rng   *Rand
}

func NewFlock(r *Rand, f Field, n int) *Flock {
	fl := &Flock{Geese: make([]Goose, 0, n), rng: r}
	for i := 0; i < n; i++ {
		fl.Geese = append(fl.Geese, NewGoose(r, f))
	}
	return fl
}

func (fl *Flock) Len() int { return len(fl.Geese) }

// FlockResult summarizes one flock tick.
type FlockResult struct {
	Herded  int  // geese removed through the goal this tick
	Emptied bool // the tick took the flock from non-empty to empty
}

// Update moves every goose, records poop drops and removes geese touching
// the goal. Removal filters in place so no goose is skipped or moved twice.
func (fl *Flock) Update(p1, p2 *PlayerSlot, f Field, fo *Fouling) FlockResult {
	before := len(fl.Geese)
	kept := fl.Geese[:0]
	for i := range fl.Geese {
		g := fl.Geese[i]
		if g.Update(fl.rng, p1, p2, f) && fo != nil {
			fo.Drop(g.X, g.Y)
		}
		if g.Bounds().Touches(f.Goal) {
			continue
		}
		kept = append(kept, g)
	}
	// Clear the tail so removed geese do not linger in the backing array.
	for i := len(kept); i < before; i++ {
		fl.Geese[i] = Goose{}
	}
	fl.Geese = kept

	herded := before - len(kept)
	return FlockResult{
		Herded:  herded,
		Emptied: before > 0 && len(kept) == 0,
	}
}

// Package selection keeps the set of selected artworks across page navigation.
package selection

import "github.com/lehigh-university-libraries/artworks/internal/models"

// Ledger maps artwork id to its minimal projection. Iteration follows insertion
// order; overwriting an entry keeps its position. Not safe for concurrent use.
type Ledger struct {
	entries map[int]models.SelectedArtwork
	order   []int
}

// New returns an empty ledger
func New() *Ledger {
	return &Ledger{
		entries: make(map[int]models.SelectedArtwork),
	}
}

// ApplyPageSelection reconciles the ledger against one page. Every artwork on
// the page is either stored (id in selectedIDs) or removed (id not in it).
// Ids in selectedIDs that are not on the page are ignored.
func (l *Ledger) ApplyPageSelection(page []models.Artwork, selectedIDs map[int]struct{}) {
	for _, artwork := range page {
		if _, ok := selectedIDs[artwork.ID]; ok {
			l.put(artwork.Minimal())
		} else {
			l.Remove(artwork.ID)
		}
	}
}

func (l *Ledger) put(item models.SelectedArtwork) {
	if _, exists := l.entries[item.ID]; !exists {
		l.order = append(l.order, item.ID)
	}
	l.entries[item.ID] = item
}

// Remove deletes id from the ledger. Absent ids are a no-op.
func (l *Ledger) Remove(id int) {
	if _, exists := l.entries[id]; !exists {
		return
	}
	delete(l.entries, id)
	for i, v := range l.order {
		if v == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

// Clear empties the ledger
func (l *Ledger) Clear() {
	l.entries = make(map[int]models.SelectedArtwork)
	l.order = nil
}

// Values returns the selected artworks in insertion order
func (l *Ledger) Values() []models.SelectedArtwork {
	values := make([]models.SelectedArtwork, 0, len(l.order))
	for _, id := range l.order {
		values = append(values, l.entries[id])
	}
	return values
}

// Has reports whether id is selected
func (l *Ledger) Has(id int) bool {
	_, ok := l.entries[id]
	return ok
}

// Len returns the number of selected artworks
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Intersect returns the artworks of page that are in the ledger, in page order
func (l *Ledger) Intersect(page []models.Artwork) []models.Artwork {
	selected := make([]models.Artwork, 0)
	for _, artwork := range page {
		if l.Has(artwork.ID) {
			selected = append(selected, artwork)
		}
	}
	return selected
}

// IDSet builds the set form expected by ApplyPageSelection
func IDSet(ids []int) map[int]struct{} {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

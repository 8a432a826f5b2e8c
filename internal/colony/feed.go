package colony

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"
)

// Feed maintains the live pawn and item collections from host snapshots.
// Enumeration order is first-seen order, so rank results stay stable
// between scans when scores tie.
type Feed struct {
	mu        sync.RWMutex
	pawns     map[string]*Pawn
	pawnOrder []string
	items     map[string]*Item
	itemOrder []string
	updatedAt time.Time
	logger    *slog.Logger
}

func NewFeed(logger *slog.Logger) *Feed {
	return &Feed{
		pawns:  make(map[string]*Pawn),
		items:  make(map[string]*Item),
		logger: logger,
	}
}

// Attach subscribes the feed to pawn and item lifecycle subjects.
func (f *Feed) Attach(c Client) error {
	if err := c.Subscribe(SubjectPawnSnapshots, f.onPawnSnapshot); err != nil {
		return err
	}
	if err := c.Subscribe(SubjectPawnRemovals, f.onPawnRemoved); err != nil {
		return err
	}
	if err := c.Subscribe(SubjectItemSnapshots, f.onItemSnapshot); err != nil {
		return err
	}
	return c.Subscribe(SubjectItemRemovals, f.onItemRemoved)
}

func (f *Feed) onPawnSnapshot(subject string, data []byte) {
	var p Pawn
	if err := json.Unmarshal(data, &p); err != nil {
		f.logger.Warn("bad pawn snapshot", "subject", subject, "error", err)
		return
	}
	if p.ID == "" {
		f.logger.Warn("pawn snapshot without id", "subject", subject)
		return
	}
	f.UpsertPawn(&p)
}

func (f *Feed) onPawnRemoved(subject string, data []byte) {
	var ev struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &ev); err != nil || ev.ID == "" {
		return
	}
	f.RemovePawn(ev.ID)
}

func (f *Feed) onItemSnapshot(subject string, data []byte) {
	var it Item
	if err := json.Unmarshal(data, &it); err != nil {
		f.logger.Warn("bad item snapshot", "subject", subject, "error", err)
		return
	}
	if it.ID == "" {
		f.logger.Warn("item snapshot without id", "subject", subject)
		return
	}
	f.UpsertItem(&it)
}

func (f *Feed) onItemRemoved(subject string, data []byte) {
	var ev struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &ev); err != nil || ev.ID == "" {
		return
	}
	f.RemoveItem(ev.ID)
}

func (f *Feed) UpsertPawn(p *Pawn) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, seen := f.pawns[p.ID]; !seen {
		f.pawnOrder = append(f.pawnOrder, p.ID)
	}
	f.pawns[p.ID] = p
	f.updatedAt = time.Now()
}

func (f *Feed) RemovePawn(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, seen := f.pawns[id]; !seen {
		return
	}
	delete(f.pawns, id)
	f.pawnOrder = remove(f.pawnOrder, id)
	f.updatedAt = time.Now()
}

func (f *Feed) UpsertItem(it *Item) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, seen := f.items[it.ID]; !seen {
		f.itemOrder = append(f.itemOrder, it.ID)
	}
	f.items[it.ID] = it
	f.updatedAt = time.Now()
}

func (f *Feed) RemoveItem(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, seen := f.items[id]; !seen {
		return
	}
	delete(f.items, id)
	f.itemOrder = remove(f.itemOrder, id)
	f.updatedAt = time.Now()
}

// Pawns returns the live pawns in first-seen order.
func (f *Feed) Pawns() []*Pawn {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]*Pawn, 0, len(f.pawnOrder))
	for _, id := range f.pawnOrder {
		out = append(out, f.pawns[id])
	}
	return out
}

// Items returns the live items in first-seen order.
func (f *Feed) Items() []*Item {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]*Item, 0, len(f.itemOrder))
	for _, id := range f.itemOrder {
		out = append(out, f.items[id])
	}
	return out
}

// Counts returns the live pawn and item counts plus last update time.
func (f *Feed) Counts() (pawns, items int, updatedAt time.Time) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.pawns), len(f.items), f.updatedAt
}

func remove(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}

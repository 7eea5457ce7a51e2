package order

import "sync"

// RecordStore holds the client's local echo of submitted orders. Appends
// come from the submission workflow; status changes arrive from the order
// service and replace the stored record wholesale (last-write-wins, no
// merge).
type RecordStore struct {
	mu     sync.RWMutex
	orders []Order
}

func NewRecordStore() *RecordStore {
	return &RecordStore{}
}

func (r *RecordStore) Append(ord Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, ord)
}

// List returns orders most-recent-first.
func (r *RecordStore) List() []Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, 0, len(r.orders))
	for i := len(r.orders) - 1; i >= 0; i-- {
		out = append(out, r.orders[i])
	}
	return out
}

func (r *RecordStore) Get(id string) (Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ord := range r.orders {
		if ord.ID == id {
			return ord, true
		}
	}
	return Order{}, false
}

// Replace overwrites the stored record with the same id. Unknown ids are
// ignored; the client is not the authority for order state.
func (r *RecordStore) Replace(ord Order) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == ord.ID {
			r.orders[i] = ord
			return
		}
	}
}

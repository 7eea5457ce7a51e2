package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordStore(t *testing.T) {
	t.Run("List is most-recent-first", func(t *testing.T) {
		r := NewRecordStore()
		r.Append(Order{ID: "a", CreatedAt: time.Now().Add(-2 * time.Hour)})
		r.Append(Order{ID: "b", CreatedAt: time.Now().Add(-1 * time.Hour)})
		r.Append(Order{ID: "c", CreatedAt: time.Now()})

		list := r.List()

		require.Len(t, list, 3)
		assert.Equal(t, "c", list[0].ID)
		assert.Equal(t, "b", list[1].ID)
		assert.Equal(t, "a", list[2].ID)
	})

	t.Run("Get", func(t *testing.T) {
		r := NewRecordStore()
		r.Append(Order{ID: "a", Total: 12.00})

		ord, ok := r.Get("a")
		require.True(t, ok)
		assert.Equal(t, 12.00, ord.Total)

		_, ok = r.Get("missing")
		assert.False(t, ok)
	})

	t.Run("Replace is wholesale last-write-wins", func(t *testing.T) {
		r := NewRecordStore()
		r.Append(Order{ID: "a", PaymentStatus: PaymentPending, FulfillmentStatus: FulfillmentPending})

		r.Replace(Order{ID: "a", PaymentStatus: PaymentPaid, FulfillmentStatus: FulfillmentShipped})

		ord, _ := r.Get("a")
		assert.Equal(t, PaymentPaid, ord.PaymentStatus)
		assert.Equal(t, FulfillmentShipped, ord.FulfillmentStatus)
	})

	t.Run("Replace with unknown id is ignored", func(t *testing.T) {
		r := NewRecordStore()
		r.Append(Order{ID: "a"})

		r.Replace(Order{ID: "ghost"})

		assert.Len(t, r.List(), 1)
	})
}

package order_test

import (
	"errors"
	"io"
	"testing"

	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	name string
	seen []order.Status
	log  *[]string
}

func (r *recorder) OnUpdate(o *order.Order) error {
	r.seen = append(r.seen, o.Status())
	if r.log != nil {
		*r.log = append(*r.log, r.name)
	}
	return nil
}

type lineSink []string

func (s lineSink) Write(p []byte) (int, error) {
	return len(p), nil
}

type writerObserver struct {
	label string
	out   io.Writer
}

func (w writerObserver) OnUpdate(*order.Order) error {
	return nil
}

func TestOrder_Observers(t *testing.T) {
	t.Run("each observer is notified once per change, in registration order", func(t *testing.T) {
		o := newOrder(t)
		var log []string
		first := &recorder{name: "first", log: &log}
		second := &recorder{name: "second", log: &log}
		o.AddObserver(first)
		o.AddObserver(second)

		require.NoError(t, o.ChangeStatus(order.Preparing))
		require.NoError(t, o.ChangeStatus(order.Ready))

		assert.Equal(t, []string{"first", "second", "first", "second"}, log)
		assert.Equal(t, []order.Status{order.Preparing, order.Ready}, first.seen)
	})

	t.Run("observers see the new status", func(t *testing.T) {
		o := newOrder(t)
		var seen order.Status
		o.AddObserver(order.ObserverFunc(func(o *order.Order) error {
			seen = o.Status()
			return nil
		}))

		require.NoError(t, o.ChangeStatus(order.EnRoute))

		assert.Equal(t, order.EnRoute, seen)
	})

	t.Run("duplicate registration is notified twice", func(t *testing.T) {
		o := newOrder(t)
		rec := &recorder{name: "r"}
		o.AddObserver(rec)
		o.AddObserver(rec)

		require.NoError(t, o.ChangeStatus(order.Ready))

		assert.Len(t, rec.seen, 2)
		assert.Equal(t, 2, o.ObserverCount())
	})

	t.Run("nil observer is ignored", func(t *testing.T) {
		o := newOrder(t)
		o.AddObserver(nil)

		assert.Zero(t, o.ObserverCount())
		require.NoError(t, o.ChangeStatus(order.Ready))
	})

	t.Run("changing status without observers succeeds", func(t *testing.T) {
		require.NoError(t, newOrder(t).ChangeStatus(order.Delivered))
	})
}

func TestOrder_RemoveObserver(t *testing.T) {
	t.Run("removed observer is not notified", func(t *testing.T) {
		o := newOrder(t)
		kept := &recorder{name: "kept"}
		removed := &recorder{name: "removed"}
		o.AddObserver(kept)
		o.AddObserver(removed)

		assert.True(t, o.RemoveObserver(removed))
		require.NoError(t, o.ChangeStatus(order.Preparing))

		assert.Len(t, kept.seen, 1)
		assert.Empty(t, removed.seen)
	})

	t.Run("only the first registration is removed", func(t *testing.T) {
		o := newOrder(t)
		rec := &recorder{name: "r"}
		o.AddObserver(rec)
		o.AddObserver(rec)

		assert.True(t, o.RemoveObserver(rec))
		assert.Equal(t, 1, o.ObserverCount())
	})

	t.Run("unknown observer is a no-op", func(t *testing.T) {
		o := newOrder(t)
		o.AddObserver(&recorder{name: "a"})

		assert.False(t, o.RemoveObserver(&recorder{name: "a"}))
		assert.False(t, o.RemoveObserver(nil))
		assert.Equal(t, 1, o.ObserverCount())
	})

	t.Run("value observers match by their fields", func(t *testing.T) {
		o := newOrder(t)
		o.AddObserver(writerObserver{label: "courier", out: io.Discard})

		assert.False(t, o.RemoveObserver(writerObserver{label: "client", out: io.Discard}))
		assert.True(t, o.RemoveObserver(writerObserver{label: "courier", out: io.Discard}))
		assert.Zero(t, o.ObserverCount())
	})

	t.Run("value observers holding uncomparable writers are not found", func(t *testing.T) {
		o := newOrder(t)
		o.AddObserver(writerObserver{label: "courier", out: lineSink{}})

		assert.NotPanics(t, func() {
			assert.False(t, o.RemoveObserver(writerObserver{label: "courier", out: lineSink{}}))
		})
		assert.Equal(t, 1, o.ObserverCount())
	})

	t.Run("function observers cannot be removed", func(t *testing.T) {
		o := newOrder(t)
		fn := order.ObserverFunc(func(*order.Order) error { return nil })
		o.AddObserver(fn)

		assert.False(t, o.RemoveObserver(fn))
		assert.Equal(t, 1, o.ObserverCount())
	})
}

func TestOrder_NotificationRound(t *testing.T) {
	t.Run("observers added during a round are notified from the next round", func(t *testing.T) {
		o := newOrder(t)
		late := &recorder{name: "late"}
		added := false
		o.AddObserver(order.ObserverFunc(func(o *order.Order) error {
			if !added {
				o.AddObserver(late)
				added = true
			}
			return nil
		}))

		require.NoError(t, o.ChangeStatus(order.Preparing))
		assert.Empty(t, late.seen)

		require.NoError(t, o.ChangeStatus(order.Ready))
		assert.Equal(t, []order.Status{order.Ready}, late.seen)
	})

	t.Run("observers removed during a round are still notified in that round", func(t *testing.T) {
		o := newOrder(t)
		target := &recorder{name: "target"}
		o.AddObserver(order.ObserverFunc(func(o *order.Order) error {
			o.RemoveObserver(target)
			return nil
		}))
		o.AddObserver(target)

		require.NoError(t, o.ChangeStatus(order.Preparing))
		require.NoError(t, o.ChangeStatus(order.Ready))

		assert.Equal(t, []order.Status{order.Preparing}, target.seen)
	})

	t.Run("first failure stops the round but keeps the status", func(t *testing.T) {
		o := newOrder(t)
		boom := errors.New("printer jammed")
		before := &recorder{name: "before"}
		after := &recorder{name: "after"}
		o.AddObserver(before)
		o.AddObserver(order.ObserverFunc(func(*order.Order) error { return boom }))
		o.AddObserver(after)

		err := o.ChangeStatus(order.Ready)

		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "READY")
		assert.Equal(t, order.Ready, o.Status())
		assert.Len(t, before.seen, 1)
		assert.Empty(t, after.seen)
	})
}

package order

import (
	"fmt"
	"reflect"
	"slices"
)

// Observer is notified after every status change of an order it is registered on.
// The order is passed as context; observers decide on their own whether a change
// is relevant to them.
type Observer interface {
	OnUpdate(o *Order) error
}

// ObserverFunc adapts a function to the Observer interface.
// Function observers cannot be removed because functions are not comparable.
type ObserverFunc func(o *Order) error

// OnUpdate calls f(o).
func (f ObserverFunc) OnUpdate(o *Order) error {
	return f(o)
}

// AddObserver appends obs to the notification list. The same observer may be
// registered more than once and is then notified once per registration.
func (o *Order) AddObserver(obs Observer) {
	if obs == nil {
		return
	}
	o.observers = append(o.observers, obs)
}

// RemoveObserver removes the first registered observer equal to obs and reports
// whether one was found. Pointer observers match by identity, value observers by
// their fields. It never panics; observers that cannot be compared are not found.
func (o *Order) RemoveObserver(obs Observer) bool {
	idx := slices.IndexFunc(o.observers, func(registered Observer) bool {
		return sameObserver(registered, obs)
	})
	if idx < 0 {
		return false
	}
	o.observers = slices.Delete(o.observers, idx, idx+1)
	return true
}

// ObserverCount returns the number of registrations.
func (o *Order) ObserverCount() int {
	return len(o.observers)
}

// notifyAll runs one notification round over a snapshot of the observer list, so
// registrations made during the round only apply to later rounds.
func (o *Order) notifyAll() error {
	snapshot := slices.Clone(o.observers)
	for _, obs := range snapshot {
		if err := obs.OnUpdate(o); err != nil {
			return fmt.Errorf("notify %T about %s: %w", obs, o.status, err)
		}
	}
	return nil
}

// sameObserver compares observers with ==. Value observers whose fields hold
// uncomparable dynamic values never match.
func sameObserver(a, b Observer) (same bool) {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta == nil || ta != tb || !ta.Comparable() {
		return false
	}

	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}

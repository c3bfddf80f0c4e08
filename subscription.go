/*
 * Copyright © 2025 Casetrail Systems Inc., All rights reserved.
 */

package dataset

import (
	"github.com/casetrail/dataset/errors"
)

// Listener is a callback invoked with a full snapshot of the store after
// every qualifying mutation. The snapshot reflects the complete state at
// the moment of delivery; every listener in one notification pass receives
// the same snapshot value. Listeners must not mutate the slice and must not
// call back into the owning DataSet's mutation methods.
type Listener[T Entity] func(snapshot []T)

// UnsubscribeFunc cancels a registration made with Subscribe. Calling it
// more than once, or after the listener is already gone, has no effect.
type UnsubscribeFunc func()

// subscriberList tracks listeners by registration token rather than by
// function value: two registrations of the same function are independent
// entries, each individually cancelable.
type subscriberList[T Entity] struct {
	nextToken uint64
	entries   []subscriberEntry[T]
}

type subscriberEntry[T Entity] struct {
	token uint64
	fn    Listener[T]
}

func newSubscriberList[T Entity]() *subscriberList[T] {
	return &subscriberList[T]{}
}

func (l *subscriberList[T]) add(fn Listener[T]) UnsubscribeFunc {
	l.nextToken++
	token := l.nextToken
	l.entries = append(l.entries, subscriberEntry[T]{token: token, fn: fn})
	return func() { l.remove(token) }
}

func (l *subscriberList[T]) remove(token uint64) {
	for i, e := range l.entries {
		if e.token == token {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

func (l *subscriberList[T]) contains(token uint64) bool {
	for _, e := range l.entries {
		if e.token == token {
			return true
		}
	}
	return false
}

// broadcast invokes every currently-registered listener with snapshot, in
// registration order. It iterates over a copy of the registration list so a
// listener disposing subscriptions mid-pass cannot skew iteration; entries
// removed before their turn are skipped. A panicking listener is reported
// through onFault and never prevents delivery to subsequent listeners.
func (l *subscriberList[T]) broadcast(snapshot []T, onFault func(error)) (delivered, faults int) {
	entries := make([]subscriberEntry[T], len(l.entries))
	copy(entries, l.entries)

	for _, e := range entries {
		if !l.contains(e.token) {
			continue
		}
		if ok := invoke(e, snapshot, onFault); ok {
			delivered++
		} else {
			faults++
		}
	}
	return delivered, faults
}

func invoke[T Entity](e subscriberEntry[T], snapshot []T, onFault func(error)) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			if onFault != nil {
				onFault(errors.NewListenerFaultError(e.token, r))
			}
		}
	}()
	e.fn(snapshot)
	return true
}

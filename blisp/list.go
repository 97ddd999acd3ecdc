//-----------------------------------------------------------------------------
// Copyright (c) 2026-present the blisp authors
//
// Licensed under the terms described in LICENSE.txt.
//-----------------------------------------------------------------------------

package blisp

import "io"

// List is the ordered-sequence compound value. The Quoted flag
// distinguishes the two variants spec describes: an Active-list (Quoted
// == false) is reduced on evaluation by applying its head to the
// evaluated tail; a Quoted-list is inert data the built-ins manipulate
// directly.
//
// A slice backs the child sequence rather than a cons chain: any
// ordered-sequence representation with O(1) access and O(n) insert/remove
// is an equally valid reading of the spec, and a slice gives the
// pop-front/append operations the application protocol and the list
// builtins need without hand-rolled cell management.
type List struct {
	Quoted bool
	Items  []Object
}

// NewActive creates an Active-list from the given items.
func NewActive(items ...Object) *List { return &List{Items: items} }

// NewQuoted creates a Quoted-list from the given items.
func NewQuoted(items ...Object) *List { return &List{Quoted: true, Items: items} }

// AsActive returns a shallow copy of l reinterpreted as an Active-list,
// used by `eval` and by function application to turn a quoted body or
// argument into something the evaluator will reduce.
func (l *List) AsActive() *List {
	items := make([]Object, len(l.Items))
	copy(items, l.Items)
	return &List{Quoted: false, Items: items}
}

// TypeName returns "S-Expression" for an Active-list or "Q-Expression" for
// a Quoted-list.
func (l *List) TypeName() string {
	if l.Quoted {
		return "Q-Expression"
	}
	return "S-Expression"
}

// IsEqual compares two lists pointwise: same kind, same length, and every
// item equal in order.
func (l *List) IsEqual(other Object) bool {
	ol, ok := other.(*List)
	if !ok || l.Quoted != ol.Quoted || len(l.Items) != len(ol.Items) {
		return false
	}
	for i, it := range l.Items {
		if !it.IsEqual(ol.Items[i]) {
			return false
		}
	}
	return true
}

// Clone deep-copies l and every item it holds.
func (l *List) Clone() Object {
	items := make([]Object, len(l.Items))
	for i, it := range l.Items {
		items[i] = it.Clone()
	}
	return &List{Quoted: l.Quoted, Items: items}
}

func (l *List) String() string { return Repr(l) }

// Print renders an Active-list in `( ... )` and a Quoted-list in `{ ... }`,
// items separated by a single space.
func (l *List) Print(w io.Writer) (int, error) {
	open, close := "(", ")"
	if l.Quoted {
		open, close = "{", "}"
	}
	length, err := io.WriteString(w, open)
	if err != nil {
		return length, err
	}
	for i, it := range l.Items {
		if i > 0 {
			n, err := io.WriteString(w, " ")
			length += n
			if err != nil {
				return length, err
			}
		}
		n, err := it.Print(w)
		length += n
		if err != nil {
			return length, err
		}
	}
	n, err := io.WriteString(w, close)
	return length + n, err
}

// Join concatenates the items of several lists into a new list carrying
// the kind (Active or Quoted) of the first one.
func Join(lists ...*List) *List {
	var total int
	for _, l := range lists {
		total += len(l.Items)
	}
	items := make([]Object, 0, total)
	for _, l := range lists {
		items = append(items, l.Items...)
	}
	quoted := true
	if len(lists) > 0 {
		quoted = lists[0].Quoted
	}
	return &List{Quoted: quoted, Items: items}
}

// GetList returns obj as a *List if it is one.
func GetList(obj Object) (*List, bool) {
	l, ok := obj.(*List)
	return l, ok
}

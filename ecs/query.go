package ecs

import "github.com/milk9111/skyclimber/ecs/component"

// ForEach calls fn for every entity that has a component of kind a. The set of
// visited entities is fixed when the call starts, so fn may add, remove or
// destroy.
func ForEach[A any](w *World, a component.ComponentKind[A], fn func(Entity, *A)) {
	sa := w.store(a.ID(), false)
	for _, id := range sa.ids() {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		va, ok := sa.Get(id).(*A)
		if !ok {
			continue
		}
		fn(e, va)
	}
}

// ForEach2 visits entities that have both kinds.
func ForEach2[A, B any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := w.store(a.ID(), false)
	sb := w.store(b.ID(), false)
	if sa == nil || sb == nil {
		return
	}
	for _, id := range sa.ids() {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		va, okA := sa.Get(id).(*A)
		vb, okB := sb.Get(id).(*B)
		if !okA || !okB {
			continue
		}
		fn(e, va, vb)
	}
}

// ForEach3 visits entities that have all three kinds.
func ForEach3[A, B, C any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sc := w.store(c.ID(), false)
	if sc == nil {
		return
	}
	ForEach2(w, a, b, func(e Entity, va *A, vb *B) {
		vc, ok := sc.Get(e.id()).(*C)
		if !ok {
			return
		}
		fn(e, va, vb, vc)
	})
}

// ForEach4 visits entities that have all four kinds.
func ForEach4[A, B, C, D any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], d component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	sd := w.store(d.ID(), false)
	if sd == nil {
		return
	}
	ForEach3(w, a, b, c, func(e Entity, va *A, vb *B, vc *C) {
		vd, ok := sd.Get(e.id()).(*D)
		if !ok {
			return
		}
		fn(e, va, vb, vc, vd)
	})
}

// First returns the first live entity carrying kind a.
func First[A any](w *World, a component.ComponentKind[A]) (Entity, bool) {
	sa := w.store(a.ID(), false)
	if sa == nil {
		return 0, false
	}
	for _, id := range sa.denseEntities {
		if e, ok := w.entities.handle(id); ok {
			return e, true
		}
	}
	return 0, false
}

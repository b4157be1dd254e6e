/*
File    : svlex/preprocessor/arena.go
Author  : svlex contributors
*/

// Package preprocessor implements the façade over the lexer: directive
// dispatch on the grave-accent introducer, the `define` macro-
// collection algorithm, an arena-backed macro table, and the debug
// dump formatter.
package preprocessor

// arenaSlabSize is the number of MacroFormalArgument slots allocated
// per slab; chosen to be comfortably larger than a typical macro's
// argument count so several definitions share one slab.
const arenaSlabSize = 16

// formalArgumentArena is a bump/slab allocator for MacroFormalArgument
// records, giving every MacroInfo's argument list a uniform lifetime
// tied to the owning Preprocessor instead of one small allocation per
// argument. It stands in for original_source's BumpPtrAllocator-backed
// setArgumentList: Go's GC makes raw pointer-bump allocation unsafe, so
// this allocates slabs (arenaSlabSize slots, or exactly enough for a
// longer list) and hands out sub-slices instead.
type formalArgumentArena struct {
	slabs [][]MacroFormalArgument
}

func newFormalArgumentArena() *formalArgumentArena {
	return &formalArgumentArena{}
}

// allocate copies src into arena-owned storage and returns the copy
// (nil for an empty src). The copy is bumped into the free tail of the
// newest slab when it fits, otherwise a new slab is started.
func (a *formalArgumentArena) allocate(src []MacroFormalArgument) []MacroFormalArgument {
	if len(src) == 0 {
		return nil
	}
	if n := len(a.slabs); n > 0 {
		last := a.slabs[n-1]
		if cap(last)-len(last) >= len(src) {
			from := len(last)
			last = append(last, src...)
			a.slabs[n-1] = last
			return last[from:len(last):len(last)]
		}
	}
	slabSize := arenaSlabSize
	if len(src) > slabSize {
		slabSize = len(src)
	}
	slab := make([]MacroFormalArgument, len(src), slabSize)
	copy(slab, src)
	a.slabs = append(a.slabs, slab)
	return slab
}

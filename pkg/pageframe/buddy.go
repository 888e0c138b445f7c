package pageframe

import (
	"fmt"

	"github.com/eduos/kernelcore/pkg/irq"
	"github.com/eduos/kernelcore/pkg/kpanic"
	"github.com/eduos/kernelcore/pkg/types"
)

// freeList is one free_area[order] entry: a doubly linked list of free
// blocks at that order plus its own count (block count, not page count).
type freeList struct {
	head, tail int
	nrFree     int
}

// Instance is one buddy allocator for one memory zone. It owns the page
// descriptor table, MAX_ORDER free-lists, and the order-0 page cache
// sitting in front of them.
type Instance struct {
	irq irq.Guard

	name string
	cfg  Config

	pages      []Descriptor
	pagesTotal int

	freeArea []freeList // len == cfg.MaxOrder

	cacheHead, cacheTail int
	cacheSize            int
}

// New initializes a buddy instance over pageCount contiguous page frames.
// pageCount must be non-zero and an exact multiple of the max-order block
// size (1<<(cfg.MaxOrder-1)); any tail residue is rejected rather than
// dropped. A zero Config takes package defaults.
func New(name string, pageCount int, cfg Config) (*Instance, error) {
	cfg = cfg.normalize()

	if pageCount == 0 {
		return nil, ErrZeroPages
	}

	maxOrder := cfg.MaxOrder - 1
	blockSize := 1 << maxOrder
	if pageCount%blockSize != 0 {
		return nil, ErrMisaligned
	}

	inst := &Instance{
		name:       name,
		cfg:        cfg,
		pages:      make([]Descriptor, pageCount),
		pagesTotal: pageCount,
		freeArea:   make([]freeList, cfg.MaxOrder),
	}
	for k := range inst.freeArea {
		inst.freeArea[k].head = listEnd
		inst.freeArea[k].tail = listEnd
	}
	inst.cacheHead, inst.cacheTail = listEnd, listEnd

	for i := range inst.pages {
		inst.pages[i] = Descriptor{idx: i, buddyPrev: listEnd, buddyNext: listEnd, cachePrev: listEnd, cacheNext: listEnd}
	}

	for base := 0; base < pageCount; base += blockSize {
		inst.pages[base].Flags = FlagFree | FlagRoot
		inst.pages[base].Order = maxOrder
		inst.pushBuddy(maxOrder, base)
	}

	return inst, nil
}

// Name returns the instance's human-readable identity.
func (b *Instance) Name() string { return b.name }

// Alloc returns the root descriptor of a free block of exactly 1<<order
// contiguous pages, removed from the free-lists.
func (b *Instance) Alloc(order int) (*Descriptor, error) {
	st := b.irq.Save()
	defer b.irq.Restore(st)
	return b.allocLocked(order)
}

func (b *Instance) allocLocked(order int) (*Descriptor, error) {
	if order < 0 || order >= b.cfg.MaxOrder {
		return nil, ErrInvalidOrder
	}

	k := order
	for k < b.cfg.MaxOrder && b.freeArea[k].nrFree == 0 {
		k++
	}
	if k == b.cfg.MaxOrder {
		return nil, ErrExhausted
	}

	idx := b.popBuddyFront(k)
	b.pages[idx].Flags &^= FlagFree

	for k > order {
		k--
		rightIdx := idx + (1 << k)
		b.pages[rightIdx].Flags = FlagFree | FlagRoot
		b.pages[rightIdx].Order = k
		b.pushBuddy(k, rightIdx)
	}

	d := &b.pages[idx]
	d.Order = order
	d.Flags |= FlagRoot
	return d, nil
}

// Free returns a previously allocated block, coalescing with its buddy
// chain as far as possible.
func (b *Instance) Free(d *Descriptor) error {
	st := b.irq.Save()
	defer b.irq.Restore(st)
	return b.freeLocked(d)
}

func (b *Instance) freeLocked(d *Descriptor) error {
	idx := d.idx
	if idx < 0 || idx >= b.pagesTotal {
		return ErrOutOfRange
	}
	if b.pages[idx].Flags.free() {
		kpanic.Corrupt("pageframe.Free", fmt.Sprintf("%s: double free of block at index %d", b.name, idx))
		return ErrDoubleFree
	}
	if !b.pages[idx].Flags.root() {
		kpanic.Corrupt("pageframe.Free", fmt.Sprintf("%s: free of non-root descriptor at index %d", b.name, idx))
		return ErrNotRoot
	}

	k := b.pages[idx].Order
	for k < b.cfg.MaxOrder-1 {
		buddyIdx := idx ^ (1 << k)
		if buddyIdx >= b.pagesTotal {
			break
		}
		bd := &b.pages[buddyIdx]
		if !bd.Flags.free() || bd.Order != k {
			break
		}
		// A FREE order-0 buddy may be parked in the page cache rather than
		// on free_area[0]; it is not available for coalescing.
		if bd.cachePrev != listEnd || bd.cacheNext != listEnd || b.cacheHead == buddyIdx {
			break
		}

		b.unlinkBuddy(k, buddyIdx)

		lo, hi := idx, buddyIdx
		if buddyIdx < idx {
			lo, hi = buddyIdx, idx
		}
		b.pages[hi].Flags &^= FlagRoot
		b.pages[hi].Order = 0

		idx = lo
		k++
	}

	b.pages[idx].Order = k
	b.pages[idx].Flags = FlagFree | FlagRoot
	b.pushBuddy(k, idx)
	return nil
}

// TotalSpace is the total number of pages managed by the instance.
func (b *Instance) TotalSpace() types.Bytes { return types.ToBytes(uint64(b.pagesTotal)) }

// FreeSpace is the number of pages currently free in the buddy free-lists
// (not including the page cache).
func (b *Instance) FreeSpace() types.Bytes {
	st := b.irq.Save()
	defer b.irq.Restore(st)
	return types.ToBytes(uint64(b.freePagesLocked()))
}

func (b *Instance) freePagesLocked() int {
	var n int
	for k, fl := range b.freeArea {
		n += fl.nrFree * (1 << k)
	}
	return n
}

// CachedSpace is the number of order-0 pages currently parked in the page
// cache.
func (b *Instance) CachedSpace() types.Bytes {
	st := b.irq.Save()
	defer b.irq.Restore(st)
	return types.ToBytes(uint64(b.cacheSize))
}

// String renders a human-readable summary: per-order free-block counts
// plus the total, free, and cached page counts.
func (b *Instance) String() string {
	st := b.irq.Save()
	defer b.irq.Restore(st)

	s := fmt.Sprintf("buddy %q: %d pages total, %d free, %d cached, orders:",
		b.name, b.pagesTotal, b.freePagesLocked(), b.cacheSize)
	for k, fl := range b.freeArea {
		s += fmt.Sprintf(" [%d]=%d", k, fl.nrFree)
	}
	return s
}

// --- index-based intrusive free-list helpers ---

func (b *Instance) pushBuddy(order, idx int) {
	fl := &b.freeArea[order]
	p := &b.pages[idx]
	p.buddyPrev = listEnd
	p.buddyNext = fl.head
	if fl.head != listEnd {
		b.pages[fl.head].buddyPrev = idx
	} else {
		fl.tail = idx
	}
	fl.head = idx
	fl.nrFree++
}

// popBuddyFront removes and returns the head of free_area[order]. Callers
// must only call this when nrFree > 0.
func (b *Instance) popBuddyFront(order int) int {
	idx := b.freeArea[order].head
	b.unlinkBuddy(order, idx)
	return idx
}

func (b *Instance) unlinkBuddy(order, idx int) {
	fl := &b.freeArea[order]
	p := &b.pages[idx]
	if p.buddyPrev != listEnd {
		b.pages[p.buddyPrev].buddyNext = p.buddyNext
	} else {
		fl.head = p.buddyNext
	}
	if p.buddyNext != listEnd {
		b.pages[p.buddyNext].buddyPrev = p.buddyPrev
	} else {
		fl.tail = p.buddyPrev
	}
	p.buddyPrev, p.buddyNext = listEnd, listEnd
	fl.nrFree--
}

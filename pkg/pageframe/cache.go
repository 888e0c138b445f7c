package pageframe

import "github.com/eduos/kernelcore/pkg/system/util"

// cache.go implements the order-0 page cache sitting in front of the
// buddy free-lists: a LIFO list of order-0 blocks kept warm so the hot
// path avoids the split/coalesce machinery, refilled and drained against
// LOW/MID/HIGH watermarks.

// FillRatio reports how full the cache is relative to its High watermark,
// clamped to [0,1] for reporting (0 when High is unconfigured).
func (b *Instance) FillRatio() float64 {
	st := b.irq.Save()
	defer b.irq.Restore(st)
	return util.Clamp01(util.SafeDiv(float64(b.cacheSize), float64(b.cfg.High)))
}

// CachedAlloc returns an order-0 block from the cache, refilling from the
// buddy allocator first if the cache has dropped below Low. Refill pulls
// pages up to Mid.
func (b *Instance) CachedAlloc() (*Descriptor, error) {
	st := b.irq.Save()
	defer b.irq.Restore(st)

	if b.cacheSize < b.cfg.Low {
		b.refillLocked()
	}
	if b.cacheSize == 0 {
		return nil, ErrCacheEmpty
	}
	return b.popCacheFront(), nil
}

// CachedFree returns an order-0 block to the cache, draining back down to
// Mid through the buddy allocator's Free if the cache has risen above High.
func (b *Instance) CachedFree(d *Descriptor) error {
	st := b.irq.Save()
	defer b.irq.Restore(st)

	if d.Order != 0 {
		return ErrCacheOrderMismatch
	}
	if b.pages[d.idx].Flags.free() {
		return ErrDoubleFree
	}

	b.pages[d.idx].Flags = FlagFree | FlagRoot
	b.pushCache(d.idx)

	if b.cacheSize > b.cfg.High {
		b.drainLocked()
	}
	return nil
}

// refillLocked pulls order-0 blocks out of the buddy allocator (splitting
// higher-order blocks as needed) until the cache reaches Mid or the buddy
// allocator has nothing left to offer.
func (b *Instance) refillLocked() {
	mid := b.cfg.Mid()
	for b.cacheSize < mid {
		d, err := b.allocLocked(0)
		if err != nil {
			return
		}
		b.pages[d.idx].Flags |= FlagFree
		b.pushCache(d.idx)
	}
}

// drainLocked pushes order-0 blocks from the cache back into the buddy
// allocator (coalescing as their buddies allow) until the cache falls to
// Mid.
func (b *Instance) drainLocked() {
	mid := b.cfg.Mid()
	for b.cacheSize > mid {
		d := b.popCacheFront()
		d.Flags &^= FlagFree
		_ = b.freeLocked(d)
	}
}

func (b *Instance) pushCache(idx int) {
	p := &b.pages[idx]
	p.cachePrev = listEnd
	p.cacheNext = b.cacheHead
	if b.cacheHead != listEnd {
		b.pages[b.cacheHead].cachePrev = idx
	} else {
		b.cacheTail = idx
	}
	b.cacheHead = idx
	b.cacheSize++
}

// popCacheFront removes and returns the head of the cache list. Callers
// must only call this when cacheSize > 0.
func (b *Instance) popCacheFront() *Descriptor {
	idx := b.cacheHead
	p := &b.pages[idx]
	b.cacheHead = p.cacheNext
	if b.cacheHead != listEnd {
		b.pages[b.cacheHead].cachePrev = listEnd
	} else {
		b.cacheTail = listEnd
	}
	p.cachePrev, p.cacheNext = listEnd, listEnd
	b.cacheSize--
	p.Flags &^= FlagFree
	return p
}

package pageframe

import "errors"

var (
	// ErrZeroPages is returned by New when pageCount == 0.
	ErrZeroPages = errors.New("pageframe: page count must be > 0")

	// ErrMisaligned is returned by New when the region's page count is not
	// an exact multiple of the max-order block size; tail residue is
	// rejected rather than silently dropped.
	ErrMisaligned = errors.New("pageframe: region length does not align to the max-order block size")

	// ErrInvalidOrder is returned by Alloc when order is out of [0, MAX_ORDER).
	ErrInvalidOrder = errors.New("pageframe: order out of range")

	// ErrExhausted is returned by Alloc when no block of the requested
	// order or higher is free. Recoverable: the caller decides whether to
	// retry, sleep, or propagate.
	ErrExhausted = errors.New("pageframe: no free block of sufficient order")

	// ErrOutOfRange is returned by Free when the descriptor's index falls
	// outside the instance's page table.
	ErrOutOfRange = errors.New("pageframe: descriptor index out of range")

	// ErrDoubleFree is returned by Free when the block is already FREE.
	// Corruption-class: also reported through pkg/kpanic.
	ErrDoubleFree = errors.New("pageframe: block is already free")

	// ErrNotRoot is returned by Free when the block is not a root
	// descriptor. Corruption-class: also reported through pkg/kpanic.
	ErrNotRoot = errors.New("pageframe: freed block is not a root descriptor")

	// ErrCacheOrderMismatch is returned by CachedFree when the descriptor's
	// recorded order is not 0 — the cache holds order-0 blocks only.
	ErrCacheOrderMismatch = errors.New("pageframe: page cache accepts only order-0 blocks")

	// ErrCacheEmpty is returned by CachedAlloc when the cache and, after
	// refill, the buddy allocator both have no order-0 block to offer.
	ErrCacheEmpty = errors.New("pageframe: page cache and buddy allocator both exhausted")
)

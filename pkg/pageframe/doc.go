// Package pageframe implements the buddy-system physical page allocator and
// its order-0 page cache: a flat page descriptor table, MAX_ORDER
// free-lists, and a watermark-regulated cache layered in front of them.
//
// # Descriptor table
//
// Instance owns a contiguous, arena-style []Descriptor, one entry per page
// frame. Free-list membership is represented as doubly linked lists threaded
// through index fields on Descriptor rather than native pointers — an
// arena+index design that gives O(1) unlink of a known descriptor without
// Go pointers aliasing into a slice that might be reallocated.
//
// Only the root (lowest-addressed) descriptor of a free block is linked into
// a list, and it carries FREE|ROOT: a buddy free-list at its current order,
// or (for order-0 blocks only) the page cache, never both. The root of an
// allocated block keeps ROOT with FREE clear; the other descriptors of a
// block are never linked. Alloc/Free use the buddy links,
// CachedAlloc/CachedFree use the cache link.
//
// # Concurrency
//
// Every exported Instance method that reads or changes the free-lists or
// the cache takes the instance's pkg/irq.Guard for its whole body:
// interrupts disabled on entry, prior interrupt state restored on exit,
// including on error exits. Name and TotalSpace read fields fixed at
// construction and take no guard.
package pageframe

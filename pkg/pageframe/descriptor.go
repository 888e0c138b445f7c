package pageframe

// Flags packs the descriptor's two orthogonal state bits, FREE and ROOT,
// into a single byte.
type Flags uint8

const (
	// FlagFree marks a descriptor as currently representing a free block.
	FlagFree Flags = 1 << iota
	// FlagRoot marks a descriptor as the first (lowest-address) page of
	// its block. Only root descriptors appear on free-lists or carry a
	// meaningful Order.
	FlagRoot
)

func (f Flags) free() bool { return f&FlagFree != 0 }
func (f Flags) root() bool { return f&FlagRoot != 0 }

// listEnd is the "not linked" sentinel for the index-based intrusive lists.
const listEnd = -1

// Descriptor is one physical page frame's bookkeeping record. idx is the
// descriptor's own position in Instance.pages, set once by New and never
// changed; it lets Free(d) recover d's array index without unsafe pointer
// arithmetic.
type Descriptor struct {
	idx   int
	Flags Flags
	Order int

	// buddyPrev/buddyNext thread this descriptor into free_area[Order]
	// when it is a free buddy-system root. listEnd when not linked.
	buddyPrev, buddyNext int

	// cachePrev/cacheNext thread this descriptor into the order-0 page
	// cache. listEnd when not linked. Mutually exclusive with the buddy
	// links: a descriptor is in at most one of the two lists at a time.
	cachePrev, cacheNext int
}

// Index returns the descriptor's position in its owning Instance's table.
func (d *Descriptor) Index() int { return d.idx }

// Free reports whether the descriptor currently represents a free block.
func (d *Descriptor) Free() bool { return d.Flags.free() }

// Root reports whether the descriptor is the root of its block.
func (d *Descriptor) Root() bool { return d.Flags.root() }

package sim

import "strings"

// FrameSet is the ordered collection of resident pages.
// It starts empty and grows by appending until it reaches capacity; after that
// pages are only replaced in place, so slot order is stable apart from the
// overwritten slot.
type FrameSet struct {
	slots    []Page
	capacity int
}

// NewFrameSet creates an empty FrameSet with the given capacity.
// Capacity is validated by Run; a non-positive capacity yields a set that is
// always full.
func NewFrameSet(capacity int) *FrameSet {
	if capacity < 0 {
		capacity = 0
	}
	return &FrameSet{
		slots:    make([]Page, 0, capacity),
		capacity: capacity,
	}
}

// Capacity returns the configured number of frames.
func (f *FrameSet) Capacity() int { return f.capacity }

// Len returns the number of occupied slots.
func (f *FrameSet) Len() int { return len(f.slots) }

// Full reports whether every slot is occupied.
func (f *FrameSet) Full() bool { return len(f.slots) >= f.capacity }

// Contains reports whether page is resident.
func (f *FrameSet) Contains(page Page) bool {
	return f.IndexOf(page) >= 0
}

// IndexOf returns the slot holding page, or -1.
func (f *FrameSet) IndexOf(page Page) int {
	for i, p := range f.slots {
		if p == page {
			return i
		}
	}
	return -1
}

// At returns the page in slot i.
func (f *FrameSet) At(i int) Page { return f.slots[i] }

// Append places page into the next free slot. Returns false when full.
func (f *FrameSet) Append(page Page) bool {
	if f.Full() {
		return false
	}
	f.slots = append(f.slots, page)
	return true
}

// Replace overwrites slot i with page and returns the evicted page.
func (f *FrameSet) Replace(i int, page Page) Page {
	old := f.slots[i]
	f.slots[i] = page
	return old
}

// Pages returns a copy of the occupied slots in slot order.
func (f *FrameSet) Pages() []Page {
	out := make([]Page, len(f.slots))
	copy(out, f.slots)
	return out
}

// Padded renders the frame set as exactly Capacity() entries, filling unused
// trailing slots with EmptySlot.
func (f *FrameSet) Padded() []string {
	out := make([]string, f.capacity)
	for i := range out {
		if i < len(f.slots) {
			out[i] = string(f.slots[i])
		} else {
			out[i] = EmptySlot
		}
	}
	return out
}

// String renders occupied slots space-prefixed, e.g. " 4 3 1".
func (f *FrameSet) String() string {
	var b strings.Builder
	for _, p := range f.slots {
		b.WriteByte(' ')
		b.WriteString(string(p))
	}
	return b.String()
}

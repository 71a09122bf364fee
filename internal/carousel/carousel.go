// Package carousel implements the paging state machine behind the landing
// page strips: a fixed slice of records plus a synthetic trailing "see more"
// entry, paged by however many items the current viewport width fits.
package carousel

import "gamerstore-service/internal/domain/games"

// MaxRecords caps how many records one strip carries before the see-more
// entry is appended.
const MaxRecords = 10

// Viewport breakpoints, in CSS pixels.
const (
	narrowMaxWidth = 600
	mediumMaxWidth = 900
)

// Item is one carousel cell: a game card, or the synthetic trailing
// see-more card linking to the full catalog.
type Item struct {
	Game    games.Game
	SeeMore bool
	Href    string
}

// VisibleCount is the responsive item count for a viewport width.
func VisibleCount(width int) int {
	switch {
	case width <= narrowMaxWidth:
		return 1
	case width <= mediumMaxWidth:
		return 2
	default:
		return 3
	}
}

// Controller owns the paging state of one carousel instance. Instances are
// independent; two strips on the same page never share state. The index
// invariant 0 <= index <= max(0, total-visible) is enforced by clamping
// after every mutation, never by rejecting one.
type Controller struct {
	items   []Item
	width   int
	index   int
	visible int
}

// New builds a ready Controller from at most MaxRecords records, appending
// the see-more entry, sized for the given viewport width.
func New(records []games.Game, seeMoreHref string, width int) *Controller {
	if len(records) > MaxRecords {
		records = records[:MaxRecords]
	}
	items := make([]Item, 0, len(records)+1)
	for _, g := range records {
		items = append(items, Item{Game: g})
	}
	items = append(items, Item{SeeMore: true, Href: seeMoreHref})

	c := &Controller{items: items, width: width}
	c.refresh()
	return c
}

// Next advances by one page of visible items, clamped to the last page.
// At the bound it still recomputes visibility and disabled state.
func (c *Controller) Next() {
	c.refresh()
	c.index += c.visible
	c.clamp()
}

// Prev moves back by one page of visible items, clamped to zero.
func (c *Controller) Prev() {
	c.refresh()
	c.index -= c.visible
	c.clamp()
}

// Resize records a new viewport width and recomputes visible count, index
// clamp, and therefore offset. The leading visible item stays leading.
func (c *Controller) Resize(width int) {
	c.width = width
	c.refresh()
}

// Seek jumps the leading item to index, clamped to the valid range. Used
// to restore position from a request parameter.
func (c *Controller) Seek(index int) {
	c.refresh()
	c.index = index
	c.clamp()
}

// Index returns the current leading item index.
func (c *Controller) Index() int { return c.index }

// Visible returns the current responsive item count.
func (c *Controller) Visible() int { return c.visible }

// Total returns the item count including the see-more entry.
func (c *Controller) Total() int { return len(c.items) }

// MaxIndex is the highest index the leading item may take.
func (c *Controller) MaxIndex() int {
	max := len(c.items) - c.visible
	if max < 0 {
		return 0
	}
	return max
}

// Offset is the track translation in percent of track width:
// -index * (100 / visible). Index zero yields exactly 0, never the IEEE
// negative zero a negated float would produce.
func (c *Controller) Offset() float64 {
	if c.index == 0 {
		return 0
	}
	return -float64(c.index) * (100.0 / float64(c.visible))
}

// PrevDisabled reports whether the previous control is non-actionable.
func (c *Controller) PrevDisabled() bool { return c.index == 0 }

// NextDisabled reports whether the next control is non-actionable.
func (c *Controller) NextDisabled() bool { return c.index >= c.MaxIndex() }

// Items returns every carousel item in order.
func (c *Controller) Items() []Item {
	return append([]Item(nil), c.items...)
}

// Window returns the currently visible items.
func (c *Controller) Window() []Item {
	end := c.index + c.visible
	if end > len(c.items) {
		end = len(c.items)
	}
	return append([]Item(nil), c.items[c.index:end]...)
}

func (c *Controller) refresh() {
	c.visible = VisibleCount(c.width)
	c.clamp()
}

func (c *Controller) clamp() {
	if max := c.MaxIndex(); c.index > max {
		c.index = max
	}
	if c.index < 0 {
		c.index = 0
	}
}

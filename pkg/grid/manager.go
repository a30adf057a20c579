package grid

import "slices"

// =============================================================================
// Change Notification
// =============================================================================

// ChangeKind identifies the mutation that a change notification reports.
type ChangeKind string

// Mutations reported through the Manager's change callback.
const (
	ChangeAdd      ChangeKind = "add"
	ChangeRemove   ChangeKind = "remove"
	ChangeMove     ChangeKind = "move"
	ChangeClear    ChangeKind = "clear"
	ChangeOptimize ChangeKind = "optimize"
	ChangeConfig   ChangeKind = "config"
)

// Change describes one successful mutation of the Manager. ItemID is empty
// for whole-grid mutations (clear, optimize, config).
type Change struct {
	Kind   ChangeKind
	ItemID string
}

// =============================================================================
// Manager
// =============================================================================

// Manager is the stateful orchestrator of the grid. Its entire state is the
// triple (configuration, ordered item list, occupancy cache); every mutating
// operation is atomic with respect to that triple: it either fully commits
// and rebuilds the cache, or leaves everything untouched.
//
// Failures are reported as booleans, never errors: a full grid or a
// colliding move is an expected outcome the caller surfaces however it
// likes. The Manager is not safe for concurrent mutation.
type Manager struct {
	cfg      Config
	engine   Engine
	det      Detector
	items    []Item
	occupied CellSet
	onChange func(Change)
}

// NewManager creates a manager with the given configuration, placement
// engine, and collision detector. Both collaborators are chosen by the
// caller; there is no hidden default.
func NewManager(cfg Config, engine Engine, det Detector) *Manager {
	return &Manager{
		cfg:      cfg,
		engine:   engine,
		det:      det,
		occupied: make(CellSet),
	}
}

// SetOnChange registers a callback fired after every successful mutation.
// Pass nil to remove it. The callback runs synchronously on the mutating
// goroutine; persistence uses it to trigger debounced autosaves.
func (m *Manager) SetOnChange(fn func(Change)) { m.onChange = fn }

// Config returns the current grid configuration.
func (m *Manager) Config() Config { return m.cfg }

// SetConfig replaces the grid configuration. Existing item positions are not
// revalidated; callers that shrink the grid should run ValidateLayout or
// Optimize afterwards.
func (m *Manager) SetConfig(cfg Config) {
	m.cfg = cfg
	m.notify(Change{Kind: ChangeConfig})
}

// Len returns the number of placed items.
func (m *Manager) Len() int { return len(m.items) }

// Items returns the placed items in insertion order. The slice is a copy;
// the items themselves are shared.
func (m *Manager) Items() []Item {
	return slices.Clone(m.items)
}

// Item returns the placed item with the given id, or nil.
func (m *Manager) Item(id string) Item {
	for _, it := range m.items {
		if it.ID() == id {
			return it
		}
	}
	return nil
}

// Occupied returns a copy of the occupancy cache, for background rendering
// and diagnostics.
func (m *Manager) Occupied() CellSet {
	return m.occupied.Clone()
}

// Add places an item on the grid. It fails (false, no mutation) when an item
// with the same id already exists, or when no valid position can be found.
//
// An item arriving at the zero position is treated as unplaced and handed to
// the engine; an item with a recorded position keeps it when it is still
// valid, and is re-placed by the engine otherwise. The item is never
// partially added.
func (m *Manager) Add(it Item) bool {
	if m.Item(it.ID()) != nil {
		return false
	}

	fp := it.Footprint()
	pos := it.Position()
	if pos == Origin || !m.CanPlace(fp, pos) {
		found, ok := m.engine.FindPosition(fp, m.occupied, m.cfg)
		if !ok {
			return false
		}
		pos = found
	}

	it.SetPosition(pos)
	m.items = append(m.items, it)
	m.rebuild()
	m.notify(Change{Kind: ChangeAdd, ItemID: it.ID()})
	return true
}

// Remove deletes the item with the given id. False when it is not placed.
func (m *Manager) Remove(id string) bool {
	for i, it := range m.items {
		if it.ID() == id {
			m.items = slices.Delete(m.items, i, i+1)
			m.rebuild()
			m.notify(Change{Kind: ChangeRemove, ItemID: id})
			return true
		}
	}
	return false
}

// Move relocates an already-placed item to a user-chosen position. This is
// the operation behind interactive drag-and-drop: it bypasses the engine and
// tests the target directly with CanPlace, excluding the item itself so its
// current cells do not count as a self-collision.
//
// On failure the item's position and the occupancy cache are unchanged.
func (m *Manager) Move(id string, to Coordinate) bool {
	it := m.Item(id)
	if it == nil {
		return false
	}
	if !m.CanPlace(it.Footprint(), to, id) {
		return false
	}
	it.SetPosition(to)
	m.rebuild()
	m.notify(Change{Kind: ChangeMove, ItemID: id})
	return true
}

// Clear removes every item unconditionally.
func (m *Manager) Clear() {
	m.items = nil
	m.occupied = make(CellSet)
	m.notify(Change{Kind: ChangeClear})
}

// Optimize compacts the layout: positions are re-derived for all items in
// their current row-major order, and the results committed in one step.
func (m *Manager) Optimize() {
	placements := Optimize(m.items, m.cfg, m.engine)
	for _, p := range placements {
		p.Item.SetPosition(p.Position)
	}
	m.rebuild()
	m.notify(Change{Kind: ChangeOptimize})
}

// CanPlace is the single placement predicate shared by Add, Move, and drag
// previews: the footprint must fit within bounds and must not collide with
// any cell occupied by an item other than the excluded ones. Keeping one
// predicate guarantees identical accept/reject semantics for automatic and
// user-driven placement.
func (m *Manager) CanPlace(f Footprint, at Coordinate, exclude ...string) bool {
	if !m.cfg.Bounds.Fits(f, at) {
		return false
	}

	occupied := m.occupied
	if len(exclude) > 0 {
		// Subtract the excluded items' cells from a copy of the cache; an
		// item being moved still occupies its old cells until the move
		// commits, and those must not count against it.
		occupied = m.occupied.Clone()
		for _, id := range exclude {
			if it := m.Item(id); it != nil {
				for _, cell := range it.Footprint().Cells(it.Position()) {
					occupied.Remove(cell)
				}
			}
		}
	}

	return !m.det.Collides(f, at, occupied)
}

// Validate audits the current layout against the configuration.
func (m *Manager) Validate() []ValidationError {
	return ValidateLayout(m.items, m.cfg)
}

// rebuild recomputes the occupancy cache from scratch. Wholesale rebuilding
// after each mutation is deliberate: item counts are tens, not thousands.
func (m *Manager) rebuild() {
	m.occupied = OccupiedCells(m.items)
}

func (m *Manager) notify(ch Change) {
	if m.onChange != nil {
		m.onChange(ch)
	}
}

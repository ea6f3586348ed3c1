package store

import (
	"sync"

	"github.com/spec-kit/resty-service/internal/domain"
)

// Op identifies the store operation that produced a change.
type Op string

const (
	OpSetStaff            Op = "setStaff"
	OpAddStaff            Op = "addStaff"
	OpUpdateStaff         Op = "updateStaff"
	OpRemoveStaff         Op = "removeStaff"
	OpSetSelectedStaff    Op = "setSelectedStaff"
	OpSetShifts           Op = "setShifts"
	OpAddShift            Op = "addShift"
	OpUpdateShift         Op = "updateShift"
	OpRemoveShift         Op = "removeShift"
	OpAddChatMessage      Op = "addChatMessage"
	OpClearChatMessages   Op = "clearChatMessages"
	OpSetInsights         Op = "setInsights"
	OpAddInsight          Op = "addInsight"
	OpRemoveInsight       Op = "removeInsight"
	OpSetAnalytics        Op = "setAnalytics"
	OpSetSidebarOpen      Op = "setSidebarOpen"
	OpSetSidebarCollapsed Op = "setSidebarCollapsed"
	OpSetCurrentView      Op = "setCurrentView"
)

// Change describes one applied mutation. ID is set for id-targeted and
// append operations.
type Change struct {
	Op     Op      `json:"op"`
	Fields []Field `json:"fields"`
	ID     string  `json:"id,omitempty"`
}

// Touches reports whether the change replaced field f.
func (c Change) Touches(f Field) bool {
	for _, cf := range c.Fields {
		if cf == f {
			return true
		}
	}
	return false
}

// Listener receives the state produced by a change.
type Listener func(State, Change)

type subscription struct {
	id       int
	fields   []Field
	listener Listener
}

func (s *subscription) wants(c Change) bool {
	if len(s.fields) == 0 {
		return true
	}
	for _, f := range s.fields {
		if c.Touches(f) {
			return true
		}
	}
	return false
}

// Store is the single source of truth for the dashboard. Every mutation
// swaps whole field values; a State handed out earlier never changes.
//
// Listeners are invoked synchronously, in registration order, after the
// state lock is released. They may read the store but must not mutate it.
type Store struct {
	dispatchMu sync.Mutex
	mu         sync.RWMutex
	state      State

	subsMu sync.RWMutex
	subs   []*subscription
	nextID int
}

// New returns a store holding the initial dashboard state.
func New() *Store {
	return &Store{state: initialState()}
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers l for changes to any of fields, or to every change
// when no field is given. The returned func removes the subscription.
func (s *Store) Subscribe(l Listener, fields ...Field) func() {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	s.nextID++
	sub := &subscription{id: s.nextID, fields: append([]Field(nil), fields...), listener: l}
	s.subs = append(s.subs, sub)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subsMu.Lock()
			defer s.subsMu.Unlock()
			next := make([]*subscription, 0, len(s.subs))
			for _, existing := range s.subs {
				if existing.id != sub.id {
					next = append(next, existing)
				}
			}
			s.subs = next
		})
	}
}

// mutate applies fn under the state lock and notifies listeners when fn
// reports a change.
func (s *Store) mutate(fn func(st *State) (Change, bool)) bool {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	next := s.state
	change, changed := fn(&next)
	if changed {
		s.state = next
	}
	s.mu.Unlock()

	if !changed {
		return false
	}

	s.subsMu.RLock()
	subs := append([]*subscription(nil), s.subs...)
	s.subsMu.RUnlock()
	for _, sub := range subs {
		if sub.wants(change) {
			sub.listener(next, change)
		}
	}
	return true
}

// Seed applies the startup payload.
func (s *Store) Seed(seed Seed) {
	s.SetStaff(seed.Staff)
	s.SetInsights(seed.Insights)
	if seed.Analytics != nil {
		s.SetAnalytics(*seed.Analytics)
	}
}

// Staff returns the roster.
func (s *Store) Staff() []domain.Staff {
	return s.Snapshot().Staff
}

// SelectedStaff returns the selected staff member, if any.
func (s *Store) SelectedStaff() *domain.Staff {
	return s.Snapshot().SelectedStaff
}

// Shifts returns all shifts.
func (s *Store) Shifts() []domain.Shift {
	return s.Snapshot().Shifts
}

// ChatMessages returns the transcript in append order.
func (s *Store) ChatMessages() []domain.ChatMessage {
	return s.Snapshot().ChatMessages
}

// Insights returns all insights.
func (s *Store) Insights() []domain.AIInsight {
	return s.Snapshot().Insights
}

// Analytics returns the analytics snapshot, if set.
func (s *Store) Analytics() *domain.AnalyticsData {
	return s.Snapshot().Analytics
}

// SidebarOpen reports whether the sidebar is open.
func (s *Store) SidebarOpen() bool {
	return s.Snapshot().SidebarOpen
}

// SidebarCollapsed reports whether the sidebar is collapsed.
func (s *Store) SidebarCollapsed() bool {
	return s.Snapshot().SidebarCollapsed
}

// CurrentView returns the active view tag.
func (s *Store) CurrentView() domain.View {
	return s.Snapshot().CurrentView
}

// SetStaff replaces the roster.
func (s *Store) SetStaff(list []domain.Staff) {
	s.mutate(func(st *State) (Change, bool) {
		st.Staff = cloneStaff(list)
		return Change{Op: OpSetStaff, Fields: []Field{FieldStaff}}, true
	})
}

// AddStaff appends item to the roster. Id uniqueness is the caller's concern.
func (s *Store) AddStaff(item domain.Staff) {
	s.mutate(func(st *State) (Change, bool) {
		st.Staff = appendCopy(st.Staff, item.Clone())
		return Change{Op: OpAddStaff, Fields: []Field{FieldStaff}, ID: item.ID}, true
	})
}

// UpdateStaff merges patch into the staff member with the given id. It
// reports whether a member matched; an unknown id leaves the state as is.
func (s *Store) UpdateStaff(id string, patch StaffPatch) bool {
	return s.mutate(func(st *State) (Change, bool) {
		next, ok := replaceByID(st.Staff, id, func(v domain.Staff) string { return v.ID }, patch.Apply)
		if !ok {
			return Change{}, false
		}
		st.Staff = next
		return Change{Op: OpUpdateStaff, Fields: []Field{FieldStaff}, ID: id}, true
	})
}

// RemoveStaff drops the staff member with the given id and clears the
// selection when it pointed at that member. Shifts are left untouched.
func (s *Store) RemoveStaff(id string) bool {
	return s.mutate(func(st *State) (Change, bool) {
		next, ok := removeByID(st.Staff, id, func(v domain.Staff) string { return v.ID })
		if !ok {
			return Change{}, false
		}
		st.Staff = next
		fields := []Field{FieldStaff}
		if st.SelectedStaff != nil && st.SelectedStaff.ID == id {
			st.SelectedStaff = nil
			fields = append(fields, FieldSelectedStaff)
		}
		return Change{Op: OpRemoveStaff, Fields: fields, ID: id}, true
	})
}

// SetSelectedStaff sets or clears the selection. The member is not required
// to exist in the roster.
func (s *Store) SetSelectedStaff(item *domain.Staff) {
	s.mutate(func(st *State) (Change, bool) {
		change := Change{Op: OpSetSelectedStaff, Fields: []Field{FieldSelectedStaff}}
		if item == nil {
			st.SelectedStaff = nil
			return change, true
		}
		selected := item.Clone()
		st.SelectedStaff = &selected
		change.ID = selected.ID
		return change, true
	})
}

// SetShifts replaces all shifts.
func (s *Store) SetShifts(list []domain.Shift) {
	s.mutate(func(st *State) (Change, bool) {
		st.Shifts = cloneOrEmpty(list)
		return Change{Op: OpSetShifts, Fields: []Field{FieldShifts}}, true
	})
}

// AddShift appends a shift.
func (s *Store) AddShift(item domain.Shift) {
	s.mutate(func(st *State) (Change, bool) {
		st.Shifts = appendCopy(st.Shifts, item)
		return Change{Op: OpAddShift, Fields: []Field{FieldShifts}, ID: item.ID}, true
	})
}

// UpdateShift merges patch into the shift with the given id.
func (s *Store) UpdateShift(id string, patch ShiftPatch) bool {
	return s.mutate(func(st *State) (Change, bool) {
		next, ok := replaceByID(st.Shifts, id, func(v domain.Shift) string { return v.ID }, patch.Apply)
		if !ok {
			return Change{}, false
		}
		st.Shifts = next
		return Change{Op: OpUpdateShift, Fields: []Field{FieldShifts}, ID: id}, true
	})
}

// RemoveShift drops the shift with the given id.
func (s *Store) RemoveShift(id string) bool {
	return s.mutate(func(st *State) (Change, bool) {
		next, ok := removeByID(st.Shifts, id, func(v domain.Shift) string { return v.ID })
		if !ok {
			return Change{}, false
		}
		st.Shifts = next
		return Change{Op: OpRemoveShift, Fields: []Field{FieldShifts}, ID: id}, true
	})
}

// AddChatMessage appends msg to the transcript.
func (s *Store) AddChatMessage(msg domain.ChatMessage) {
	s.mutate(func(st *State) (Change, bool) {
		st.ChatMessages = appendCopy(st.ChatMessages, msg)
		return Change{Op: OpAddChatMessage, Fields: []Field{FieldChatMessages}, ID: msg.ID}, true
	})
}

// ClearChatMessages empties the transcript.
func (s *Store) ClearChatMessages() {
	s.mutate(func(st *State) (Change, bool) {
		st.ChatMessages = []domain.ChatMessage{}
		return Change{Op: OpClearChatMessages, Fields: []Field{FieldChatMessages}}, true
	})
}

// SetInsights replaces all insights.
func (s *Store) SetInsights(list []domain.AIInsight) {
	s.mutate(func(st *State) (Change, bool) {
		st.Insights = cloneOrEmpty(list)
		return Change{Op: OpSetInsights, Fields: []Field{FieldInsights}}, true
	})
}

// AddInsight appends an insight.
func (s *Store) AddInsight(item domain.AIInsight) {
	s.mutate(func(st *State) (Change, bool) {
		st.Insights = appendCopy(st.Insights, item)
		return Change{Op: OpAddInsight, Fields: []Field{FieldInsights}, ID: item.ID}, true
	})
}

// RemoveInsight drops the insight with the given id.
func (s *Store) RemoveInsight(id string) bool {
	return s.mutate(func(st *State) (Change, bool) {
		next, ok := removeByID(st.Insights, id, func(v domain.AIInsight) string { return v.ID })
		if !ok {
			return Change{}, false
		}
		st.Insights = next
		return Change{Op: OpRemoveInsight, Fields: []Field{FieldInsights}, ID: id}, true
	})
}

// SetAnalytics replaces the analytics snapshot.
func (s *Store) SetAnalytics(data domain.AnalyticsData) {
	s.mutate(func(st *State) (Change, bool) {
		st.Analytics = &data
		return Change{Op: OpSetAnalytics, Fields: []Field{FieldAnalytics}}, true
	})
}

// SetSidebarOpen sets the sidebar visibility.
func (s *Store) SetSidebarOpen(open bool) {
	s.mutate(func(st *State) (Change, bool) {
		st.SidebarOpen = open
		return Change{Op: OpSetSidebarOpen, Fields: []Field{FieldSidebarOpen}}, true
	})
}

// SetSidebarCollapsed sets the collapsed flag; it is independent of SidebarOpen.
func (s *Store) SetSidebarCollapsed(collapsed bool) {
	s.mutate(func(st *State) (Change, bool) {
		st.SidebarCollapsed = collapsed
		return Change{Op: OpSetSidebarCollapsed, Fields: []Field{FieldSidebarCollapsed}}, true
	})
}

// ToggleSidebarCollapsed flips the collapsed flag in one mutation and returns
// the new value.
func (s *Store) ToggleSidebarCollapsed() bool {
	var collapsed bool
	s.mutate(func(st *State) (Change, bool) {
		st.SidebarCollapsed = !st.SidebarCollapsed
		collapsed = st.SidebarCollapsed
		return Change{Op: OpSetSidebarCollapsed, Fields: []Field{FieldSidebarCollapsed}}, true
	})
	return collapsed
}

// SetCurrentView sets the active view tag as given.
func (s *Store) SetCurrentView(view domain.View) {
	s.mutate(func(st *State) (Change, bool) {
		st.CurrentView = view
		return Change{Op: OpSetCurrentView, Fields: []Field{FieldCurrentView}}, true
	})
}

func cloneStaff(list []domain.Staff) []domain.Staff {
	out := make([]domain.Staff, len(list))
	for i, v := range list {
		out[i] = v.Clone()
	}
	return out
}

func cloneOrEmpty[T any](list []T) []T {
	out := make([]T, len(list))
	copy(out, list)
	return out
}

func appendCopy[T any](list []T, item T) []T {
	out := make([]T, len(list), len(list)+1)
	copy(out, list)
	return append(out, item)
}

func replaceByID[T any](list []T, id string, key func(T) string, apply func(T) T) ([]T, bool) {
	found := false
	out := make([]T, len(list))
	for i, v := range list {
		if key(v) == id {
			v = apply(v)
			found = true
		}
		out[i] = v
	}
	return out, found
}

func removeByID[T any](list []T, id string, key func(T) string) ([]T, bool) {
	out := make([]T, 0, len(list))
	for _, v := range list {
		if key(v) != id {
			out = append(out, v)
		}
	}
	return out, len(out) != len(list)
}

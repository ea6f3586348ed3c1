package domain

// View is the active top-level dashboard screen.
type View string

const (
	ViewChat      View = "chat"
	ViewStaff     View = "staff"
	ViewAnalytics View = "analytics"
)

// Valid reports whether v is one of the three dashboard views.
func (v View) Valid() bool {
	switch v {
	case ViewChat, ViewStaff, ViewAnalytics:
		return true
	}
	return false
}

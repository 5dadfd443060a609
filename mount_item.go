package mount

// MountItem is the live association between a stable id and mounted
// content. The registry owns it; hosts refer back only by id.
type MountItem struct {
	id      uint64
	index   int
	output  *Output
	typ     *ContentType
	props   any
	content Content
	host    *Host
	entry   *hostEntry
	bounds  Rect

	disappearing bool
}

// ID returns the stable id.
func (m *MountItem) ID() uint64 { return m.id }

// Index returns the display index in the state the item was last
// reconciled against.
func (m *MountItem) Index() int { return m.index }

// Output returns the output the item was last bound from.
func (m *MountItem) Output() *Output { return m.output }

// Content returns the mounted content.
func (m *MountItem) Content() Content { return m.content }

// Props returns the props currently bound to the content.
func (m *MountItem) Props() any { return m.props }

// Host returns the host the content is attached to. It is nil for the root
// host.
func (m *MountItem) Host() *Host { return m.host }

// Bounds returns the applied bounds in root coordinates.
func (m *MountItem) Bounds() Rect { return m.bounds }

// IsDisappearing reports whether the item is animating out.
func (m *MountItem) IsDisappearing() bool { return m.disappearing }

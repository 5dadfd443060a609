package mount

// TouchAction is the phase of a touch gesture.
type TouchAction uint8

const (
	TouchDown TouchAction = iota
	TouchMove
	TouchUp
	TouchCancel
)

// TouchEvent is delivered to touch and intercept-touch handlers.
type TouchEvent struct {
	X, Y   int
	Action TouchAction
}

// Handlers are the interaction bindings of a node.
type Handlers struct {
	OnClick          func()
	OnLongClick      func() bool
	OnTouch          func(TouchEvent) bool
	OnInterceptTouch func(TouchEvent) bool
	OnFocusChange    func(focused bool)
}

func (h Handlers) any() bool {
	return h.OnClick != nil || h.OnLongClick != nil || h.OnTouch != nil ||
		h.OnInterceptTouch != nil || h.OnFocusChange != nil
}

// VisibilityChangedEvent carries the current overlap of an item with the
// viewport. A zero payload means the item is fully invisible.
type VisibilityChangedEvent struct {
	VisibleRect   Rect
	VisibleWidth  int
	VisibleHeight int
	PercentWidth  float64
	PercentHeight float64
}

// VisibilityHandlers are the visibility-event bindings of a node.
type VisibilityHandlers struct {
	OnVisible           func()
	OnInvisible         func()
	OnFocused           func()
	OnUnfocused         func()
	OnFullImpression    func()
	OnVisibilityChanged func(VisibilityChangedEvent)
}

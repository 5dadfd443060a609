package mount

// Option configures a Component.
type Option func(*Component)

// --- Identity Options ---

// WithKey sets an explicit key. Keyed siblings keep their identity across
// insertions and removals around them.
func WithKey(key string) Option {
	return func(c *Component) {
		c.key = key
	}
}

// WithProps sets the props handed to the content type's Bind.
func WithProps(props any) Option {
	return func(c *Component) {
		c.props = props
	}
}

// WithChildren appends child components. Nil children are skipped.
func WithChildren(children ...*Component) Option {
	return func(c *Component) {
		for _, child := range children {
			if child != nil {
				c.children = append(c.children, child)
			}
		}
	}
}

// --- Dimension Options ---

// WithStyle replaces the whole layout style.
func WithStyle(style LayoutStyle) Option {
	return func(c *Component) {
		c.style = style
	}
}

// WithWidth sets a fixed width in pixels.
func WithWidth(px int) Option {
	return func(c *Component) {
		c.style.Width = Fixed(px)
	}
}

// WithHeight sets a fixed height in pixels.
func WithHeight(px int) Option {
	return func(c *Component) {
		c.style.Height = Fixed(px)
	}
}

// WithSize sets both width and height in pixels.
func WithSize(width, height int) Option {
	return func(c *Component) {
		c.style.Width = Fixed(width)
		c.style.Height = Fixed(height)
	}
}

// WithDirection sets the main axis direction for laying out children.
func WithDirection(d Direction) Option {
	return func(c *Component) {
		c.style.Direction = d
	}
}

// WithAlign sets how children are positioned on the cross axis.
func WithAlign(a Align) Option {
	return func(c *Component) {
		c.style.AlignItems = a
	}
}

// WithJustify sets how children are distributed along the main axis.
func WithJustify(j Justify) Option {
	return func(c *Component) {
		c.style.JustifyContent = j
	}
}

// WithGap sets the space between children on the main axis.
func WithGap(px int) Option {
	return func(c *Component) {
		c.style.Gap = px
	}
}

// WithFlexGrow sets how much this component grows relative to siblings.
func WithFlexGrow(factor float64) Option {
	return func(c *Component) {
		c.style.FlexGrow = factor
	}
}

// WithPadding sets uniform padding on all sides.
func WithPadding(px int) Option {
	return func(c *Component) {
		c.style.Padding = EdgeAll(px)
	}
}

// WithMargin sets the margin on each side.
func WithMargin(edges Edges) Option {
	return func(c *Component) {
		c.style.Margin = edges
	}
}

// --- Host and State Options ---

// WithWrapInHost forces the component into its own host container.
func WithWrapInHost() Option {
	return func(c *Component) {
		c.wrapInHost = true
	}
}

// WithDuplicateParentState makes mounted content mirror its host's pressed
// and focused state.
func WithDuplicateParentState() Option {
	return func(c *Component) {
		c.duplicateParentState = true
	}
}

// WithEnabled sets the enabled state. A disabled component's outputs are
// flagged touchable-disabled, and so are its descendants unless they
// re-enable themselves.
func WithEnabled(enabled bool) Option {
	return func(c *Component) {
		c.enabled = &enabled
	}
}

// WithFocusable overrides focusability.
func WithFocusable(focusable bool) Option {
	return func(c *Component) {
		c.focusable = &focusable
	}
}

// WithSelected overrides the selected state.
func WithSelected(selected bool) Option {
	return func(c *Component) {
		c.selected = &selected
	}
}

// WithTouchExpansion grows the touchable area beyond the bounds.
func WithTouchExpansion(insets Edges) Option {
	return func(c *Component) {
		c.touchExpansion = insets
	}
}

// WithTransitionKey names the component for animations. Removed outputs
// with a transition key may disappear through an animation.
func WithTransitionKey(key string) Option {
	return func(c *Component) {
		c.transitionKey = key
	}
}

// --- Accessibility Options ---

// WithImportantForAccessibility sets the accessibility importance.
func WithImportantForAccessibility(importance Importance) Option {
	return func(c *Component) {
		c.importance = importance
	}
}

// WithContentDescription sets the accessibility label.
func WithContentDescription(description string) Option {
	return func(c *Component) {
		c.contentDescription = description
	}
}

// --- Decoration Options ---

// WithBackground draws paint-only content behind the component.
func WithBackground(typ *ContentType, props any) Option {
	return func(c *Component) {
		c.background = &Decoration{Type: typ, Props: props}
	}
}

// WithForeground draws paint-only content in front of the component and
// its children.
func WithForeground(typ *ContentType, props any) Option {
	return func(c *Component) {
		c.foreground = &Decoration{Type: typ, Props: props}
	}
}

// WithBorder sets the border.
func WithBorder(border Border) Option {
	return func(c *Component) {
		c.border = border
	}
}

// --- Event Options ---

// WithClickHandler sets the click handler.
func WithClickHandler(fn func()) Option {
	return func(c *Component) {
		c.handlers.OnClick = fn
	}
}

// WithLongClickHandler sets the long-click handler.
func WithLongClickHandler(fn func() bool) Option {
	return func(c *Component) {
		c.handlers.OnLongClick = fn
	}
}

// WithTouchHandler sets the touch handler.
func WithTouchHandler(fn func(TouchEvent) bool) Option {
	return func(c *Component) {
		c.handlers.OnTouch = fn
	}
}

// WithInterceptTouchHandler sets the intercept-touch handler.
func WithInterceptTouchHandler(fn func(TouchEvent) bool) Option {
	return func(c *Component) {
		c.handlers.OnInterceptTouch = fn
	}
}

// WithFocusChangeHandler sets the focus-change handler.
func WithFocusChangeHandler(fn func(focused bool)) Option {
	return func(c *Component) {
		c.handlers.OnFocusChange = fn
	}
}

// WithViewTag attaches a tag to the component's interactive primitive.
func WithViewTag(key string, value any) Option {
	return func(c *Component) {
		if c.viewTags == nil {
			c.viewTags = make(map[string]any)
		}
		c.viewTags[key] = value
	}
}

// --- Visibility Options ---

// WithVisibility sets visibility-event handlers.
func WithVisibility(handlers VisibilityHandlers) Option {
	return func(c *Component) {
		c.visibility = &handlers
	}
}

// WithVisibleRatios requires that fraction of the width and/or height to be
// on screen before the component counts as visible. Zero disables a ratio.
func WithVisibleRatios(width, height float64) Option {
	return func(c *Component) {
		c.visibleWidthRatio = width
		c.visibleHeightRatio = height
	}
}

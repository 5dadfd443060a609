package layout

// Calculate lays out the tree rooted at root inside an exact
// availableWidth x availableHeight box at the origin.
func Calculate(root Layoutable, availableWidth, availableHeight int) {
	CalculateWithSpecs(root, ExactSpec(availableWidth), ExactSpec(availableHeight))
}

// CalculateWithSpecs resolves the root size against the given constraints
// and lays out the tree at the origin. It returns the root size.
func CalculateWithSpecs(root Layoutable, widthSpec, heightSpec SizeSpec) Size {
	if root == nil {
		return Size{}
	}

	style := root.LayoutStyle()
	width, height := -1, -1
	if style.Width.IsFixed() {
		width = widthSpec.Resolve(style.Width.Resolve(0, 0))
	} else if widthSpec.Mode() == Exactly {
		width = widthSpec.Size()
	}
	if style.Height.IsFixed() {
		height = heightSpec.Resolve(style.Height.Resolve(0, 0))
	} else if heightSpec.Mode() == Exactly {
		height = heightSpec.Size()
	}
	if width < 0 || height < 0 {
		mw, mh := root.Measure(widthSpec, heightSpec)
		if width < 0 {
			width = widthSpec.Resolve(mw)
		}
		if height < 0 {
			height = heightSpec.Resolve(mh)
		}
	}

	CalculateAt(root, NewRect(0, 0, width, height))
	return Size{Width: width, Height: height}
}

// CalculateAt lays out the tree so that root occupies exactly the given
// border box. Used for nested trees resolved against a known size.
func CalculateAt(root Layoutable, box Rect) {
	if root == nil {
		return
	}
	calculateNode(root, box)
}

// calculateNode computes the layout for a single node within the available space.
// The available rect is the border box allocated by the parent after margin.
func calculateNode(node Layoutable, available Rect) {
	style := node.LayoutStyle()

	borderBox := computeBorderBox(style, available)
	contentRect := borderBox.Inset(style.Padding)

	if len(node.LayoutChildren()) > 0 {
		layoutChildren(node, style, contentRect)
	}

	node.SetLayout(Layout{
		Rect:        borderBox,
		ContentRect: contentRect,
	})
}

// computeBorderBox applies min/max constraints to the slot the parent
// allocated. Width/Height were already used by the flex pass.
func computeBorderBox(style Style, available Rect) Rect {
	width := clamp(available.Width,
		style.MinWidth.Resolve(available.Width, 0),
		style.MaxWidth.Resolve(available.Width, available.Width))
	height := clamp(available.Height,
		style.MinHeight.Resolve(available.Height, 0),
		style.MaxHeight.Resolve(available.Height, available.Height))

	return Rect{
		X:      available.X,
		Y:      available.Y,
		Width:  max(width, 0),
		Height: max(height, 0),
	}
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins (matches CSS behavior).
func clamp(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}

package layout

// MeasureChildren computes the border-box size a container wants under the
// given constraints by stacking its children along the main axis. Fixed
// Width/Height on the container itself win over content.
func MeasureChildren(node Layoutable, widthSpec, heightSpec SizeSpec) (width, height int) {
	style := node.LayoutStyle()
	isRow := style.Direction == Row

	innerW := innerSpec(widthSpec, style.Padding.Horizontal())
	innerH := innerSpec(heightSpec, style.Padding.Vertical())

	var mainTotal, crossMax int
	children := node.LayoutChildren()
	for i, child := range children {
		cw, ch := MeasureChild(child, innerW, innerH)
		cs := child.LayoutStyle()
		cw += cs.Margin.Horizontal()
		ch += cs.Margin.Vertical()
		if isRow {
			mainTotal += cw
			crossMax = max(crossMax, ch)
		} else {
			mainTotal += ch
			crossMax = max(crossMax, cw)
		}
		if i > 0 {
			mainTotal += style.Gap
		}
	}

	width, height = crossMax, mainTotal
	if isRow {
		width, height = mainTotal, crossMax
	}
	width += style.Padding.Horizontal()
	height += style.Padding.Vertical()

	return resolveOwn(style.Width, widthSpec, width), resolveOwn(style.Height, heightSpec, height)
}

// MeasureChild measures a child honouring its fixed Width/Height, calling
// into the child's Measure only when a dimension is content-sized.
func MeasureChild(child Layoutable, widthSpec, heightSpec SizeSpec) (width, height int) {
	cs := child.LayoutStyle()
	if cs.Width.IsFixed() && cs.Height.IsFixed() {
		return cs.Width.Resolve(0, 0), cs.Height.Resolve(0, 0)
	}
	if cs.Width.IsFixed() {
		widthSpec = ExactSpec(cs.Width.Resolve(0, 0))
	}
	if cs.Height.IsFixed() {
		heightSpec = ExactSpec(cs.Height.Resolve(0, 0))
	}
	return child.Measure(widthSpec, heightSpec)
}

func innerSpec(spec SizeSpec, padding int) SizeSpec {
	if spec.Mode() == Unspecified {
		return spec
	}
	return MakeSizeSpec(spec.Size()-padding, spec.Mode())
}

func resolveOwn(v Value, spec SizeSpec, content int) int {
	switch {
	case v.IsFixed():
		return v.Resolve(0, 0)
	case v.Unit == UnitPercent && spec.Mode() != Unspecified:
		return v.Resolve(spec.Size(), content)
	}
	return spec.Resolve(content)
}

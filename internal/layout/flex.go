package layout

// flexItem holds intermediate calculation state for a child.
// This is stack-allocated per layout call, not stored on nodes.
type flexItem struct {
	node      Layoutable
	style     Style
	baseSize  int
	mainSize  int
	crossSize int
	mainPos   int
	crossPos  int
}

// layoutChildren arranges the children of a node within the given content rect.
func layoutChildren(node Layoutable, style Style, contentRect Rect) {
	children := node.LayoutChildren()
	isRow := style.Direction == Row

	mainSize, crossSize := contentRect.Width, contentRect.Height
	if !isRow {
		mainSize, crossSize = crossSize, mainSize
	}

	// Phase 1: base sizes (content size plus margin) and flex factors.
	items := make([]flexItem, len(children))
	totalBase := 0
	totalGrow := 0.0
	totalShrink := 0.0

	for i, child := range children {
		item := &items[i]
		item.node = child
		item.style = child.LayoutStyle()
		cs := item.style

		mainMargin, crossMargin := cs.Margin.Horizontal(), cs.Margin.Vertical()
		mainValue, crossValue := cs.Width, cs.Height
		if !isRow {
			mainMargin, crossMargin = crossMargin, mainMargin
			mainValue, crossValue = crossValue, mainValue
		}
		availableCross := max(crossSize-crossMargin, 0)
		align := style.alignFor(cs)

		needsMeasure := mainValue.IsAuto() || (crossValue.IsAuto() && align != AlignStretch)
		var measuredMain, measuredCross int
		if needsMeasure {
			mainSpec := AtMostSpec(max(mainSize-mainMargin, 0))
			if !mainValue.IsAuto() {
				mainSpec = ExactSpec(mainValue.Resolve(mainSize, 0))
			}
			crossSpec := AtMostSpec(availableCross)
			if !crossValue.IsAuto() {
				crossSpec = ExactSpec(crossValue.Resolve(availableCross, availableCross))
			} else if align == AlignStretch {
				crossSpec = ExactSpec(availableCross)
			}
			if isRow {
				measuredMain, measuredCross = child.Measure(mainSpec, crossSpec)
			} else {
				measuredCross, measuredMain = child.Measure(crossSpec, mainSpec)
			}
		}

		if mainValue.IsAuto() {
			item.baseSize = measuredMain + mainMargin
		} else {
			item.baseSize = mainValue.Resolve(mainSize, 0) + mainMargin
		}

		switch {
		case !crossValue.IsAuto():
			item.crossSize = crossValue.Resolve(availableCross, availableCross) + crossMargin
		case align == AlignStretch:
			item.crossSize = availableCross + crossMargin
		default:
			item.crossSize = measuredCross + crossMargin
		}
		item.crossPos = calculateAlignOffset(align, crossSize, item.crossSize)

		totalBase += item.baseSize
		totalGrow += cs.FlexGrow
		totalShrink += cs.FlexShrink
	}

	totalGap := style.Gap * max(0, len(children)-1)
	freeSpace := mainSize - totalBase - totalGap

	// Phase 2: distribute free space.
	for i := range items {
		item := &items[i]
		item.mainSize = item.baseSize
		switch {
		case freeSpace > 0 && totalGrow > 0 && item.style.FlexGrow > 0:
			item.mainSize += int(float64(freeSpace) * item.style.FlexGrow / totalGrow)
		case freeSpace < 0 && totalShrink > 0 && item.style.FlexShrink > 0:
			reduction := int(float64(-freeSpace) * item.style.FlexShrink / totalShrink)
			item.mainSize = max(0, item.baseSize-reduction)
		}
	}

	// Phase 3: min/max on the main axis.
	totalUsed := 0
	for i := range items {
		items[i].mainSize = clamp(items[i].mainSize,
			resolveMinMain(items[i].style, isRow, mainSize),
			resolveMaxMain(items[i].style, isRow, mainSize))
		totalUsed += items[i].mainSize
	}
	freeSpace = mainSize - totalUsed - totalGap

	// Phase 4: justify.
	offset := calculateJustifyOffset(style.JustifyContent, freeSpace, len(items))
	spacing := calculateJustifySpacing(style.JustifyContent, freeSpace, len(items))
	for i := range items {
		items[i].mainPos = offset
		offset += items[i].mainSize + style.Gap + spacing
	}

	// Phase 5: convert to rects and recurse.
	for i := range items {
		item := &items[i]
		var slot Rect
		if isRow {
			slot = NewRect(contentRect.X+item.mainPos, contentRect.Y+item.crossPos, item.mainSize, item.crossSize)
		} else {
			slot = NewRect(contentRect.X+item.crossPos, contentRect.Y+item.mainPos, item.crossSize, item.mainSize)
		}
		calculateNode(item.node, slot.Inset(item.style.Margin))
	}
}

// calculateJustifyOffset returns the initial offset for positioning children
// based on the justify mode and available free space.
func calculateJustifyOffset(justify Justify, freeSpace, itemCount int) int {
	if freeSpace <= 0 || itemCount == 0 {
		return 0
	}

	switch justify {
	case JustifyEnd:
		return freeSpace
	case JustifyCenter:
		return freeSpace / 2
	case JustifySpaceAround:
		return freeSpace / (itemCount * 2)
	case JustifySpaceEvenly:
		return freeSpace / (itemCount + 1)
	default:
		return 0
	}
}

// calculateJustifySpacing returns the extra spacing between children.
func calculateJustifySpacing(justify Justify, freeSpace, itemCount int) int {
	if freeSpace <= 0 || itemCount <= 1 {
		return 0
	}

	switch justify {
	case JustifySpaceBetween:
		return freeSpace / (itemCount - 1)
	case JustifySpaceAround:
		return freeSpace / itemCount
	case JustifySpaceEvenly:
		return freeSpace / (itemCount + 1)
	default:
		return 0
	}
}

// calculateAlignOffset returns the offset for positioning a child on the cross axis.
func calculateAlignOffset(align Align, crossSize, itemSize int) int {
	switch align {
	case AlignEnd:
		return crossSize - itemSize
	case AlignCenter:
		return (crossSize - itemSize) / 2
	default:
		return 0
	}
}

func resolveMinMain(style Style, isRow bool, available int) int {
	if isRow {
		return style.MinWidth.Resolve(available, 0)
	}
	return style.MinHeight.Resolve(available, 0)
}

// resolveMaxMain returns a large bound when no max is set so that content
// taller than the parent (scrolling lists) is not truncated.
func resolveMaxMain(style Style, isRow bool, available int) int {
	v := style.MaxHeight
	if isRow {
		v = style.MaxWidth
	}
	if v.IsAuto() {
		return specSizeMask
	}
	return v.Resolve(available, available)
}

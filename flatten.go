package mount

// flattener walks a calculated LayoutNode tree in pre-order and appends
// outputs to a LayoutState.
type flattener struct {
	state      *LayoutState
	prev       *LayoutState
	opts       FlattenOptions
	visIDs     map[uint64]struct{}
	collisions int
}

// inherited is the state a node passes down to its descendants.
type inherited struct {
	disabled        bool
	hideDescendants bool
}

func newFlattener(s *LayoutState, prev *LayoutState, opts FlattenOptions) *flattener {
	s.index = make(map[uint64]int)
	return &flattener{
		state:  s,
		prev:   prev,
		opts:   opts,
		visIDs: make(map[uint64]struct{}),
	}
}

// flatten emits the root host and then every output of the tree. The root
// host is emitted even when root is nil or pruned.
func (f *flattener) flatten(root *LayoutNode, size Size) {
	rootHost := &Output{
		ID:         RootHostID,
		HostMarker: NoHost,
		Type:       HostType,
		Bounds:     NewRect(0, 0, size.Width, size.Height),
	}
	rootHost.UpdateState = f.updateState(RootHostID, rootHost)
	f.state.outputs = append(f.state.outputs, rootHost)
	f.state.index[RootHostID] = 0
	if root == nil {
		return
	}
	rootHost.Key = root.key
	f.visit(root, 0, inherited{}, true)
}

func (f *flattener) visit(n *LayoutNode, host int, in inherited, isRoot bool) {
	c := n.component
	rect := n.layout.Rect
	if !isRoot && rect.Width == 0 && rect.Height == 0 && len(n.children) == 0 && n.nested == nil {
		return
	}

	disabled := in.disabled
	if c.enabled != nil {
		disabled = !*c.enabled
	}
	importance := c.importance
	if in.hideDescendants {
		importance = ImportanceNo
	}
	next := inherited{
		disabled:        disabled,
		hideDescendants: in.hideDescendants || c.importance == ImportanceNoHideDescendants,
	}

	var flags OutputFlags
	if c.duplicateParentState {
		flags |= FlagDuplicateParentState
	}
	if disabled {
		flags |= FlagTouchableDisabled
	}

	var hostOut *Output
	switch {
	case isRoot:
		// The root host stands in for the root node only when the node
		// would need a host of its own.
		if !f.needsHost(c) {
			break
		}
		hostOut = f.state.outputs[0]
		if c.typ != nil && c.typ.Kind == KindHost {
			hostOut.Type, hostOut.Props = c.typ, c.props
			hostOut.UpdateState = f.updateState(hostOut.ID, hostOut)
		}
		hostOut.Flags = flags
		hostOut.Importance = importance
		hostOut.TransitionKey = c.transitionKey
		hostOut.ContentDescription = c.contentDescription
		hostOut.Interaction = f.interaction(c, rect)
	case f.needsHost(c):
		typ, props := HostType, any(nil)
		if c.typ != nil && c.typ.Kind == KindHost {
			typ, props = c.typ, c.props
		}
		hostOut = f.emit(n.key, discHost, &Output{
			Type:               typ,
			Props:              props,
			Bounds:             rect,
			HostMarker:         host,
			Flags:              flags,
			Importance:         importance,
			TransitionKey:      c.transitionKey,
			ContentDescription: c.contentDescription,
			Interaction:        f.interaction(c, rect),
		})
		host = hostOut.Index
	}

	if bg := c.background; bg != nil && bg.Type != nil {
		f.emit(n.key, discBackground, &Output{
			Type:       bg.Type,
			Props:      bg.Props,
			Bounds:     rect,
			HostMarker: host,
			Flags:      flags&FlagTouchableDisabled | FlagBackground,
		})
	}

	if c.typ != nil && c.typ.Kind != KindHost {
		out := &Output{
			Type:               c.typ,
			Props:              c.props,
			Bounds:             rect,
			HostMarker:         host,
			Flags:              flags,
			Importance:         importance,
			ContentDescription: c.contentDescription,
		}
		if hostOut == nil {
			out.TransitionKey = c.transitionKey
			if c.typ.Kind == KindView {
				out.Interaction = f.interaction(c, rect)
			}
		}
		f.emit(n.key, discContent, out)
	}

	if n.nested != nil {
		if nestedRoot := n.resolveForBounds(); nestedRoot != nil {
			f.visit(nestedRoot, host, next, false)
		}
	} else {
		for _, child := range n.children {
			f.visit(child, host, next, false)
		}
	}

	if c.border.Visible() {
		f.emit(n.key, discBorder, &Output{
			Type:       BorderType,
			Props:      c.border,
			Bounds:     rect,
			HostMarker: host,
			Flags:      flags&FlagTouchableDisabled | FlagBorder,
		})
	}

	if fg := c.foreground; fg != nil && fg.Type != nil {
		if f.opts.ForegroundOnHost && hostOut != nil {
			if hostOut.Interaction == nil {
				hostOut.Interaction = &Interaction{TouchBounds: rect}
			}
			hostOut.Interaction.Foreground = fg
		} else {
			f.emit(n.key, discForeground, &Output{
				Type:       fg.Type,
				Props:      fg.Props,
				Bounds:     rect,
				HostMarker: host,
				Flags:      flags&FlagTouchableDisabled | FlagForeground,
			})
		}
	}

	if c.visibility != nil {
		f.emitVisibility(n.key, rect, c)
	}
}

// needsHost reports whether a node must be wrapped in its own host. Natively
// interactive content carries its own interaction metadata instead.
func (f *flattener) needsHost(c *Component) bool {
	if c.wrapInHost {
		return true
	}
	if c.typ != nil {
		switch c.typ.Kind {
		case KindHost:
			return true
		case KindView:
			return false
		}
	}
	if c.hasInteraction() || c.transitionKey != "" || c.focusable != nil || c.selected != nil {
		return true
	}
	if f.opts.AccessibilityEnabled && (c.contentDescription != "" || c.importance == ImportanceYes) {
		return true
	}
	return c.foreground != nil && f.opts.ForegroundOnHost
}

func (f *flattener) interaction(c *Component, rect Rect) *Interaction {
	return &Interaction{
		Handlers:           c.handlers,
		ViewTags:           c.viewTags,
		TouchBounds:        rect.Outset(c.touchExpansion),
		Focusable:          c.focusable,
		Selected:           c.selected,
		ContentDescription: c.contentDescription,
	}
}

// emit assigns out its id and display index and appends it. A colliding id
// is replaced by a fresh one and the output is marked for recreation.
func (f *flattener) emit(key string, d discriminator, out *Output) *Output {
	id := stableID(key, d)
	out.Key = key
	out.Index = len(f.state.outputs)
	if _, dup := f.state.index[id]; dup {
		f.collisions++
		f.opts.Logger.Warn("stable id collision", "key", key, "discriminator", string(d), "index", out.Index)
		id = f.unusedID(id, func(id uint64) bool {
			_, taken := f.state.index[id]
			return taken
		})
		out.UpdateState = UpdateStateRecreate
	} else {
		out.UpdateState = f.updateState(id, out)
	}
	out.ID = id
	f.state.outputs = append(f.state.outputs, out)
	f.state.index[id] = out.Index
	return out
}

func (f *flattener) emitVisibility(key string, rect Rect, c *Component) {
	id := stableID(key, discVisibility)
	if _, dup := f.visIDs[id]; dup {
		f.collisions++
		id = f.unusedID(id, func(id uint64) bool {
			_, taken := f.visIDs[id]
			return taken
		})
	}
	f.visIDs[id] = struct{}{}
	f.state.visibility = append(f.state.visibility, &VisibilityOutput{
		ID:                 id,
		Index:              len(f.state.visibility),
		Key:                key,
		Bounds:             rect,
		Handlers:           *c.visibility,
		VisibleWidthRatio:  c.visibleWidthRatio,
		VisibleHeightRatio: c.visibleHeightRatio,
	})
}

func (f *flattener) unusedID(id uint64, taken func(uint64) bool) uint64 {
	for attempt := 1; ; attempt++ {
		next := rehash(id, attempt)
		if !taken(next) {
			return next
		}
	}
}

func (f *flattener) updateState(id uint64, out *Output) UpdateState {
	if f.prev == nil {
		return UpdateStateUnknown
	}
	i, ok := f.prev.IndexOf(id)
	if !ok {
		return UpdateStateUpdate
	}
	old := f.prev.outputs[i]
	if old.Type == out.Type && PropsEqual(old.Props, out.Props) {
		return UpdateStateReuse
	}
	return UpdateStateUpdate
}

// Package mount turns declarative component trees into flat lists of
// mountable outputs and keeps a host hierarchy in sync with them.
//
// A frame goes through three stages:
//
//   - CalculateLayout measures and positions a Component tree, diffing it
//     against the previous LayoutState to reuse measurements, and flattens
//     the result into Outputs in draw order. Every Output carries a stable
//     id derived from its position in the tree.
//   - MountState reconciles a LayoutState against what is already mounted,
//     creating, binding, moving and unmounting content inside Hosts. With
//     incremental mount enabled only outputs intersecting the viewport are
//     mounted, and scrolling is handled by walking two sorted cursors.
//   - Visibility handlers fire as outputs enter, leave and fill the
//     viewport.
//
// ComponentTree ties the stages together, calculating layouts on background
// goroutines and committing them on the owning thread.
package mount

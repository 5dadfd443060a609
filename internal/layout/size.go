package layout

// Size is a measured width and height.
type Size struct {
	Width, Height int
}

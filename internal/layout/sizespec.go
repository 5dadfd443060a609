package layout

import "fmt"

// SpecMode is the mode half of a SizeSpec.
type SpecMode uint32

const (
	// Unspecified places no limit on the measured size.
	Unspecified SpecMode = 0
	// Exactly forces the measured size to the spec's magnitude.
	Exactly SpecMode = 1
	// AtMost allows any size up to the spec's magnitude.
	AtMost SpecMode = 2
)

const (
	specModeShift = 30
	specModeMask  = 0x3 << specModeShift
	specSizeMask  = (1 << specModeShift) - 1
)

// SizeSpec packs a 2-bit mode and a 30-bit magnitude into one value. It is
// the boundary format for constraints handed to the solver and stored in
// cached measurements.
type SizeSpec int32

// MakeSizeSpec builds a SizeSpec. Negative sizes are clamped to zero.
func MakeSizeSpec(size int, mode SpecMode) SizeSpec {
	if size < 0 {
		size = 0
	}
	return SizeSpec(uint32(size)&specSizeMask | uint32(mode)<<specModeShift)
}

// ExactSpec is shorthand for MakeSizeSpec(size, Exactly).
func ExactSpec(size int) SizeSpec {
	return MakeSizeSpec(size, Exactly)
}

// AtMostSpec is shorthand for MakeSizeSpec(size, AtMost).
func AtMostSpec(size int) SizeSpec {
	return MakeSizeSpec(size, AtMost)
}

// UnspecifiedSpec returns the unbounded spec.
func UnspecifiedSpec() SizeSpec {
	return MakeSizeSpec(0, Unspecified)
}

// Mode returns the constraint mode.
func (s SizeSpec) Mode() SpecMode {
	return SpecMode((uint32(s) & specModeMask) >> specModeShift)
}

// Size returns the constraint magnitude.
func (s SizeSpec) Size() int {
	return int(uint32(s) & specSizeMask)
}

// Resolve applies the spec to a desired size.
func (s SizeSpec) Resolve(desired int) int {
	switch s.Mode() {
	case Exactly:
		return s.Size()
	case AtMost:
		return min(desired, s.Size())
	default:
		return desired
	}
}

func (s SizeSpec) String() string {
	switch s.Mode() {
	case Exactly:
		return fmt.Sprintf("EXACTLY %d", s.Size())
	case AtMost:
		return fmt.Sprintf("AT_MOST %d", s.Size())
	default:
		return "UNSPECIFIED"
	}
}

// CanReuseMeasurement reports whether a size measured as oldMeasured under
// oldSpec is still valid under newSpec.
func CanReuseMeasurement(oldSpec, newSpec SizeSpec, oldMeasured int) bool {
	if oldSpec == newSpec {
		return true
	}
	newMode, newSize := newSpec.Mode(), newSpec.Size()
	oldMode, oldSize := oldSpec.Mode(), oldSpec.Size()

	switch {
	case newMode == Exactly:
		return newSize == oldMeasured
	case oldMode == Unspecified && newMode == AtMost:
		return newSize >= oldMeasured
	case oldMode == AtMost && newMode == AtMost:
		return newSize < oldSize && oldMeasured <= newSize
	}
	return false
}

package layout

// Unit says how a Value resolves.
type Unit uint8

const (
	// UnitAuto sizes from measured content or flex distribution.
	UnitAuto Unit = iota
	// UnitFixed is a number of cells.
	UnitFixed
	// UnitPercent is a share of the parent's content box.
	UnitPercent
)

// Value is a style dimension.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto leaves the dimension to measurement.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed is n cells. A node fixed on both axes is never measured.
func Fixed(n int) Value {
	return Value{Amount: float64(n), Unit: UnitFixed}
}

// Percent is p percent (0-100) of the parent's content box.
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve converts v against the space the parent offers. Auto values
// resolve to fallback.
func (v Value) Resolve(available, fallback int) int {
	switch v.Unit {
	case UnitFixed:
		return int(v.Amount)
	case UnitPercent:
		return int(float64(available) * v.Amount / 100)
	}
	return fallback
}

func (v Value) IsAuto() bool { return v.Unit == UnitAuto }

// IsFixed reports whether v is known without asking the parent.
func (v Value) IsFixed() bool { return v.Unit == UnitFixed }

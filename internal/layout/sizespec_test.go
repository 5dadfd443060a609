package layout

import "testing"

func TestSizeSpec_RoundTrip(t *testing.T) {
	type tc struct {
		size int
		mode SpecMode
	}

	tests := map[string]tc{
		"exact":          {size: 120, mode: Exactly},
		"at most":        {size: 480, mode: AtMost},
		"unspecified":    {size: 0, mode: Unspecified},
		"large at most":  {size: specSizeMask, mode: AtMost},
		"zero exact":     {size: 0, mode: Exactly},
		"negative clamp": {size: -5, mode: Exactly},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			spec := MakeSizeSpec(tt.size, tt.mode)
			if spec.Mode() != tt.mode {
				t.Errorf("Mode() = %d, want %d", spec.Mode(), tt.mode)
			}
			want := max(tt.size, 0)
			if spec.Size() != want {
				t.Errorf("Size() = %d, want %d", spec.Size(), want)
			}
		})
	}
}

func TestSizeSpec_Resolve(t *testing.T) {
	type tc struct {
		spec    SizeSpec
		desired int
		want    int
	}

	tests := map[string]tc{
		"exact ignores desired":   {spec: ExactSpec(50), desired: 10, want: 50},
		"at most caps desired":    {spec: AtMostSpec(50), desired: 80, want: 50},
		"at most keeps smaller":   {spec: AtMostSpec(50), desired: 20, want: 20},
		"unspecified is desired":  {spec: UnspecifiedSpec(), desired: 999, want: 999},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.spec.Resolve(tt.desired); got != tt.want {
				t.Errorf("Resolve(%d) = %d, want %d", tt.desired, got, tt.want)
			}
		})
	}
}

func TestCanReuseMeasurement(t *testing.T) {
	type tc struct {
		oldSpec  SizeSpec
		newSpec  SizeSpec
		measured int
		want     bool
	}

	tests := map[string]tc{
		"identical specs":              {oldSpec: AtMostSpec(100), newSpec: AtMostSpec(100), measured: 40, want: true},
		"exact matching measured":      {oldSpec: AtMostSpec(100), newSpec: ExactSpec(40), measured: 40, want: true},
		"exact different from measure": {oldSpec: AtMostSpec(100), newSpec: ExactSpec(41), measured: 40, want: false},
		"unspecified to roomy at most": {oldSpec: UnspecifiedSpec(), newSpec: AtMostSpec(60), measured: 40, want: true},
		"unspecified to tight at most": {oldSpec: UnspecifiedSpec(), newSpec: AtMostSpec(30), measured: 40, want: false},
		"at most tightened but fits":   {oldSpec: AtMostSpec(100), newSpec: AtMostSpec(50), measured: 40, want: true},
		"at most tightened below size": {oldSpec: AtMostSpec(100), newSpec: AtMostSpec(30), measured: 40, want: false},
		"at most loosened":             {oldSpec: AtMostSpec(50), newSpec: AtMostSpec(100), measured: 50, want: false},
		"exact to unspecified":         {oldSpec: ExactSpec(40), newSpec: UnspecifiedSpec(), measured: 40, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := CanReuseMeasurement(tt.oldSpec, tt.newSpec, tt.measured)
			if got != tt.want {
				t.Errorf("CanReuseMeasurement(%v, %v, %d) = %v, want %v",
					tt.oldSpec, tt.newSpec, tt.measured, got, tt.want)
			}
		})
	}
}

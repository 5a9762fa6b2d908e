package csscolors

import "testing"

func TestNewAngleNormalizes(t *testing.T) {
	tests := []struct {
		name string
		in   uint16
		want uint16
	}{
		{"zero", 0, 0},
		{"in range", 275, 275},
		{"full revolution", 360, 0},
		{"past full revolution", 400, 40},
		{"two revolutions", 720, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewAngle(tt.in).Degrees(); got != tt.want {
				t.Errorf("NewAngle(%d).Degrees() = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestAngleAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b uint16
		want uint16
	}{
		{"plain sum", 30, 40, 70},
		{"wraps past 360", 300, 120, 60},
		{"wraps to zero", 180, 180, 0},
		{"max operands", 359, 359, 358},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewAngle(tt.a).Add(NewAngle(tt.b)).Degrees(); got != tt.want {
				t.Errorf("%d + %d = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAngleSub(t *testing.T) {
	tests := []struct {
		name string
		a, b uint16
		want uint16
	}{
		{"plain difference", 70, 40, 30},
		{"wraps below zero", 40, 120, 280},
		{"to zero", 90, 90, 0},
		{"from zero", 0, 1, 359},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewAngle(tt.a).Sub(NewAngle(tt.b)).Degrees(); got != tt.want {
				t.Errorf("%d - %d = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// Add and Sub are inverses anywhere on the circle.
func TestAngleAddSubRoundTrip(t *testing.T) {
	for d := uint16(0); d < 360; d += 7 {
		for o := uint16(0); o < 360; o += 11 {
			a := NewAngle(d)
			if got := a.Add(NewAngle(o)).Sub(NewAngle(o)); got != a {
				t.Fatalf("(%d + %d) - %d = %d, want %d", d, o, o, got.Degrees(), d)
			}
		}
	}
}

func TestAngleString(t *testing.T) {
	if got := NewAngle(192).String(); got != "192" {
		t.Errorf("String() = %q, want %q", got, "192")
	}
}

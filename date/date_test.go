package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	d := New(2012, time.November, 31)
	if got, want := d.String(), "12/01/2012"; got != want {
		t.Errorf("New(2012, 11, 31) = %q, want %q", got, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "11/28/2012", want: "11/28/2012"},
		{in: "9/1/2012", want: "09/01/2012"},
		{in: "2012-11-28", wantErr: true},
		{in: "GROSS", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := Parse(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Parse(%q) succeeded, want an error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if got := d.String(); got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBeforeAfter(t *testing.T) {
	a := MustParse("09/19/2012")
	b := MustParse("11/28/2012")
	if !a.Before(b) || b.Before(a) {
		t.Errorf("%v should be before %v", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("%v should be after %v", b, a)
	}
}

func TestZero(t *testing.T) {
	var d Date
	if !d.IsZero() {
		t.Error("zero Date should report IsZero")
	}
	if d.String() != "" {
		t.Errorf("zero Date String() = %q, want empty", d.String())
	}
}

package fifolot

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "01/02/2023", want: NewDate(2023, time.February, 1)},
		{in: "1/2/2023", want: NewDate(2023, time.February, 1)},
		{in: "31/12/2022", want: NewDate(2022, time.December, 31)},
		{in: " 15/06/2023 ", want: NewDate(2023, time.June, 15)},
		{in: "2023-02-01", want: NewDate(2023, time.February, 1)},
		{in: "2023-2-1", want: NewDate(2023, time.February, 1)},
		{in: "", wantErr: true},
		{in: "not-a-date", wantErr: true},
		{in: "32/01/2023", wantErr: true},
		{in: "01/13/2023", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) error = %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDateString(t *testing.T) {
	d := NewDate(2023, time.February, 1)
	if got, want := d.String(), "01/02/2023"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := d.ISO(), "2023-02-01"; got != want {
		t.Errorf("ISO() = %q, want %q", got, want)
	}
}

func TestDateOrdering(t *testing.T) {
	earlier := NewDate(2023, time.January, 1)
	later := NewDate(2023, time.February, 1)
	if !earlier.Before(later) {
		t.Errorf("Before() = false, want true")
	}
	if !later.After(earlier) {
		t.Errorf("After() = false, want true")
	}
	if earlier.Before(earlier) || earlier.After(earlier) {
		t.Errorf("a date must not be before or after itself")
	}
	if (Date{}).IsZero() == false {
		t.Errorf("IsZero() = false for the zero date")
	}
}

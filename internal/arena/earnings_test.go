package arena

import "testing"

func int64Ptr(v int64) *int64 {
	return &v
}

func TestFormatEarningsAbsent(t *testing.T) {
	t.Parallel()

	if got := FormatEarnings(nil); got != "not earned yet" {
		t.Fatalf("FormatEarnings(nil) = %q, want %q", got, "not earned yet")
	}
}

func TestFormatEarnings(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  int64
		want string
	}{
		{name: "one whole unit", raw: 1_000_000, want: "1.00 WLDD"},
		{name: "rounds down", raw: 1_234_567, want: "1.23 WLDD"},
		{name: "rounds up", raw: 1_236_000, want: "1.24 WLDD"},
		{name: "zero", raw: 0, want: "0.00 WLDD"},
		{name: "sub-cent", raw: 4_999, want: "0.00 WLDD"},
		{name: "half cent boundary", raw: 5_000, want: "0.01 WLDD"},
		{name: "large value stays exact", raw: 9_007_199_254_740_993, want: "9007199254.74 WLDD"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatEarnings(int64Ptr(tc.raw)); got != tc.want {
				t.Fatalf("FormatEarnings(%d) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

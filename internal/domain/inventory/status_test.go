package inventory

import "testing"

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		quantity    int
		minQuantity int
		want        Status
	}{
		{0, 5, StatusZeroed},
		{0, 0, StatusZeroed},
		{2, 5, StatusLow},
		{5, 5, StatusLow},
		{6, 5, StatusNormal},
		{100, 10, StatusNormal},
		{1, 0, StatusNormal},
	}

	for _, tc := range cases {
		got := DeriveStatus(tc.quantity, tc.minQuantity)
		if got != tc.want {
			t.Errorf("DeriveStatus(%d, %d) = %q, want %q",
				tc.quantity, tc.minQuantity, got, tc.want)
		}
	}
}

package payments

import "testing"

func TestTerminal(t *testing.T) {
	for _, s := range []string{StatusPaid, StatusExpired, StatusFailed} {
		if !Terminal(s) {
			t.Errorf("Terminal(%q) = false, want true", s)
		}
	}
	if Terminal(StatusPending) {
		t.Error("Terminal(pending) = true, want false")
	}
}

func TestNextStatus(t *testing.T) {
	tests := []struct {
		name    string
		current string
		mapped  string
		want    string
		apply   bool
	}{
		{"pending to paid", StatusPending, StatusPaid, StatusPaid, true},
		{"pending to expired", StatusPending, StatusExpired, StatusExpired, true},
		{"pending to failed", StatusPending, StatusFailed, StatusFailed, true},
		{"pending refresh", StatusPending, StatusPending, StatusPending, true},
		{"paid replay", StatusPaid, StatusPaid, StatusPaid, false},
		{"late pending after paid", StatusPaid, StatusPending, StatusPaid, false},
		{"expire after paid", StatusPaid, StatusExpired, StatusPaid, false},
		{"paid after expired", StatusExpired, StatusPaid, StatusExpired, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, apply := NextStatus(tt.current, tt.mapped)
			if got != tt.want || apply != tt.apply {
				t.Fatalf("NextStatus(%q, %q) = (%q, %v), want (%q, %v)",
					tt.current, tt.mapped, got, apply, tt.want, tt.apply)
			}
		})
	}
}

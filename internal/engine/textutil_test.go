package engine

import "testing"

func TestCleanHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"tags stripped", "<p>Backend <b>Engineer</b></p>", "Backend Engineer"},
		{"no tags", "plain text", "plain text"},
		{"trims", "  <div>x</div>  ", "x"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanHTML(tt.in); got != tt.want {
				t.Errorf("CleanHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeLines(t *testing.T) {
	in := "John Smith\r\nEngineer  \t\r\nAcme"
	want := "John Smith\nEngineer\nAcme"
	if got := NormalizeLines(in); got != want {
		t.Errorf("NormalizeLines = %q, want %q", got, want)
	}
}

func TestCanonicalPostingKey(t *testing.T) {
	tests := []struct {
		name           string
		t1, l1, t2, l2 string
		wantSame       bool
	}{
		{"case and punctuation", "Senior Engineer (Backend)", "NYC", "senior engineer backend", "nyc", true},
		{"different title", "Senior Engineer", "NYC", "Staff Engineer", "NYC", false},
		{"different location", "Senior Engineer", "NYC", "Senior Engineer", "SF", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k1 := CanonicalPostingKey(tt.t1, tt.l1)
			k2 := CanonicalPostingKey(tt.t2, tt.l2)
			if (k1 == k2) != tt.wantSame {
				t.Errorf("keys %q vs %q, wantSame=%v", k1, k2, tt.wantSame)
			}
		})
	}
}

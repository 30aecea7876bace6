package role

import (
	"errors"
	"testing"
)

func TestTableInvariants(t *testing.T) {
	seen := make(map[int]string)
	for i, r := range All() {
		if want := i + 1; r.SequenceOrder != want {
			t.Errorf("role %s: SequenceOrder = %d, want %d", r.ID, r.SequenceOrder, want)
		}
		if prev, dup := seen[r.SequenceOrder]; dup {
			t.Errorf("roles %s and %s share sequence order %d", prev, r.ID, r.SequenceOrder)
		}
		seen[r.SequenceOrder] = r.ID
		if len(r.Keywords) == 0 {
			t.Errorf("role %s has no keywords", r.ID)
		}
	}
}

func TestSequence(t *testing.T) {
	want := []string{Requirements, Spec, Implementation, Testing, Deploy}
	got := Sequence()
	if len(got) != len(want) {
		t.Fatalf("Sequence() returned %d roles, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Sequence()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGet(t *testing.T) {
	r, err := Get(Spec)
	if err != nil {
		t.Fatalf("Get(spec) error: %v", err)
	}
	if r.SequenceOrder != 2 {
		t.Errorf("spec sequence order = %d, want 2", r.SequenceOrder)
	}

	_, err = Get("architect")
	if !errors.Is(err, ErrInvalidRole) {
		t.Errorf("Get(architect) error = %v, want ErrInvalidRole", err)
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		id      string
		want    string
		wantErr bool
	}{
		{id: Requirements, want: Spec},
		{id: Spec, want: Implementation},
		{id: Implementation, want: Testing},
		{id: Testing, want: Deploy},
		{id: Deploy, want: ""},
		{id: "nope", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, err := Next(tt.id)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidRole) {
					t.Fatalf("Next(%q) error = %v, want ErrInvalidRole", tt.id, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Next(%q) error: %v", tt.id, err)
			}
			if got != tt.want {
				t.Errorf("Next(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestPreviousInvertsNext(t *testing.T) {
	for _, id := range Sequence() {
		prev, err := Previous(id)
		if err != nil {
			t.Fatalf("Previous(%q) error: %v", id, err)
		}
		if id == Entry() {
			if prev != "" {
				t.Errorf("Previous(entry) = %q, want none", prev)
			}
			continue
		}
		roundTrip, err := Next(prev)
		if err != nil {
			t.Fatalf("Next(%q) error: %v", prev, err)
		}
		if roundTrip != id {
			t.Errorf("Next(Previous(%q)) = %q, want %q", id, roundTrip, id)
		}
	}
}

func TestIsValidTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{name: "adjacent forward", from: Requirements, to: Spec, want: true},
		{name: "skip a phase", from: Requirements, to: Implementation, want: false},
		{name: "backward", from: Testing, to: Implementation, want: false},
		{name: "from terminal", from: Deploy, to: Requirements, want: false},
		{name: "unknown from", from: "nope", to: Spec, want: false},
		{name: "unknown to", from: Spec, to: "nope", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("IsValidTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

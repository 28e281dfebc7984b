package models

import (
	"fmt"
	"testing"
)

func planTree(plans ...*AccountPlan) func(int) (*AccountPlan, error) {
	byId := make(map[int]*AccountPlan, len(plans))
	for _, p := range plans {
		byId[p.ID] = p
	}
	return func(id int) (*AccountPlan, error) {
		p, ok := byId[id]
		if !ok {
			return nil, fmt.Errorf("account %d not found", id)
		}
		return p, nil
	}
}

func intPtr(v int) *int { return &v }

func TestChainContains(t *testing.T) {
	// 1 <- 2 <- 3
	root := &AccountPlan{ID: 1}
	mid := &AccountPlan{ID: 2, ParentId: intPtr(1)}
	leaf := &AccountPlan{ID: 3, ParentId: intPtr(2)}
	fetch := planTree(root, mid, leaf)

	tests := []struct {
		name  string
		start *AccountPlan
		id    int
		want  bool
	}{
		{"direct self parent", leaf, 3, true},
		{"ancestor two levels up", leaf, 1, true},
		{"unrelated account", leaf, 99, false},
		{"root has no ancestors", root, 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := chainContains(tt.start, tt.id, fetch)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("chainContains = %v, want %v", got, tt.want)
			}
		})
	}
}

// Re-parenting A under B after B was parented under A must be detected:
// walking B's chain finds A.
func TestChainContainsDetectsReparentLoop(t *testing.T) {
	a := &AccountPlan{ID: 10}
	b := &AccountPlan{ID: 11, ParentId: intPtr(10)}
	fetch := planTree(a, b)

	got, err := chainContains(b, a.ID, fetch)
	if err != nil {
		t.Fatal(err)
	}
	if !got {
		t.Error("expected the loop through b -> a to be detected")
	}
}

// A pre-existing cycle in stored data must not loop forever; the depth
// limit reports it as a hit so the update is rejected.
func TestChainContainsDepthLimit(t *testing.T) {
	a := &AccountPlan{ID: 20, ParentId: intPtr(21)}
	b := &AccountPlan{ID: 21, ParentId: intPtr(20)}
	fetch := planTree(a, b)

	got, err := chainContains(a, 99, fetch)
	if err != nil {
		t.Fatal(err)
	}
	if !got {
		t.Error("expected the depth limit to flag the corrupted chain")
	}
}

package tui

import "testing"

func TestRolesFilter(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantCount int
		wantFirst string
	}{
		{
			name:      "empty query matches everything",
			query:     "",
			wantCount: 3,
			wantFirst: "Administrator",
		},
		{
			name:      "case insensitive match",
			query:     "ADMIN",
			wantCount: 1,
			wantFirst: "Administrator",
		},
		{
			name:      "partial match",
			query:     "man",
			wantCount: 1,
			wantFirst: "Manager",
		},
		{
			name:      "no match",
			query:     "auditor",
			wantCount: 0,
		},
		{
			name:      "whitespace only matches everything",
			query:     "   ",
			wantCount: 3,
			wantFirst: "Administrator",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewRolesModel()
			m.search.SetValue(tt.query)

			got := m.filtered()
			if len(got) != tt.wantCount {
				t.Fatalf("filtered() returned %d roles, want %d", len(got), tt.wantCount)
			}
			if tt.wantCount > 0 && got[0].Name != tt.wantFirst {
				t.Errorf("first match = %s, want %s", got[0].Name, tt.wantFirst)
			}
		})
	}
}

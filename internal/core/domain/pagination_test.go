package domain

import "testing"

func TestNewPage(t *testing.T) {
	cases := []struct {
		name       string
		skip       int
		limit      int
		total      int64
		page       int
		totalPages int
	}{
		{"first page", 0, 100, 250, 1, 3},
		{"second page", 100, 100, 250, 2, 3},
		{"exact fit", 0, 50, 100, 1, 2},
		{"empty", 0, 10, 0, 1, 0},
		{"zero limit collapses", 0, 0, 42, 1, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPage[int](nil, tc.skip, tc.limit, tc.total)
			if p.Page != tc.page {
				t.Fatalf("page: got %d, want %d", p.Page, tc.page)
			}
			if p.TotalPages != tc.totalPages {
				t.Fatalf("total_pages: got %d, want %d", p.TotalPages, tc.totalPages)
			}
		})
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleAdmin.Valid() || !RoleUser.Valid() {
		t.Fatalf("known roles must be valid")
	}
	if Role("guest").Valid() {
		t.Fatalf("unknown role must be invalid")
	}
}

func TestUserPublicDropsPassword(t *testing.T) {
	u := &User{ID: "1", Username: "alice", Password: "digest"}
	p := u.Public()
	if p.Password != "" {
		t.Fatalf("Public must clear the password")
	}
	if u.Password != "digest" {
		t.Fatalf("Public must not mutate the receiver")
	}
}

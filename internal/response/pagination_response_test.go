package response

import "testing"

func TestNewPageRequest(t *testing.T) {
	cases := []struct {
		page, size         int
		wantPage, wantSize int
	}{
		{0, 0, 1, DefaultPageSize},
		{3, 10, 3, 10},
		{2, 500, 2, MaxPageSize},
	}
	for _, c := range cases {
		got := NewPageRequest(c.page, c.size)
		if got.Page != c.wantPage || got.PageSize != c.wantSize {
			t.Errorf("NewPageRequest(%d, %d) = %+v", c.page, c.size, got)
		}
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(NewPageRequest(2, 10), 25, 10)
	if p.TotalPages != 3 || !p.HasMore || p.From != 11 || p.To != 20 {
		t.Fatalf("unexpected pagination: %+v", p)
	}

	last := NewPagination(NewPageRequest(3, 10), 25, 5)
	if last.HasMore || last.From != 21 || last.To != 25 {
		t.Fatalf("unexpected last page: %+v", last)
	}

	empty := NewPagination(NewPageRequest(1, 10), 0, 0)
	if empty.TotalPages != 0 || empty.HasMore || empty.From != 0 || empty.To != 0 {
		t.Fatalf("unexpected empty pagination: %+v", empty)
	}
}

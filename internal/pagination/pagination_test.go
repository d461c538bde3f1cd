package pagination

import "testing"

func TestPageRequest_Defaults(t *testing.T) {
	t.Run("fills the first page of twenty", func(t *testing.T) {
		var req PageRequest
		req.Defaults()
		if req.Page != 1 || req.PageSize != 20 {
			t.Errorf("expected page 1 / size 20, got %d / %d", req.Page, req.PageSize)
		}
	})

	t.Run("keeps an explicit window", func(t *testing.T) {
		req := PageRequest{Page: 3, PageSize: 5}
		req.Defaults()
		if req.Page != 3 || req.PageSize != 5 {
			t.Errorf("expected page 3 / size 5, got %d / %d", req.Page, req.PageSize)
		}
	})
}

func TestNewPageResponse(t *testing.T) {
	t.Run("rounds total pages up", func(t *testing.T) {
		resp := NewPageResponse([]int{1, 2}, 1, 2, 5)
		if resp.TotalPages != 3 {
			t.Errorf("expected 3 total pages for 5 items of size 2, got %d", resp.TotalPages)
		}
	})

	t.Run("nil data becomes an empty slice", func(t *testing.T) {
		resp := NewPageResponse[int](nil, 1, 20, 0)
		if resp.Data == nil {
			t.Error("expected an empty slice, got nil")
		}
		if resp.TotalPages != 0 {
			t.Errorf("expected 0 total pages, got %d", resp.TotalPages)
		}
	})
}

package response_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		total     int64
		wantPages int
	}{
		{name: "no records", page: 1, limit: 10, total: 0, wantPages: 0},
		{name: "exact fit", page: 1, limit: 10, total: 20, wantPages: 2},
		{name: "partial last page", page: 2, limit: 10, total: 25, wantPages: 3},
		{name: "single record", page: 1, limit: 10, total: 1, wantPages: 1},
		{name: "limit one", page: 3, limit: 1, total: 3, wantPages: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.page, p.Current)
			assert.Equal(t, tt.wantPages, p.Pages)
			assert.Equal(t, tt.total, p.Total)
		})
	}
}

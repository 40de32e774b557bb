package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/ghuser/rxledger/services/pharmacy/domain/repositories"
)

func TestQueryOptsFromRequest(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want repositories.QueryOpts
	}{
		{
			name: "no params returns the full list",
			url:  "/api/medicines",
			want: repositories.QueryOpts{},
		},
		{
			name: "page and size without paginate are ignored",
			url:  "/api/medicines?page=3&size=5",
			want: repositories.QueryOpts{},
		},
		{
			name: "paginate=false returns the full list",
			url:  "/api/medicines?paginate=false&page=2&size=5",
			want: repositories.QueryOpts{},
		},
		{
			name: "paginate=true applies defaults",
			url:  "/api/medicines?paginate=true",
			want: repositories.QueryOpts{Limit: 20, Offset: 0},
		},
		{
			name: "paginate=true with page and size",
			url:  "/api/medicines?paginate=true&page=3&size=5",
			want: repositories.QueryOpts{Limit: 5, Offset: 10},
		},
		{
			name: "size is clamped to the maximum",
			url:  "/api/medicines?paginate=true&size=500",
			want: repositories.QueryOpts{Limit: 100, Offset: 0},
		},
		{
			name: "page below one is treated as the first page",
			url:  "/api/medicines?paginate=true&page=0&size=5",
			want: repositories.QueryOpts{Limit: 5, Offset: 0},
		},
		{
			name: "unparseable paginate value returns the full list",
			url:  "/api/medicines?paginate=yes-please",
			want: repositories.QueryOpts{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			if got := queryOptsFromRequest(r); got != tt.want {
				t.Fatalf("queryOptsFromRequest(%q) = %+v, want %+v", tt.url, got, tt.want)
			}
		})
	}
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryFilters_Normalize(t *testing.T) {
	tests := []struct {
		name         string
		in           HistoryFilters
		wantPage     int
		wantPageSize int
	}{
		{name: "valores padrão", in: HistoryFilters{}, wantPage: 1, wantPageSize: DefaultPageSize},
		{name: "tamanho acima do máximo", in: HistoryFilters{Page: 2, PageSize: 500}, wantPage: 2, wantPageSize: MaxPageSize},
		{name: "página acima do máximo", in: HistoryFilters{Page: 1 << 62, PageSize: 100}, wantPage: MaxPage, wantPageSize: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.in
			f.Normalize()
			assert.Equal(t, tt.wantPage, f.Page)
			assert.Equal(t, tt.wantPageSize, f.PageSize)
			assert.GreaterOrEqual(t, (f.Page-1)*f.PageSize, 0)
		})
	}
}

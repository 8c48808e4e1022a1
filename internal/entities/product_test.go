package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductDecade(t *testing.T) {
	year := func(y int) *int { return &y }

	tests := []struct {
		name      string
		year      *int
		wantStart int
		wantEnd   int
		wantOK    bool
	}{
		{"unknown", nil, 0, 0, false},
		{"zero", year(0), 0, 0, false},
		{"start of decade", year(1990), 1990, 1999, true},
		{"end of decade", year(1999), 1990, 1999, true},
		{"recent", year(2024), 2020, 2029, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{ReleaseYear: tt.year}
			start, end, ok := p.Decade()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

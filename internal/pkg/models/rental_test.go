package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want int64
	}{
		{
			name: "same day",
			a:    time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "one week",
			a:    time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC),
			want: 7,
		},
		{
			name: "time of day discarded",
			a:    time.Date(2026, time.March, 1, 23, 59, 0, 0, time.UTC),
			b:    time.Date(2026, time.March, 2, 0, 1, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "reversed order is negative",
			a:    time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
			want: -7,
		},
		{
			name: "across month boundary",
			a:    time.Date(2026, time.February, 27, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(tt.a, tt.b))
		})
	}
}

func TestRentalIsActive(t *testing.T) {
	r := &Rental{}
	assert.True(t, r.IsActive())

	returned := time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC)
	r.ActualReturnDate = &returned
	assert.False(t, r.IsActive())
}

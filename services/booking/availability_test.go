package booking

import (
	"testing"
	"time"

	"hotelier/models"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{
			name:   "disjoint ranges",
			aStart: date(2026, time.January, 1), aEnd: date(2026, time.January, 5),
			bStart: date(2026, time.January, 10), bEnd: date(2026, time.January, 12),
			want: false,
		},
		{
			name:   "back to back turnover is not an overlap",
			aStart: date(2026, time.January, 1), aEnd: date(2026, time.January, 5),
			bStart: date(2026, time.January, 5), bEnd: date(2026, time.January, 8),
			want: false,
		},
		{
			name:   "partial overlap",
			aStart: date(2026, time.January, 1), aEnd: date(2026, time.January, 5),
			bStart: date(2026, time.January, 4), bEnd: date(2026, time.January, 8),
			want: true,
		},
		{
			name:   "contained range",
			aStart: date(2026, time.January, 1), aEnd: date(2026, time.January, 10),
			bStart: date(2026, time.January, 3), bEnd: date(2026, time.January, 5),
			want: true,
		},
		{
			name:   "identical range",
			aStart: date(2026, time.January, 1), aEnd: date(2026, time.January, 5),
			bStart: date(2026, time.January, 1), bEnd: date(2026, time.January, 5),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RangesOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, RangesOverlap(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestIsAvailable(t *testing.T) {
	active := []models.Booking{
		{CheckInDate: date(2026, time.March, 1), CheckOutDate: date(2026, time.March, 5), Status: models.StatusBooked},
		{CheckInDate: date(2026, time.March, 10), CheckOutDate: date(2026, time.March, 12), Status: models.StatusCheckedIn},
	}

	assert.True(t, IsAvailable(date(2026, time.March, 5), date(2026, time.March, 10), active))
	assert.False(t, IsAvailable(date(2026, time.March, 4), date(2026, time.March, 6), active))
	assert.False(t, IsAvailable(date(2026, time.March, 11), date(2026, time.March, 15), active))
	assert.True(t, IsAvailable(date(2026, time.March, 12), date(2026, time.March, 20), active))
	assert.True(t, IsAvailable(date(2026, time.March, 1), date(2026, time.March, 5), nil))
}

func TestFindConflicts(t *testing.T) {
	active := []models.Booking{
		{ID: "a", CheckInDate: date(2026, time.March, 1), CheckOutDate: date(2026, time.March, 5)},
		{ID: "b", CheckInDate: date(2026, time.March, 6), CheckOutDate: date(2026, time.March, 9)},
	}

	conflicts := FindConflicts(date(2026, time.March, 4), date(2026, time.March, 7), active)
	assert.Len(t, conflicts, 2)

	conflicts = FindConflicts(date(2026, time.March, 5), date(2026, time.March, 6), active)
	assert.Empty(t, conflicts)
}

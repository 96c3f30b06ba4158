package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatHour(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "00:00"},
		{9, "09:00"},
		{11, "11:00"},
		{12, "12:00"},
		{14, "14:00"},
		{23, "23:00"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatHour(tt.hour))
		})
	}
}

func TestPartition_SplitsAtNoon(t *testing.T) {
	slots := []AvailabilitySlot{
		{Hour: 9, Available: true},
		{Hour: 10, Available: false},
		{Hour: 14, Available: true},
	}

	morning, afternoon := Partition(slots)

	require.Len(t, morning, 2)
	require.Len(t, afternoon, 1)

	assert.Equal(t, DisplaySlot{Hour: 9, Available: true, Label: "09:00"}, morning[0])
	assert.Equal(t, DisplaySlot{Hour: 10, Available: false, Label: "10:00"}, morning[1])
	assert.Equal(t, DisplaySlot{Hour: 14, Available: true, Label: "14:00"}, afternoon[0])
}

func TestPartition_EverySlotExactlyOnce(t *testing.T) {
	var slots []AvailabilitySlot
	for h := 0; h <= 23; h++ {
		slots = append(slots, AvailabilitySlot{Hour: h, Available: h%2 == 0})
	}

	morning, afternoon := Partition(slots)

	assert.Equal(t, len(slots), len(morning)+len(afternoon))
	for _, ds := range morning {
		assert.Less(t, ds.Hour, 12)
	}
	for _, ds := range afternoon {
		assert.GreaterOrEqual(t, ds.Hour, 12)
	}
}

func TestPartition_PreservesFeedOrder(t *testing.T) {
	// The feed gives no ordering guarantee; display order is feed order.
	slots := []AvailabilitySlot{
		{Hour: 16, Available: true},
		{Hour: 8, Available: true},
		{Hour: 13, Available: false},
		{Hour: 7, Available: false},
	}

	morning, afternoon := Partition(slots)

	assert.Equal(t, []int{8, 7}, []int{morning[0].Hour, morning[1].Hour})
	assert.Equal(t, []int{16, 13}, []int{afternoon[0].Hour, afternoon[1].Hour})
}

func TestPartition_Empty(t *testing.T) {
	morning, afternoon := Partition(nil)
	assert.Empty(t, morning)
	assert.Empty(t, afternoon)
}

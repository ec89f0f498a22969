package transfer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFee(t *testing.T) {
	tests := []struct {
		amount int64
		want   int64
	}{
		{0, 0},
		{-5, 0},
		{9, 0},
		{10, 1},
		{19, 1},
		{909, 90},
		{1000, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Fee(tt.amount), "Fee(%d)", tt.amount)
	}
}

func TestMaxSendable(t *testing.T) {
	tests := []struct {
		balance int64
		want    int64
	}{
		{-1, 0},
		{0, 0},
		{1, 1},
		{10, 9},
		{11, 10},
		{1000, 909},
		{2000, 1819},
		{2200, 2000},
		{math.MaxInt64, 8384883669867978007},
		{math.MaxInt64 - 1, 8384883669867978006},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MaxSendable(tt.balance), "MaxSendable(%d)", tt.balance)
	}
}

func TestMaxSendableIsMaximal(t *testing.T) {
	for b := int64(0); b <= 5000; b++ {
		a := MaxSendable(b)
		if a+Fee(a) > b {
			t.Fatalf("MaxSendable(%d)=%d overdraws: %d", b, a, a+Fee(a))
		}
		if next := a + 1; next <= b && next+Fee(next) <= b {
			t.Fatalf("MaxSendable(%d)=%d is not maximal, %d also fits", b, a, next)
		}
	}
}

func TestMaxSendableNearInt64Limit(t *testing.T) {
	for _, b := range []int64{math.MaxInt64, math.MaxInt64 - 1, math.MaxInt64 - 9, 1 << 62} {
		a := MaxSendable(b)
		assert.LessOrEqual(t, a, b-Fee(a), "MaxSendable(%d)=%d overdraws", b, a)
		next := a + 1
		assert.Greater(t, next, b-Fee(next), "MaxSendable(%d)=%d is not maximal", b, a)
	}
}

func TestSplitAmong(t *testing.T) {
	assert.Equal(t, int64(500), SplitAmong(1000, 2))
	assert.Equal(t, int64(333), SplitAmong(1000, 3))
	assert.Equal(t, int64(0), SplitAmong(1000, 0))
	assert.Equal(t, int64(0), SplitAmong(-10, 2))
}

func TestDecay(t *testing.T) {
	assert.Equal(t, []int64{909, 818, 736, 662, 595}, Schedule(909, 5))
	assert.Equal(t, int64(0), Decay(1))
	assert.Equal(t, int64(9), Decay(10))
	assert.Equal(t, int64(8), Decay(9))
}

func TestDecayLargeAmounts(t *testing.T) {
	assert.Equal(t, int64(1_800_000_000_000_000_000), Decay(2_000_000_000_000_000_000))
	assert.Equal(t, int64(8301034833169298226), Decay(math.MaxInt64))

	got := Schedule(2_000_000_000_000_000_000, 5)
	assert.Len(t, got, 5)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i], got[i-1])
		assert.Positive(t, got[i])
	}
}

func TestDecayTerminates(t *testing.T) {
	amount := int64(1_000_000)
	steps := 0
	for amount > 0 {
		amount = Decay(amount)
		steps++
		if steps > 1000 {
			t.Fatal("decay did not reach zero")
		}
	}
}

func TestScheduleStopsAtZero(t *testing.T) {
	assert.Equal(t, []int64{2, 1}, Schedule(2, 5))
	assert.Empty(t, Schedule(0, 5))
}

package transfer

// FeeDivisor expresses the 10% transfer fee as amount / FeeDivisor.
const FeeDivisor = 10

// Fee returns floor(amount / 10). Negative amounts have no fee.
func Fee(amount int64) int64 {
	if amount <= 0 {
		return 0
	}
	return amount / FeeDivisor
}

// MaxSendable returns the largest amount such that
// amount + Fee(amount) <= balance.
//
// amount + Fee(amount) is non-decreasing in amount, so a binary search over
// [0, balance] converges on the exact maximum. The comparison is written as
// mid <= balance-Fee(mid) so that no intermediate value exceeds balance.
func MaxSendable(balance int64) int64 {
	if balance <= 0 {
		return 0
	}
	low, high := int64(0), balance
	for low < high {
		// Upper midpoint: mid > low, so the loop always makes progress.
		mid := high - (high-low)/2
		if mid <= balance-Fee(mid) {
			low = mid
		} else {
			high = mid - 1
		}
	}
	return low
}

// SplitAmong returns the per-target share of total. The remainder of the
// division is dropped, never distributed.
func SplitAmong(total int64, targets int) int64 {
	if targets <= 0 || total <= 0 {
		return 0
	}
	return total / int64(targets)
}

// Decay returns floor(amount * 0.9), the amount offered after a failed attempt.
// It is computed as amount - ceil(amount/10) and never multiplies.
func Decay(amount int64) int64 {
	if amount <= 0 {
		return 0
	}
	cut := amount / 10
	if amount%10 != 0 {
		cut++
	}
	return amount - cut
}

// Schedule lists the amounts an Attempt loop would offer for a target that
// always rejects, starting at amount and bounded by maxAttempts.
func Schedule(amount int64, maxAttempts int) []int64 {
	out := make([]int64, 0, maxAttempts)
	for i := 0; i < maxAttempts && amount > 0; i++ {
		out = append(out, amount)
		amount = Decay(amount)
	}
	return out
}

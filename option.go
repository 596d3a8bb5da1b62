package pma

// Option configures a PMA at construction time. Option values are produced
// by the With* functions below and passed to New.
type Option interface {
	set(*options)
}

type optFn func(*options)

func (f optFn) set(o *options) { f(o) }

type options struct {
	maxCapacity int
	minCapacity int
}

// WithMaxCapacity caps the backing array at cap slots. Insert and Delete
// return ErrCapacityExceeded instead of growing or shrinking past it,
// leaving the PMA's prior state untouched. The default is the hard ceiling
// imposed by spread's fixed-point arithmetic (2^56 - 1).
func WithMaxCapacity(cap int) Option {
	return optFn(func(o *options) { o.maxCapacity = cap })
}

// WithMinCapacity hints at an expected occupancy so that New sizes the
// backing array for it up front. The hint affects only that initial
// allocation: every later resize derives the layout from the current count
// alone, so while the count is far below the hint, the first Insert or
// Delete whose rebalance reaches the root shrinks the array.
func WithMinCapacity(cap int) Option {
	return optFn(func(o *options) { o.minCapacity = cap })
}

func getOpts(opts []Option) options {
	o := options{maxCapacity: maxSlots}
	for _, op := range opts {
		op.set(&o)
	}
	if o.maxCapacity <= 0 || o.maxCapacity > maxSlots {
		o.maxCapacity = maxSlots
	}
	if o.minCapacity < 0 {
		o.minCapacity = 0
	}
	return o
}

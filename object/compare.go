package object

import "fmt"

// Equal compares a and b: both-none compares equal; matching primitive
// kinds compare by value; an Instance with a unary __eq__ dispatches to
// it; anything else is a comparison error.
func Equal(a, b Handle, ctx Context) (bool, error) {
	if a.IsNone() && b.IsNone() {
		return true, nil
	}
	if an, ok := a.Number(); ok {
		if bn, ok := b.Number(); ok {
			return an.Value == bn.Value, nil
		}
	}
	if as, ok := a.Str(); ok {
		if bs, ok := b.Str(); ok {
			return as.Value == bs.Value, nil
		}
	}
	if ab, ok := a.Bool(); ok {
		if bb, ok := b.Bool(); ok {
			return ab.Value == bb.Value, nil
		}
	}
	if ai, ok := a.Instance(); ok && ai.HasMethod("__eq__", 1) {
		result, err := ai.Call("__eq__", []Handle{b}, ctx)
		if err != nil {
			return false, err
		}
		return IsTrue(result), nil
	}
	return false, fmt.Errorf("cannot compare objects for equality")
}

// Less compares a and b by the same rules as Equal, except that unlike
// Equal, comparing two none handles is a comparison error rather than
// true: ordering two absent values has no sensible answer.
func Less(a, b Handle, ctx Context) (bool, error) {
	if an, ok := a.Number(); ok {
		if bn, ok := b.Number(); ok {
			return an.Value < bn.Value, nil
		}
	}
	if as, ok := a.Str(); ok {
		if bs, ok := b.Str(); ok {
			return as.Value < bs.Value, nil
		}
	}
	if ab, ok := a.Bool(); ok {
		if bb, ok := b.Bool(); ok {
			return !ab.Value && bb.Value, nil
		}
	}
	if ai, ok := a.Instance(); ok && ai.HasMethod("__lt__", 1) {
		result, err := ai.Call("__lt__", []Handle{b}, ctx)
		if err != nil {
			return false, err
		}
		return IsTrue(result), nil
	}
	return false, fmt.Errorf("cannot compare objects for ordering")
}

// NotEqual is the negation of Equal.
func NotEqual(a, b Handle, ctx Context) (bool, error) {
	eq, err := Equal(a, b, ctx)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// LessOrEqual is Less || Equal, short-circuiting on failure: if Less
// errors, that error propagates without trying Equal.
func LessOrEqual(a, b Handle, ctx Context) (bool, error) {
	less, err := Less(a, b, ctx)
	if err != nil {
		return false, err
	}
	if less {
		return true, nil
	}
	return Equal(a, b, ctx)
}

// Greater is the negation of LessOrEqual.
func Greater(a, b Handle, ctx Context) (bool, error) {
	le, err := LessOrEqual(a, b, ctx)
	if err != nil {
		return false, err
	}
	return !le, nil
}

// GreaterOrEqual is the negation of Less.
func GreaterOrEqual(a, b Handle, ctx Context) (bool, error) {
	less, err := Less(a, b, ctx)
	if err != nil {
		return false, err
	}
	return !less, nil
}

package timeline

import "fmt"

// MeasureMode says how a host constrains one dimension of the container
type MeasureMode int

const (
	// Unspecified leaves the dimension unconstrained
	Unspecified MeasureMode = iota
	// Exactly forces the dimension to the given size
	Exactly
	// AtMost allows any size up to the given one
	AtMost
)

// String returns the mode name
func (m MeasureMode) String() string {
	switch m {
	case Unspecified:
		return "unspecified"
	case Exactly:
		return "exactly"
	case AtMost:
		return "at-most"
	default:
		return fmt.Sprintf("MeasureMode(%d)", int(m))
	}
}

// MeasureSpec is a constraint on one dimension
type MeasureSpec struct {
	Mode MeasureMode
	Size float32
}

// Exact returns a spec forcing size
func Exact(size float32) MeasureSpec {
	return MeasureSpec{Mode: Exactly, Size: size}
}

// UpTo returns a spec capping the dimension at size
func UpTo(size float32) MeasureSpec {
	return MeasureSpec{Mode: AtMost, Size: size}
}

// Unbounded returns a spec with no constraint
func Unbounded() MeasureSpec {
	return MeasureSpec{Mode: Unspecified}
}

// resolveStack applies the stacking-axis rule: exact wins, at-most caps the content
func (s MeasureSpec) resolveStack(content float32) float32 {
	switch s.Mode {
	case Exactly:
		return s.Size
	case AtMost:
		if s.Size < content {
			return s.Size
		}
		return content
	default:
		return content
	}
}

// resolveCross applies the cross-axis rule: exact wins, anything else uses the content.
// An at-most cross constraint does not cap the content.
func (s MeasureSpec) resolveCross(content float32) float32 {
	if s.Mode == Exactly {
		return s.Size
	}
	return content
}

package license

import "github.com/gogpu/metafont/param"

// Result is the outcome of a license check.
type Result int

const (
	Valid Result = iota
	Expired
	PlatformDenied
	RightDenied
	TitleMismatch
	SeatLimitExceeded
	ParamsMismatch
)

func (r Result) String() string {
	switch r {
	case Valid:
		return "valid"
	case Expired:
		return "expired"
	case PlatformDenied:
		return "platform denied"
	case RightDenied:
		return "right denied"
	case TitleMismatch:
		return "title mismatch"
	case SeatLimitExceeded:
		return "seat limit exceeded"
	case ParamsMismatch:
		return "params mismatch"
	}
	return "unknown"
}

// Check is the runtime context a license is validated against.
type Check struct {
	// Now is the current time in epoch seconds.
	Now uint32
	// Platform is the platform the font is used on.
	Platform Platform
	// Right is the usage right being exercised.
	Right Rights
	// TitleID is the running game title.
	TitleID uint32
	// Seats is the current concurrent seat count.
	Seats uint16
	// Params is the parameter set the font was generated from.
	Params param.ParamSet
}

// Validate checks the license against the runtime context. Parametric
// licenses short-circuit every restriction except the parameter hash.
func (l *License) Validate(c Check) Result {
	enc := c.Params.Encode()
	paramsHash := fnv1a(enc[:])

	if l.Type == TypeParametric {
		if paramsHash != l.ParamsHash {
			return ParamsMismatch
		}
		return Valid
	}

	if l.Expires > 0 && c.Now > l.Expires {
		return Expired
	}
	if !l.Platform.Has(c.Platform) {
		return PlatformDenied
	}
	if !l.Rights.Has(c.Right) {
		return RightDenied
	}
	if l.TitleID != 0 && l.TitleID != c.TitleID {
		return TitleMismatch
	}
	if l.MaxSeats > 0 && c.Seats > l.MaxSeats {
		return SeatLimitExceeded
	}
	if paramsHash != l.ParamsHash {
		return ParamsMismatch
	}
	return Valid
}

// ValidateCommercialGame checks the license for commercial game
// distribution on the given platform and title.
func (l *License) ValidateCommercialGame(now uint32, platform Platform, titleID uint32, params param.ParamSet) Result {
	return l.Validate(Check{
		Now:      now,
		Platform: platform,
		Right:    RightCommercial | RightGameBundle,
		TitleID:  titleID,
		Params:   params,
	})
}

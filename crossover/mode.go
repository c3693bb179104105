package crossover

import (
	"fmt"
	"strings"
)

// Mode selects one recombination operator. The set is closed: values outside
// the constants below are rejected with ErrUnknownMode.
type Mode int

const (
	// ModeIdentity returns clones of both parents unchanged.
	ModeIdentity Mode = iota
	// ModePMX is Partially-Mapped Crossover (Goldberg & Lingle, 1985).
	ModePMX
	// ModeOX1 is Order Crossover (Davis, 1985).
	ModeOX1
	// ModeOX2 is Order Based Crossover (Syswerda, 1991).
	ModeOX2
	// ModeMOX is Modified Order Crossover.
	ModeMOX
	// ModePOS is Position Based Crossover (Syswerda, 1991).
	ModePOS
	// ModeCX is Cycle Crossover (Oliver, Smith & Holland, 1987).
	ModeCX
	// ModeAP is Alternating-Position Crossover (Larrañaga et al., 1997).
	ModeAP
	// ModeMPX is Maximal Preservative Crossover (Mühlenbein et al., 1988).
	ModeMPX
	// ModeER is Edge Recombination (Whitley, Starkweather & Fuquay, 1989).
	ModeER
	// ModeGSTX is Greedy Subtour Crossover (Sengoku & Yoshihara, 1998).
	ModeGSTX
	// ModeDPX is Distance Preserving Crossover (Freisleben & Merz, 1996).
	ModeDPX
	// ModeIO is the Inver-over operator (Tao & Michalewicz, 1998).
	ModeIO
	// ModeMIO is the Modified Inver-over operator (Wang et al., 2012).
	ModeMIO
	// ModeHX is Heuristic Crossover (Grefenstette et al., 1985).
	ModeHX
	// ModeVR is Voting Recombination (Mühlenbein, 1989).
	ModeVR

	modeCount
)

var modeNames = [modeCount]string{
	ModeIdentity: "identity",
	ModePMX:      "pmx",
	ModeOX1:      "ox1",
	ModeOX2:      "ox2",
	ModeMOX:      "mox",
	ModePOS:      "pos",
	ModeCX:       "cx",
	ModeAP:       "ap",
	ModeMPX:      "mpx",
	ModeER:       "er",
	ModeGSTX:     "gstx",
	ModeDPX:      "dpx",
	ModeIO:       "io",
	ModeMIO:      "mio",
	ModeHX:       "hx",
	ModeVR:       "vr",
}

// String returns the lower-case operator name.
func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("mode(%d)", int(m))
	}

	return modeNames[m]
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool { return m >= ModeIdentity && m < modeCount }

// ParseMode maps a case-insensitive operator name to its Mode.
func ParseMode(s string) (Mode, error) {
	var (
		key = strings.ToLower(strings.TrimSpace(s))
		m   Mode
	)
	for m = ModeIdentity; m < modeCount; m++ {
		if modeNames[m] == key {
			return m, nil
		}
	}

	return ModeIdentity, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Modes lists every declared mode in declaration order.
func Modes() []Mode {
	out := make([]Mode, 0, modeCount)
	var m Mode
	for m = ModeIdentity; m < modeCount; m++ {
		out = append(out, m)
	}

	return out
}

// Children returns how many tours the mode produces per call.
func (m Mode) Children() int {
	switch m {
	case ModeER, ModeGSTX, ModeDPX, ModeIO, ModeMIO, ModeHX, ModeVR:
		return 1
	default:
		return 2
	}
}

// NeedsOracle reports whether the mode requires a distance oracle.
func (m Mode) NeedsOracle() bool {
	switch m {
	case ModeDPX, ModeIO, ModeMIO, ModeHX:
		return true
	default:
		return false
	}
}

// NeedsPopulation reports whether the mode consults a reference population.
func (m Mode) NeedsPopulation() bool {
	switch m {
	case ModeIO, ModeMIO, ModeVR:
		return true
	default:
		return false
	}
}

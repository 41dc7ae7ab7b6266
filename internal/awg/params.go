// Package awg builds AmneziaVPN client payloads for AmneziaWG tunnels.
package awg

import "github.com/net2share/awgenc/internal/wgconf"

// Params holds the AmneziaWG obfuscation parameters as decimal strings.
type Params struct {
	Jc   string
	Jmin string
	Jmax string
	S1   string
	S2   string
	H1   string
	H2   string
	H3   string
	H4   string
}

// ParamKeys lists the parameter names in the order they are merged into an
// interface section.
var ParamKeys = [...]string{"Jc", "Jmin", "Jmax", "S1", "S2", "H1", "H2", "H3", "H4"}

// DefaultParams returns the fixed parameter set used for every client.
func DefaultParams() Params {
	return Params{
		Jc:   "7",
		Jmin: "50",
		Jmax: "1000",
		S1:   "116",
		S2:   "61",
		H1:   "1139437039",
		H2:   "1088834137",
		H3:   "977318325",
		H4:   "1583407056",
	}
}

// Get returns the value for a parameter name.
func (p Params) Get(key string) (string, bool) {
	switch key {
	case "Jc":
		return p.Jc, true
	case "Jmin":
		return p.Jmin, true
	case "Jmax":
		return p.Jmax, true
	case "S1":
		return p.S1, true
	case "S2":
		return p.S2, true
	case "H1":
		return p.H1, true
	case "H2":
		return p.H2, true
	case "H3":
		return p.H3, true
	case "H4":
		return p.H4, true
	}
	return "", false
}

// Merge returns a copy of iface with the parameters set. Keys already present
// keep their position; new keys are appended in ParamKeys order.
func (p Params) Merge(iface *wgconf.Section) *wgconf.Section {
	out := iface.Clone()
	for _, k := range ParamKeys {
		v, _ := p.Get(k)
		out.Set(k, v)
	}
	return out
}

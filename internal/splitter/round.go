package splitter

import "fmt"

// Round is a degradation level. Each round relaxes one protection of the
// round before it.
type Round int

const (
	RoundStrict Round = iota + 1
	RoundNoClause
	RoundNoEnumeration
	RoundShortFragments
	RoundLastResort
)

// rules lists which detectors are active in a round and how short a
// fragment may get. Numeric zones are always active.
type rules struct {
	clause       bool
	enumeration  bool
	fixedPhrase  bool
	abbreviation bool
	minFragment  int

	// lastResort rounds only run on sentences above LengthThreshold.
	lastResort bool
}

var ladder = [...]rules{
	RoundStrict:         {clause: true, enumeration: true, fixedPhrase: true, abbreviation: true, minFragment: 15},
	RoundNoClause:       {enumeration: true, fixedPhrase: true, abbreviation: true, minFragment: 15},
	RoundNoEnumeration:  {fixedPhrase: true, abbreviation: true, minFragment: 15},
	RoundShortFragments: {fixedPhrase: true, abbreviation: true, minFragment: 8},
	RoundLastResort:     {minFragment: 1, lastResort: true},
}

func (r Round) rules() rules {
	if r < RoundStrict || r > RoundLastResort {
		return ladder[RoundLastResort]
	}
	return ladder[r]
}

func (r Round) String() string {
	switch r {
	case RoundStrict:
		return "strict"
	case RoundNoClause:
		return "no-clause"
	case RoundNoEnumeration:
		return "no-enumeration"
	case RoundShortFragments:
		return "short-fragments"
	case RoundLastResort:
		return "last-resort"
	default:
		return fmt.Sprintf("round(%d)", int(r))
	}
}

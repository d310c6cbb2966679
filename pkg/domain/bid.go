package domain

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Strain is the denomination of a bid, ordered by bidding rank.
type Strain int

const (
	Clubs Strain = iota
	Diamonds
	Hearts
	Spades
	NoTrump
)

// NumSuits is the number of suits in a hand. NoTrump is a strain, not a suit.
const NumSuits = 4

// SuitOrder lists the suit strains in hand (display) order, spades first.
var SuitOrder = [NumSuits]Strain{Spades, Hearts, Diamonds, Clubs}

var strainLetters = [...]string{"C", "D", "H", "S", "N"}

// String returns the single-letter notation for the strain.
func (s Strain) String() string {
	if s < Clubs || s > NoTrump {
		return fmt.Sprintf("Strain(%d)", int(s))
	}
	return strainLetters[s]
}

// SuitIndex maps a suit strain to its index in hand order (S=0, H=1, D=2,
// C=3). It returns -1 for NoTrump.
func (s Strain) SuitIndex() int {
	if s == NoTrump {
		return -1
	}
	return int(Spades - s)
}

// ParseStrain parses a single-letter strain notation.
func ParseStrain(s string) (Strain, error) {
	for i, letter := range strainLetters {
		if s == letter {
			return Strain(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidBid, s)
}

// MaxLevel is the highest legal bidding level.
const MaxLevel = 7

// Bid is a single call in the auction: either Pass or a level+strain pair.
// Bids are totally ordered by level, then by strain rank.
type Bid struct {
	Level  int
	Strain Strain
}

// Pass is the zero Bid.
var Pass = Bid{}

// IsPass reports whether the bid is a pass.
func (b Bid) IsPass() bool {
	return b.Level == 0
}

// Index returns the bid's position in the total bid order. Pass has no
// position; callers must not index a pass.
func (b Bid) Index() int {
	return (b.Level-1)*5 + int(b.Strain)
}

// Less reports whether b sorts strictly below other in the bid order.
func (b Bid) Less(other Bid) bool {
	return b.Index() < other.Index()
}

// Next returns the unique successor of b in the bid order. It fails with
// ErrNoSuccessor above 7NT; there is nothing to bid past the top of the
// bid space.
func (b Bid) Next() (Bid, error) {
	if b.IsPass() {
		return Bid{}, fmt.Errorf("%w: pass has no successor", ErrInvalidBid)
	}
	if b.Level == MaxLevel && b.Strain == NoTrump {
		return Bid{}, ErrNoSuccessor
	}
	if b.Strain == NoTrump {
		return Bid{Level: b.Level + 1, Strain: Clubs}, nil
	}
	return Bid{Level: b.Level, Strain: b.Strain + 1}, nil
}

// Advance returns the bid a fixed number of steps above b in the bid order.
func (b Bid) Advance(steps int) (Bid, error) {
	out := b
	for i := 0; i < steps; i++ {
		var err error
		out, err = out.Next()
		if err != nil {
			return Bid{}, err
		}
	}
	return out, nil
}

// String returns the bid in compact notation: "P", "2N", "4D".
func (b Bid) String() string {
	if b.IsPass() {
		return "P"
	}
	return fmt.Sprintf("%d%s", b.Level, b.Strain)
}

// ParseBid parses compact bid notation.
func ParseBid(s string) (Bid, error) {
	if s == "P" {
		return Pass, nil
	}
	if len(s) != 2 {
		return Bid{}, fmt.Errorf("%w: %q", ErrInvalidBid, s)
	}
	level := int(s[0] - '0')
	if level < 1 || level > MaxLevel {
		return Bid{}, fmt.Errorf("%w: %q", ErrInvalidBid, s)
	}
	strain, err := ParseStrain(s[1:])
	if err != nil {
		return Bid{}, fmt.Errorf("%w: %q", ErrInvalidBid, s)
	}
	return Bid{Level: level, Strain: strain}, nil
}

// UnmarshalYAML decodes a bid from its compact notation.
func (b *Bid) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseBid(raw)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// MarshalYAML encodes a bid as its compact notation.
func (b Bid) MarshalYAML() (any, error) {
	return b.String(), nil
}

// MarshalJSON encodes a bid as its compact notation.
func (b Bid) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.String() + `"`), nil
}

// Notation renders a bid sequence in compact notation, one string per call.
func Notation(bids []Bid) []string {
	out := make([]string, len(bids))
	for i, b := range bids {
		out[i] = b.String()
	}
	return out
}

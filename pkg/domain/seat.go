package domain

import "fmt"

// Seat is a position at the table. Rotation order is N, E, S, W.
type Seat int

const (
	North Seat = iota
	East
	South
	West
)

// NumSeats is the number of seats at the table.
const NumSeats = 4

var seatLetters = [NumSeats]string{"N", "E", "S", "W"}

// String returns the single-letter notation for the seat.
func (s Seat) String() string {
	if s < North || s > West {
		return fmt.Sprintf("Seat(%d)", int(s))
	}
	return seatLetters[s]
}

// Next returns the seat to this seat's left, the next to call.
func (s Seat) Next() Seat {
	return (s + 1) % NumSeats
}

// Partner returns the seat across the table.
func (s Seat) Partner() Seat {
	return (s + 2) % NumSeats
}

// ParseSeat parses single-letter seat notation.
func ParseSeat(s string) (Seat, error) {
	for i, letter := range seatLetters {
		if s == letter {
			return Seat(i), nil
		}
	}
	return 0, fmt.Errorf("invalid seat %q", s)
}

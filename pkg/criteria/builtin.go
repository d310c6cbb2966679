package criteria

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/seatwise/auctioneer/pkg/domain"
	"github.com/seatwise/auctioneer/pkg/eval"
)

// Builtin returns a registry with the standard criteria registered:
// opening, shape, balanced, hcp and or.
func Builtin() *Registry {
	r := NewRegistry()
	for _, c := range []Criterion{
		Opening{},
		Shape{},
		Balanced{},
		HCP{},
		Or{},
	} {
		if err := r.Register(c); err != nil {
			// Only reachable if the list above repeats a name.
			panic(err)
		}
	}
	return r
}

// Opening holds while the auction has not yet been opened.
type Opening struct{}

func (Opening) Name() string { return "opening" }

func (Opening) Applies(ctx Context, _ domain.CriterionRef) (bool, error) {
	return !ctx.Auction.HasOpened(), nil
}

// Shape delegates to the shape-pattern matcher. Parameters:
//
//	pattern: "5,3,3,2"
type Shape struct{}

func (Shape) Name() string { return "shape" }

func (Shape) Applies(ctx Context, ref domain.CriterionRef) (bool, error) {
	var params struct {
		Pattern string `mapstructure:"pattern"`
	}
	if err := mapstructure.Decode(ref.Params, &params); err != nil {
		return false, fmt.Errorf("shape: %w", err)
	}
	return eval.Pattern(params.Pattern).Match(ctx.Hand), nil
}

// Balanced holds for the 4333, 4432 and 5332 hand patterns in any suit
// assignment.
type Balanced struct{}

func (Balanced) Name() string { return "balanced" }

var balancedShapes = [][domain.NumSuits]int{
	{4, 3, 3, 3},
	{4, 4, 3, 2},
	{5, 3, 3, 2},
}

func (Balanced) Applies(ctx Context, _ domain.CriterionRef) (bool, error) {
	lengths := ctx.Hand.SortedLengths()
	for _, shape := range balancedShapes {
		if lengths == shape {
			return true, nil
		}
	}
	return false, nil
}

// HCP holds while the hand's high-card-point count lies in [min, max].
// Parameters (both optional):
//
//	min: 19
//	max: 21
type HCP struct{}

func (HCP) Name() string { return "hcp" }

func (HCP) Applies(ctx Context, ref domain.CriterionRef) (bool, error) {
	params := struct {
		Min int `mapstructure:"min"`
		Max int `mapstructure:"max"`
	}{Min: 0, Max: 40}
	if err := mapstructure.Decode(ref.Params, &params); err != nil {
		return false, fmt.Errorf("hcp: %w", err)
	}
	hcp := eval.HCP(ctx.Hand)
	return hcp >= params.Min && hcp <= params.Max, nil
}

// Or holds if any child criterion holds.
type Or struct{}

func (Or) Name() string { return "or" }

func (Or) Applies(ctx Context, ref domain.CriterionRef) (bool, error) {
	return ctx.Registry.Check(ref.Children, ctx.Hand, ctx.Auction, Any)
}

// Package validator statically checks a loaded bidding system against the
// configured registries, so configuration errors surface at load time
// rather than mid-auction.
package validator

import (
	"fmt"

	"github.com/seatwise/auctioneer/pkg/convention"
	"github.com/seatwise/auctioneer/pkg/criteria"
	"github.com/seatwise/auctioneer/pkg/domain"
)

// Validate walks the system tree and reports the first configuration
// error: a node without criteria, an unknown criterion name (including
// combinator children), or an unknown hand-off convention.
func Validate(system *domain.System, crit *criteria.Registry, conv *convention.Registry) error {
	return validateNodes(system.Openings, crit, conv, "")
}

func validateNodes(nodes []domain.BidNode, crit *criteria.Registry, conv *convention.Registry, path string) error {
	for i := range nodes {
		node := &nodes[i]
		where := path + "/" + node.Call.String()
		if len(node.Criteria) == 0 {
			return fmt.Errorf("%s: %w", where, domain.ErrMissingCriteria)
		}
		if err := validateRefs(node.Criteria, crit, where); err != nil {
			return err
		}
		if node.Handoff != "" && !conv.Has(node.Handoff) {
			return fmt.Errorf("%s: %w: %q", where, domain.ErrUnknownConvention, node.Handoff)
		}
		if err := validateNodes(node.Responses, crit, conv, where); err != nil {
			return err
		}
	}
	return nil
}

func validateRefs(refs []domain.CriterionRef, crit *criteria.Registry, where string) error {
	for _, ref := range refs {
		if !crit.Has(ref.Name) {
			return fmt.Errorf("%s: %w: %q", where, domain.ErrUnknownCriterion, ref.Name)
		}
		if err := validateRefs(ref.Children, crit, where); err != nil {
			return err
		}
	}
	return nil
}

package domain

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// System is a bidding system: a named decision tree of criteria-guarded
// bids. It is loaded once and treated as read-only input to the director.
type System struct {
	Name     string    `yaml:"name" json:"name"`
	Openings []BidNode `yaml:"openings" json:"openings"`
}

// BidNode is one candidate call in the decision tree: the call itself, the
// criteria that must all hold for the node to be selectable, an optional
// subtree of responses reachable once the call is made, and an optional
// hand-off convention invoked immediately after the call is committed.
type BidNode struct {
	Call      Bid            `yaml:"call" json:"call"`
	Criteria  []CriterionRef `yaml:"criteria" json:"criteria"`
	Handoff   string         `yaml:"handoff,omitempty" json:"handoff,omitempty"`
	Responses []BidNode      `yaml:"responses,omitempty" json:"responses,omitempty"`
}

// CriterionRef names a criterion together with its rule parameters. A
// combinator criterion ("or") carries child refs instead of parameters.
type CriterionRef struct {
	Name     string
	Params   map[string]any
	Children []CriterionRef
}

// UnmarshalYAML accepts the three declarative forms a criterion reference
// takes in a system file:
//
//	- opening                    # bare name
//	- hcp: {min: 19, max: 21}    # name with parameters
//	- or: [ {hcp: {min: 22}} ]   # combinator with children
func (c *CriterionRef) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var name string
		if err := value.Decode(&name); err != nil {
			return err
		}
		*c = CriterionRef{Name: name}
		return nil
	}
	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return fmt.Errorf("criterion must be a name or a single-key mapping (line %d)", value.Line)
	}
	key, val := value.Content[0], value.Content[1]
	var name string
	if err := key.Decode(&name); err != nil {
		return err
	}
	switch val.Kind {
	case yaml.SequenceNode:
		var children []CriterionRef
		if err := val.Decode(&children); err != nil {
			return err
		}
		*c = CriterionRef{Name: name, Children: children}
	default:
		var params map[string]any
		if err := val.Decode(&params); err != nil {
			return err
		}
		*c = CriterionRef{Name: name, Params: params}
	}
	return nil
}

// MarshalYAML renders the reference back into its declarative form.
func (c CriterionRef) MarshalYAML() (any, error) {
	if len(c.Children) > 0 {
		return map[string]any{c.Name: c.Children}, nil
	}
	if len(c.Params) > 0 {
		return map[string]any{c.Name: c.Params}, nil
	}
	return c.Name, nil
}

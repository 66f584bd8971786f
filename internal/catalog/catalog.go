// Package catalog holds the registry of regulatory document types tracked
// for drivers and vehicles. The catalogs are configuration data: built once
// at startup, immutable afterwards, and safe for concurrent reads.
package catalog

import "fmt"

// Condition identifies the capability flag that makes a conditionally
// required document mandatory for a given driver or vehicle.
type Condition string

const (
	ConditionInternational Condition = "international"
	ConditionADR           Condition = "adr"
	ConditionFrigo         Condition = "frigo"
)

// Bucket selects which requirement gate GroupByCategory filters on.
type Bucket string

const (
	BucketRequired    Bucket = "required"
	BucketConditional Bucket = "conditional"
	BucketRecommended Bucket = "recommended"
)

// Definition describes one kind of regulatory document.
// Exactly one of Required / ConditionalRequired / Recommended is the gate an
// entry participates in for missing-document resolution; an entry with none
// of them set is informational only.
type Definition struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Icon        string `json:"icon,omitempty"`

	Required            bool      `json:"required"`
	ConditionalRequired bool      `json:"conditionalRequired,omitempty"`
	RequiredCondition   Condition `json:"requiredCondition,omitempty"`
	Recommended         bool      `json:"recommended,omitempty"`

	Expires               bool `json:"expires"`
	DefaultValidityMonths int  `json:"defaultValidityMonths,omitempty"`
	AlertDaysBefore       int  `json:"alertDaysBefore,omitempty"` // 0 = no per-type threshold

	PeriodicReview       bool `json:"periodicReview,omitempty"`
	ReviewIntervalMonths int  `json:"reviewIntervalMonths,omitempty"`

	OneTime bool `json:"oneTime,omitempty"` // issued once, never re-required
}

// Option is the flat projection of a catalog entry used to populate document
// type selectors in the UI. Order matches catalog declaration order.
type Option struct {
	Key             string `json:"key"`
	Label           string `json:"label"`
	Category        string `json:"category"`
	Icon            string `json:"icon,omitempty"`
	Expires         bool   `json:"expires"`
	AlertDaysBefore int    `json:"alertDaysBefore,omitempty"`
}

// Catalog is an immutable, ordered registry of document type definitions.
// Declaration order is significant: it is the tie-break order for
// missing-document output and the display order for selectors.
type Catalog struct {
	defs  []Definition
	index map[string]int
}

// New builds a Catalog from an ordered list of definitions.
// Duplicate keys and conditional entries without a condition are rejected.
func New(defs []Definition) (*Catalog, error) {
	c := &Catalog{
		defs:  make([]Definition, len(defs)),
		index: make(map[string]int, len(defs)),
	}
	copy(c.defs, defs)

	for i, def := range c.defs {
		if def.Key == "" {
			return nil, fmt.Errorf("catalog entry %d has an empty key", i)
		}
		if _, dup := c.index[def.Key]; dup {
			return nil, fmt.Errorf("duplicate catalog key %q", def.Key)
		}
		if def.ConditionalRequired && def.RequiredCondition == "" {
			return nil, fmt.Errorf("catalog entry %q is conditionally required but has no condition", def.Key)
		}
		c.index[def.Key] = i
	}
	return c, nil
}

// mustNew is used for the built-in catalogs, which are static configuration:
// an invalid entry is a programming error caught at startup.
func mustNew(defs []Definition) *Catalog {
	c, err := New(defs)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the definition for a type key.
func (c *Catalog) Lookup(key string) (Definition, bool) {
	i, ok := c.index[key]
	if !ok {
		return Definition{}, false
	}
	return c.defs[i], true
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// List returns all definitions in declaration order.
func (c *Catalog) List() []Definition {
	out := make([]Definition, len(c.defs))
	copy(out, c.defs)
	return out
}

// Options returns the flat selector projection in declaration order.
func (c *Catalog) Options() []Option {
	out := make([]Option, 0, len(c.defs))
	for _, def := range c.defs {
		out = append(out, Option{
			Key:             def.Key,
			Label:           def.Name,
			Category:        def.Category,
			Icon:            def.Icon,
			Expires:         def.Expires,
			AlertDaysBefore: def.AlertDaysBefore,
		})
	}
	return out
}

// GroupByCategory buckets the entries matching the given requirement gate by
// their category tag. Within each category, declaration order is preserved.
func (c *Catalog) GroupByCategory(bucket Bucket) map[string][]Definition {
	out := make(map[string][]Definition)
	for _, def := range c.defs {
		var match bool
		switch bucket {
		case BucketRequired:
			match = def.Required
		case BucketConditional:
			match = def.ConditionalRequired
		case BucketRecommended:
			match = def.Recommended
		}
		if match {
			out[def.Category] = append(out[def.Category], def)
		}
	}
	return out
}

// RequiredCount returns the number of unconditionally required entries.
// This is the denominator of the compliance percentage.
func (c *Catalog) RequiredCount() int {
	n := 0
	for _, def := range c.defs {
		if def.Required {
			n++
		}
	}
	return n
}

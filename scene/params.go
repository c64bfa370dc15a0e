package scene

import (
	"fmt"
	"maps"
	"slices"
)

// FloatParams maps a parameter name to its values.
type FloatParams map[string][]float64

// StringParams maps a parameter name to its values.
type StringParams map[string][]string

// ParamSet is the parameter dictionary of an attribute block.  A name lives
// in at most one of the two maps.
type ParamSet struct {
	Floats  FloatParams  `json:"floats,omitempty"`
	Strings StringParams `json:"strings,omitempty"`
}

func NewParamSet() ParamSet {
	return ParamSet{Floats: FloatParams{}, Strings: StringParams{}}
}

// Add attaches key to p.  The first attachment of a key wins: adding an
// existing key leaves p unchanged and returns ErrDuplicateParam.
func (p *FloatParams) Add(key string, v []float64) error {
	if *p == nil {
		*p = FloatParams{}
	}
	if _, ok := (*p)[key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateParam, key)
	}
	(*p)[key] = v
	return nil
}

func (p FloatParams) Keys() []string {
	return slices.Sorted(maps.Keys(p))
}

func (p FloatParams) Clone() FloatParams {
	if p == nil {
		return nil
	}
	res := make(FloatParams, len(p))
	for k, v := range p {
		res[k] = slices.Clone(v)
	}
	return res
}

func (p *StringParams) Add(key string, v []string) error {
	if *p == nil {
		*p = StringParams{}
	}
	if _, ok := (*p)[key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateParam, key)
	}
	(*p)[key] = v
	return nil
}

func (p StringParams) Keys() []string {
	return slices.Sorted(maps.Keys(p))
}

func (p StringParams) Clone() StringParams {
	if p == nil {
		return nil
	}
	res := make(StringParams, len(p))
	for k, v := range p {
		res[k] = slices.Clone(v)
	}
	return res
}

// AddFloat attaches a float parameter.  Keys are unique across both maps.
func (s *ParamSet) AddFloat(key string, v []float64) error {
	if _, ok := s.Strings[key]; ok {
		return fmt.Errorf("%w: %q already holds strings", ErrDuplicateParam, key)
	}
	return s.Floats.Add(key, v)
}

func (s *ParamSet) AddString(key string, v []string) error {
	if _, ok := s.Floats[key]; ok {
		return fmt.Errorf("%w: %q already holds floats", ErrDuplicateParam, key)
	}
	return s.Strings.Add(key, v)
}

// Len returns the number of parameters in s.
func (s *ParamSet) Len() int {
	return len(s.Floats) + len(s.Strings)
}

func (s ParamSet) Clone() ParamSet {
	return ParamSet{Floats: s.Floats.Clone(), Strings: s.Strings.Clone()}
}

func (s *ParamSet) clear() {
	s.Floats = nil
	s.Strings = nil
}

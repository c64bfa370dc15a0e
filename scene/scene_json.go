package scene

import (
	"encoding/json"
	"fmt"
)

type nodeBase struct {
	Type     Type            `json:"type"`
	Payload  json.RawMessage `json:"payload,omitempty"`
	Children []*Node         `json:"children,omitempty"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	base := &nodeBase{
		Type:     n.typ,
		Children: n.Children,
	}
	if n.payload != nil {
		d, err := json.Marshal(n.payload)
		if err != nil {
			return nil, fmt.Errorf("%s payload: %w", n.typ, err)
		}
		base.Payload = d
	}
	return json.Marshal(base)
}

func (n *Node) UnmarshalJSON(d []byte) error {
	tmp := &nodeBase{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	n.typ = tmp.Type
	n.payload = newPayload(tmp.Type)
	if n.payload != nil && len(tmp.Payload) != 0 {
		if err := json.Unmarshal(tmp.Payload, n.payload); err != nil {
			return fmt.Errorf("%s payload: %w", tmp.Type, err)
		}
	}
	for i, c := range tmp.Children {
		if c == nil {
			return fmt.Errorf("%s: null child at %d", tmp.Type, i)
		}
	}
	n.Children = tmp.Children
	for _, c := range n.Children {
		c.Parent = n
	}
	return nil
}

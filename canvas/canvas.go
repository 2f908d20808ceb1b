package canvas

import (
	"bytes"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Canvas holds at most one component per kind, in the order they were first
// added. Adding a component whose kind is already present replaces the
// previous one in place.
type Canvas struct {
	components []Component
	kinds      Kind
}

func NewCanvas() *Canvas {
	return &Canvas{}
}

func (c *Canvas) Add(comp Component) {
	if comp == nil {
		return
	}
	k := comp.Kind()
	if c.kinds.Has(k) {
		for i := range c.components {
			if c.components[i].Kind() == k {
				c.components[i] = comp
				return
			}
		}
	}
	c.components = append(c.components, comp)
	c.kinds |= k
}

// Remove drops the components of the given kinds.
func (c *Canvas) Remove(k Kind) {
	list := c.components[:0]
	for _, comp := range c.components {
		if k&comp.Kind() != 0 {
			continue
		}
		list = append(list, comp)
	}
	for i := len(list); i < len(c.components); i++ {
		c.components[i] = nil
	}
	c.components = list
	c.kinds &^= k
}

func (c *Canvas) Get(k Kind) (Component, bool) {
	if !c.kinds.Has(k) {
		return nil, false
	}
	for _, comp := range c.components {
		if comp.Kind() == k {
			return comp, true
		}
	}
	return nil, false
}

func (c *Canvas) Has(k Kind) bool {
	return c.kinds.Has(k)
}

func (c *Canvas) Kinds() Kind {
	return c.kinds
}

func (c *Canvas) Len() int {
	return len(c.components)
}

func (c *Canvas) Empty() bool {
	return len(c.components) == 0
}

// Components returns the components of the canvas in insertion order. The
// returned slice is a copy.
func (c *Canvas) Components() []Component {
	list := make([]Component, len(c.components))
	copy(list, c.components)
	return list
}

func (c *Canvas) Clone() *Canvas {
	return &Canvas{
		components: c.Components(),
		kinds:      c.kinds,
	}
}

func (c *Canvas) Layout() Layout {
	var layout Layout
	for _, comp := range c.components {
		comp.Apply(&layout)
	}
	return layout
}

// Config merges every component into one nested configuration object, keyed
// the way a plotly-like layout expects.
func (c *Canvas) Config() (map[string]any, error) {
	cfg := make(map[string]any)
	for _, comp := range c.components {
		frag, err := fragment(comp)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", comp.Kind(), err)
		}
		var where []string
		if p, ok := comp.(placed); ok {
			where = p.path()
		}
		merge(lookup(cfg, where), frag)
	}
	return cfg, nil
}

func (c *Canvas) WriteConfig(w io.Writer) error {
	cfg, err := c.Config()
	if err != nil {
		return err
	}
	buf, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	buf = append(buf, '\n')
	_, err = io.Copy(w, bytes.NewReader(buf))
	return err
}

func fragment(comp Component) (map[string]any, error) {
	buf, err := json.Marshal(comp)
	if err != nil {
		return nil, err
	}
	var frag map[string]any
	if err := json.Unmarshal(buf, &frag); err != nil {
		return nil, err
	}
	return frag, nil
}

func lookup(cfg map[string]any, where []string) map[string]any {
	for _, key := range where {
		sub, ok := cfg[key].(map[string]any)
		if !ok {
			sub = make(map[string]any)
			cfg[key] = sub
		}
		cfg = sub
	}
	return cfg
}

func merge(dst, src map[string]any) {
	for k, v := range src {
		sub, ok := v.(map[string]any)
		if !ok {
			dst[k] = v
			continue
		}
		cur, ok := dst[k].(map[string]any)
		if !ok {
			dst[k] = sub
			continue
		}
		merge(cur, sub)
	}
}

// Package style holds resolved presentation variables. A Sink receives the
// writes of one resolution pass; Declaration is the in-memory Sink used by the
// CLI, the editor and tests.
package style

// Sink receives named presentation values.
type Sink interface {
	SetProperty(name, value string)
	RemoveProperty(name string)
}

// Declaration is an ordered set of name/value pairs. The zero value is ready
// to use. Order follows first insertion; re-setting a name keeps its slot.
type Declaration struct {
	order  []string
	values map[string]string
}

// NewDeclaration returns an empty Declaration.
func NewDeclaration() *Declaration {
	return &Declaration{}
}

// SetProperty sets name to value. It is a no-op on a nil Declaration.
func (d *Declaration) SetProperty(name, value string) {
	if d == nil {
		return
	}
	if d.values == nil {
		d.values = make(map[string]string)
	}
	if _, ok := d.values[name]; !ok {
		d.order = append(d.order, name)
	}
	d.values[name] = value
}

// RemoveProperty deletes name. Removing an absent name is a no-op.
func (d *Declaration) RemoveProperty(name string) {
	if d == nil {
		return
	}
	if _, ok := d.values[name]; !ok {
		return
	}
	delete(d.values, name)
	for i, n := range d.order {
		if n == name {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Get returns the value of name, or "" when unset.
func (d *Declaration) Get(name string) string {
	if d == nil {
		return ""
	}
	return d.values[name]
}

// Lookup returns the value of name and whether it is set.
func (d *Declaration) Lookup(name string) (string, bool) {
	if d == nil {
		return "", false
	}
	v, ok := d.values[name]
	return v, ok
}

// Len returns the number of set properties.
func (d *Declaration) Len() int {
	if d == nil {
		return 0
	}
	return len(d.order)
}

// Names returns the set property names in insertion order.
func (d *Declaration) Names() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Map returns a copy of the properties.
func (d *Declaration) Map() map[string]string {
	out := make(map[string]string, len(d.values))
	for k, v := range d.values {
		out[k] = v
	}
	return out
}

// Equal reports whether d and o hold the same name/value pairs, regardless of
// order.
func (d *Declaration) Equal(o *Declaration) bool {
	if d.Len() != o.Len() {
		return false
	}
	for k, v := range d.values {
		if ov, ok := o.values[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Recorder is a Sink that keeps every call, in order. It lets tests assert
// how often each name was written.
type Recorder struct {
	Calls []Call
}

// Call is one recorded sink operation. Remove is true for RemoveProperty.
type Call struct {
	Name   string
	Value  string
	Remove bool
}

// SetProperty records a set.
func (r *Recorder) SetProperty(name, value string) {
	r.Calls = append(r.Calls, Call{Name: name, Value: value})
}

// RemoveProperty records a removal.
func (r *Recorder) RemoveProperty(name string) {
	r.Calls = append(r.Calls, Call{Name: name, Remove: true})
}

// Sets counts SetProperty calls per name.
func (r *Recorder) Sets() map[string]int {
	out := make(map[string]int)
	for _, c := range r.Calls {
		if !c.Remove {
			out[c.Name]++
		}
	}
	return out
}

// Tee fans every write out to several sinks.
type Tee []Sink

// SetProperty sets name on every sink.
func (t Tee) SetProperty(name, value string) {
	for _, s := range t {
		s.SetProperty(name, value)
	}
}

// RemoveProperty removes name from every sink.
func (t Tee) RemoveProperty(name string) {
	for _, s := range t {
		s.RemoveProperty(name)
	}
}

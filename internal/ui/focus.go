package ui

// FocusManager tracks and rotates focus across dock panes by pane name.
type FocusManager struct {
	Current  string   // name of the currently focused pane
	Order    []string // tab order for focus rotation
	OnChange func(from, to string)
}

func (f *FocusManager) indexOf(name string) int {
	for i, n := range f.Order {
		if n == name {
			return i
		}
	}
	return -1
}

// Next advances focus to the next pane in order and returns its name.
func (f *FocusManager) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	from := f.Current
	f.Current = f.Order[(f.indexOf(from)+1)%len(f.Order)]
	if f.OnChange != nil && from != f.Current {
		f.OnChange(from, f.Current)
	}
	return f.Current
}

// Prev advances focus to the previous pane in order.
func (f *FocusManager) Prev() string {
	if len(f.Order) == 0 {
		return ""
	}
	from := f.Current
	idx := f.indexOf(from) - 1
	if idx < 0 {
		idx = len(f.Order) - 1
	}
	f.Current = f.Order[idx]
	if f.OnChange != nil && from != f.Current {
		f.OnChange(from, f.Current)
	}
	return f.Current
}

// SetFocus focuses the named pane. Returns false if the name is not in the
// tab order.
func (f *FocusManager) SetFocus(name string) bool {
	if f.indexOf(name) < 0 {
		return false
	}
	from := f.Current
	f.Current = name
	if f.OnChange != nil && from != name {
		f.OnChange(from, name)
	}
	return true
}

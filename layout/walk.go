package layout

// Walk visits f and its descendants depth first, in document order.
// Returning false from fn skips the children of the visited fragment.
func Walk(f Fragment, fn func(Fragment) bool) {
	if f == nil || !fn(f) {
		return
	}
	switch n := f.(type) {
	case *Stack:
		for _, it := range n.Items {
			Walk(it, fn)
		}
	case *Row:
		for _, c := range n.Cells {
			Walk(c.Content, fn)
		}
	case *Inset:
		Walk(n.Content, fn)
	case *Box:
		Walk(n.Content, fn)
	}
}

// Texts returns the content of every Text under f in document order.
func Texts(f Fragment) []string {
	var out []string
	Walk(f, func(n Fragment) bool {
		if t, ok := n.(*Text); ok {
			out = append(out, t.Content)
		}
		return true
	})
	return out
}

// Images returns every Image under f in document order.
func Images(f Fragment) []*Image {
	var out []*Image
	Walk(f, func(n Fragment) bool {
		if img, ok := n.(*Image); ok {
			out = append(out, img)
		}
		return true
	})
	return out
}

package ast

// Walk traverses the tree rooted at n in depth-first order, calling fn for
// each node. If fn returns false, the children of that node are skipped.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch n := n.(type) {
	case *File:
		for _, d := range n.Declarations {
			Walk(d, fn)
		}
	case *Interface:
		walkAnnotations(n.Annotations, fn)
		for _, m := range n.Members {
			Walk(m, fn)
		}
	case *Mixin:
		walkAnnotations(n.Annotations, fn)
		for _, m := range n.Members {
			Walk(m, fn)
		}
	case *Dictionary:
		walkAnnotations(n.Annotations, fn)
		for _, m := range n.Members {
			Walk(m, fn)
		}
	case *Enum:
		walkAnnotations(n.Annotations, fn)
		for _, v := range n.Values {
			Walk(v, fn)
		}
	case *Callback:
		walkType(n.Return, fn)
		walkParameters(n.Parameters, fn)
	case *Typedef:
		walkAnnotations(n.Annotations, fn)
		walkType(n.Type, fn)
	case *Annotation:
		walkParameters(n.Parameters, fn)
	case *Parameter:
		walkAnnotations(n.Annotations, fn)
		walkType(n.Type, fn)
		if n.Init != nil {
			Walk(n.Init, fn)
		}
	case *Constructor:
		walkAnnotations(n.Annotations, fn)
		walkParameters(n.Parameters, fn)
	case *Member:
		walkAnnotations(n.Annotations, fn)
		walkType(n.Type, fn)
		walkParameters(n.Parameters, fn)
		if n.Init != nil {
			Walk(n.Init, fn)
		}
	case *Iterable:
		for _, t := range n.Types {
			walkType(t, fn)
		}
	case *Type:
		for _, t := range n.Elems {
			walkType(t, fn)
		}
	}
}

// typed nil pointers must not reach Walk as non-nil interfaces

func walkType(t *Type, fn func(Node) bool) {
	if t != nil {
		Walk(t, fn)
	}
}

func walkParameters(params []*Parameter, fn func(Node) bool) {
	for _, p := range params {
		Walk(p, fn)
	}
}

func walkAnnotations(anns []*Annotation, fn func(Node) bool) {
	for _, a := range anns {
		Walk(a, fn)
	}
}

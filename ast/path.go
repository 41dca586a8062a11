// Copyright (C) 2026 vincentzreo. All Rights Reserved.

package ast

import "fmt"

// A PathFunc is a path traversal step computed from the value reached
// so far.
type PathFunc func(Value) (Value, error)

// Path traverses a sequence of keys from v and returns the value it
// reaches, or an error if the path does not apply. Each step must be a
// string (an object key), an int (an array offset, negative to count
// from the end), or a PathFunc.
func Path(v Value, path ...any) (Value, error) {
	cur := v
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			obj, ok := cur.(Object)
			if !ok {
				return nil, fmt.Errorf("cannot traverse %T with %q", cur, t)
			}
			next := obj.Find(t)
			if next == nil {
				return nil, fmt.Errorf("key %q not found", t)
			}
			cur = next
		case int:
			arr, ok := cur.(Array)
			if !ok {
				return nil, fmt.Errorf("cannot traverse %T with offset %d", cur, t)
			}
			idx := t
			if idx < 0 {
				idx += len(arr)
			}
			if idx < 0 || idx >= len(arr) {
				return nil, fmt.Errorf("offset %d out of range (0..%d)", t, len(arr))
			}
			cur = arr[idx]
		case PathFunc:
			next, err := t(cur)
			if err != nil {
				return nil, err
			}
			cur = next
		case func(Value) (Value, error):
			next, err := t(cur)
			if err != nil {
				return nil, err
			}
			cur = next
		default:
			return nil, fmt.Errorf("invalid path element %T", elt)
		}
	}
	return cur, nil
}

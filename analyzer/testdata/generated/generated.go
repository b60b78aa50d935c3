// Code generated by hand. DO NOT EDIT.

package generated

func declaration() int {
	x := 1 // want `Redundant variable\.`
	return x
}

// Code generated by hand. DO NOT EDIT.

package skipgenerated

func declaration() int {
	x := 1
	return x
}

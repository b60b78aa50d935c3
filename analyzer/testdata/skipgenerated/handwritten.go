package skipgenerated

func other() int {
	y := 2 // want `Redundant variable\.`
	return y
}

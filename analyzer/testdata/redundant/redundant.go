package redundant

var global int

func f() {}

func declaration() int {
	x := 1 // want `Redundant variable\.`
	return x
}

func assignment(i int) int {
	var x int
	f()
	x = i + 1 // want `Redundant assignment\.`
	return x
}

func compound(i int) int {
	x := i
	f()
	x += 1 // want `Redundant assignment\.`
	return x
}

func assignGlobal() int {
	global = 1
	return global
}

func closure() func() int {
	var x int
	return func() int {
		x = 1
		return x
	}
}

func parameter(x int) int {
	f()
	x = 2
	return x
}

func nested(b bool) int {
	var x int
	if b {
		x = 1 // want `Redundant assignment\.`
		return x
	}
	return 0
}

func rangeValue(s []int) int {
	for _, v := range s {
		v = 1 // want `Redundant assignment\.`
		return v
	}
	return 0
}

func rangeGlobal(s []int) int {
	for global := range s {
		_ = global
	}
	global = 1
	return global
}

func rangeGlobalClosure(s []int) func() int {
	return func() int {
		for global := range s {
			_ = global
		}
		global = 1
		return global
	}
}

func cases(i int) int {
	var x int
	switch i {
	case 0:
		x = 1
		return x

	case 1:
		y := 2
		return y
	}
	return x
}

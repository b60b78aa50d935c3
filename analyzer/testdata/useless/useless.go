package useless

var global int

func f() {}

func declaration() int {
	x := 1 // want `Redundant variable\.`
	return x
}

func lastDeclarator() int {
	var _, x = 1, 2 // want `Redundant variable\.`
	return x
}

func firstDeclarator() int {
	var x, y = 1, 2
	_ = y
	return x
}

func constant() int {
	const x = 1 // want `Redundant variable\.`
	return x
}

func tuple() (int, error) {
	x, err := pair()
	if err != nil {
		return 0, err
	}

	y, err := pair()
	_ = y
	return x, err
}

func pair() (int, error) { return 0, nil }

func assignment(i int) int {
	var x int
	f()
	x = i + 1 // want `Useless assignment\.`
	return x
}

func compound(i int) int {
	x := i
	f()
	x += 1
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

func namedResult() (x int) {
	f()
	x = 2 // want `Useless assignment\.`
	return x
}

func parameter(x int) int {
	f()
	x = 2 // want `Useless assignment\.`
	return x
}

func nested(b bool) int {
	var x int
	if b {
		x = 1 // want `Useless assignment\.`
		return x
	}
	return 0
}

func cases(i int) int {
	var x int
	switch i {
	case 0:
		x = 1 // want `Useless assignment\.`
		return x

	case 1:
		y := 2 // want `Redundant variable\.`
		return y
	}
	return x
}

func other() int {
	var x int
	var y int
	_ = y
	return x
}

func field() int {
	var s struct{ x int }
	s.x = 1
	return s.x
}

func noValue() {
	x := 1
	_ = x
	return
}

package assignments

func f() {}

func declaration() string {
	s := "value"
	return s
}

func assignment() int {
	var x int
	f()
	x = 1 // want `Useless assignment\.`
	return x
}

package declarations

func f() {}

func declaration() string {
	s := "value" // want `Redundant variable\.`
	return s
}

func assignment() int {
	var x int
	f()
	x = 1
	return x
}

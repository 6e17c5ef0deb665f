package b

type client struct{}

func (client) Get(string) error { return nil }

func use() {
	var c client
	_ = c.Get("x")
}

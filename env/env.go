package env

type Args struct {
	Test *bool
	Port *int
	Seed *int64
}

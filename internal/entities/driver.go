package entities

type Driver struct {
	ID    string
	Name  string
	Phone string
}

package readmodel

type UserRM struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	IsAdmin   bool
	CreatedAt string
}

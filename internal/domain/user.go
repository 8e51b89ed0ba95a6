package domain

import "fmt"

// User is the minimal contact record used by the projection demos.
type User struct {
	ID    int64
	Name  string
	Email string
}

// Account is a user record whose age may be absent.
type Account struct {
	ID    int64
	Name  string
	Email string
	Age   *int
}

// String prints the account the way the console demos show records.
func (a Account) String() string {
	if a.Age == nil {
		return fmt.Sprintf("{id: %d, name: %q, email: %q}", a.ID, a.Name, a.Email)
	}
	return fmt.Sprintf("{id: %d, name: %q, email: %q, age: %d}", a.ID, a.Name, a.Email, *a.Age)
}

// Point is a plain 2D coordinate.
type Point struct {
	X int
	Y int
}

// Person carries only an identifier.
type Person struct {
	ID int64
}

// AdminPerson extends Person with a role.
type AdminPerson struct {
	Person
	Role string
}

// Member is an identified, named record that can greet.
type Member struct {
	ID   int64
	Name string
}

// Greet returns the member's self-introduction.
func (m Member) Greet() string {
	return "Hello, I'm " + m.Name
}

// Developer is the mutable profile used by the object literal demo.
type Developer struct {
	Name        string
	Age         int
	IsDeveloper bool
	Country     string
}

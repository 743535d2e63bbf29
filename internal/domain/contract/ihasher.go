package contract

// IHasher abstracts password hashing so the usecase layer never touches
// bcrypt directly.
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
}

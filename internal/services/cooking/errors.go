package cooking

// CookingError is a custom error type for session registry errors
type CookingError string

// Error implements the error interface
func (e CookingError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionExists  CookingError = "a cooking session already exists for this recipe"
	ErrEmptyRecipeID  CookingError = "recipe ID cannot be empty"
	ErrNilInput       CookingError = "input cannot be nil"
	ErrNilConfig      CookingError = "config cannot be nil"
	ErrNilStore       CookingError = "session state repository cannot be nil"
	ErrNilClock       CookingError = "clock cannot be nil"
	ErrNilIDGenerator CookingError = "ID generator cannot be nil"
)

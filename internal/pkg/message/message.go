package message

const (
	UserNotFound             = "User not found"
	DuplicateEmail           = "Email already exists"
	DuplicatedPhoneNumber    = "Phone number Already Exists"
	InvalidEmailFormat       = "Invalid email format"
	InvalidEmailDomain       = "Email domain must be one of the following: .com, .net, .org, .co, .pk"
	NoAlphanumericCharacters = "Email must contain at least one alphanumeric character before @"
	InvalidPhoneFormat       = "Phone number must be exactly 11 digits"

	UserCreated = "User Created Successfully"
	UserUpdated = "User Updated Successfully"
	UserDeleted = "User deleted successfully"

	InvalidInput = "Invalid input."
	ServerError  = "An unexpected error occurred"
	EnvErrFmt    = "environment variable is not set: %s"
)

package entities

// Identity is what the auth provider tells us about a bearer token.
type Identity struct {
	UserID string
	Email  string
}

// Profile is the internal account record linked to an auth user.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (user_id-index): user_id
type Profile struct {
	ID       string
	UserID   string
	FullName string
	Email    string
	Document string
}

// Account is the authenticated caller of a request.
type Account struct {
	UserID    string
	ProfileID string
	Email     string
	FullName  string
}

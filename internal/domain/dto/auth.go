package dto

// Claims is the identity carried by a verified bearer token.
// Tokens are issued by the storefront backend; this service only reads them.
type Claims struct {
	// CustomerID is the backend customer id ("id" in the token).
	CustomerID string   `json:"id"`
	Email      string   `json:"email,omitempty"`
	Name       string   `json:"name,omitempty"`
	Roles      []string `json:"roles,omitempty"`
}

// HasRole reports whether the claims carry role.
func (c *Claims) HasRole(role string) bool {
	if c == nil {
		return false
	}
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

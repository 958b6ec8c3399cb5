package core

// Credentials is the structured bundle of fields produced by extraction. Each
// scheme populates only its own fields: Basic auth fills Username/Password,
// bearer auth fills AccessToken, and OAuth client auth fills
// ClientID/ClientSecret. The zero value means nothing was extracted, which is
// the normal state for the generic scheme.
type Credentials struct {
	Username     string
	Password     string
	ClientID     string
	ClientSecret string
	AccessToken  string
}

// IsZero reports whether no credential field is populated.
func (c Credentials) IsZero() bool {
	return c == Credentials{}
}

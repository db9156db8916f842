package entity

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Session is the client-held record of the authenticated identity and its
// bearer token. A session is either fully populated or absent — a blob with
// any missing field is discarded on read instead of being half-restored.
type Session struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Token string `json:"token"`
}

func (s *Session) Complete() bool {
	if s == nil {
		return false
	}
	if s.Role != RoleUser && s.Role != RoleAdmin {
		return false
	}
	return s.ID != "" && s.Email != "" && s.Token != ""
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

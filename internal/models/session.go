package models

// UserSession es el usuario con sesión iniciada. Los datos vienen del
// cliente y se guardan tal cual; solo el ID es obligatorio.
type UserSession struct {
	ID        string `json:"id" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// FullName retorna nombre y apellido
func (s UserSession) FullName() string {
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}

package models

import "time"

// Address representa la dirección de entrega de un usuario
type Address struct {
	Street  string `json:"street" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	Pincode string `json:"pincode" binding:"required,numeric,len=6"`
}

// User representa una cuenta registrada en la tienda
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email" binding:"required,email"`
	Name      string    `json:"name" binding:"required"`
	Phone     string    `json:"phone,omitempty" binding:"omitempty,numeric,len=10"`
	Address   *Address  `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserUpdate representa los campos actualizables de un usuario
type UserUpdate struct {
	Email   *string  `json:"email,omitempty" binding:"omitempty,email"`
	Name    *string  `json:"name,omitempty"`
	Phone   *string  `json:"phone,omitempty" binding:"omitempty,numeric,len=10"`
	Address *Address `json:"address,omitempty"`
}

// Empty indica si la actualización no trae ningún campo
func (u UserUpdate) Empty() bool {
	return u.Email == nil && u.Name == nil && u.Phone == nil && u.Address == nil
}

// Apply aplica los campos presentes sobre el usuario
func (u UserUpdate) Apply(user *User) {
	if u.Email != nil {
		user.Email = *u.Email
	}
	if u.Name != nil {
		user.Name = *u.Name
	}
	if u.Phone != nil {
		user.Phone = *u.Phone
	}
	if u.Address != nil {
		addr := *u.Address
		user.Address = &addr
	}
}

package repository

import (
	"context"

	"storefront/internal/models"
	"storefront/internal/storage"
)

type UserRepository struct {
	users collection[models.User]
	ids   *idClock
}

func NewUserRepository(kv storage.KV, prefix string) *UserRepository {
	return &UserRepository{
		users: newCollection[models.User](kv, prefix, UsersCollection),
		ids:   newIDClock(),
	}
}

// Create agrega un usuario asignando ID y fecha de creación.
// No verifica que el email sea único.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	users, err := r.users.load(ctx)
	if err != nil {
		return err
	}

	user.ID, user.CreatedAt = r.ids.next(maxUserID(users))
	users = append(users, *user)
	return r.users.save(ctx, users)
}

// FindByEmail retorna el primer usuario con ese email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, bool, error) {
	users, err := r.users.load(ctx)
	if err != nil {
		return models.User{}, false, err
	}

	for _, u := range users {
		if u.Email == email {
			return u, true, nil
		}
	}
	return models.User{}, false, nil
}

// Update aplica una actualización parcial. Retorna false si el usuario no existe.
func (r *UserRepository) Update(ctx context.Context, id int64, update models.UserUpdate) (models.User, bool, error) {
	users, err := r.users.load(ctx)
	if err != nil {
		return models.User{}, false, err
	}

	for i := range users {
		if users[i].ID != id {
			continue
		}
		update.Apply(&users[i])
		if err := r.users.save(ctx, users); err != nil {
			return models.User{}, false, err
		}
		return users[i], true, nil
	}
	return models.User{}, false, nil
}

func maxUserID(users []models.User) int64 {
	var highest int64
	for _, u := range users {
		if u.ID > highest {
			highest = u.ID
		}
	}
	return highest
}

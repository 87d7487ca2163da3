// user_repository.go - Data access for user records

package repository // Declares the package name

import ( // Import required packages
	"context" // For request-scoped queries
	"errors"  // For sentinel errors

	"pecerapp-backend/models" // User model

	"gorm.io/gorm" // GORM ORM
)

var ( // Sentinel errors returned by the repository
	ErrConflict = errors.New("usuario o correo ya existe") // Unique constraint violation
	ErrNotFound = errors.New("usuario no encontrado")      // No matching row
)

type UserRepository struct { // Repository over the users table
	db *gorm.DB // Injected database handle
}

func NewUserRepository(db *gorm.DB) *UserRepository { // Constructor
	return &UserRepository{db: db}
}

// FindByCredentials returns the user matching the exact username/password
// pair, or ErrNotFound. Used by the legacy (plaintext) auth mode.
func (r *UserRepository) FindByCredentials(ctx context.Context, usuario, contrasena string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("usuario = ? AND contraseña = ?", usuario, contrasena).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername returns the user with the given username, or ErrNotFound.
// Used by the secure auth mode, which verifies the bcrypt hash itself.
func (r *UserRepository) FindByUsername(ctx context.Context, usuario string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("usuario = ?", usuario).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID returns the user with the given id, or ErrNotFound.
func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user with role "user" and returns it with its
// generated ID. Returns ErrConflict when the username or email is taken.
func (r *UserRepository) Create(ctx context.Context, nombre, apellido, correo, usuario, contrasena string) (*models.User, error) {
	user := models.User{
		Nombre:     nombre,
		Apellido:   apellido,
		Correo:     correo,
		Usuario:    usuario,
		Contrasena: contrasena,
		Rol:        "user", // New accounts are always regular users
	}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return &user, nil
}

// List returns every user without the password column. The zero-valued
// Contrasena field is additionally hidden by its json:"-" tag.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Select("id", "nombre", "apellido", "correo", "usuario", "rol").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Delete removes the user with the given id. Deleting a missing id is a
// no-op, not an error, so the operation is idempotent.
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.User{}, id).Error
}

// user.go - Defines the User model for the database

package models // Declares the package name

type User struct { // User struct represents a user in the database
	ID         uint   `gorm:"primaryKey" json:"id"`                    // Unique user ID (primary key)
	Nombre     string `gorm:"column:nombre" json:"nombre"`             // First name
	Apellido   string `gorm:"column:apellido" json:"apellido"`         // Last name
	Correo     string `gorm:"column:correo;unique" json:"correo"`      // Email (must be unique)
	Usuario    string `gorm:"column:usuario;unique" json:"usuario"`    // Username (must be unique)
	Contrasena string `gorm:"column:contraseña" json:"-"`              // Password, never serialized to JSON
	Rol        string `gorm:"column:rol;default:'user'" json:"rol"`    // User role (user/admin)
}

func (User) TableName() string { return "users" } // Keep the original table name

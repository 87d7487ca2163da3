// pecera.go - Defines the Pecera (fish tank) model for the database

package models // Declares the package name

type Pecera struct { // Pecera struct represents a fish tank owned by a user
	ID        uint   `gorm:"primaryKey" json:"id"`                // Unique tank ID
	Nombre    string `gorm:"column:nombre" json:"nombre"`         // Tank name
	UsuarioID uint   `gorm:"column:usuario_id" json:"usuario_id"` // Foreign key to users table
	Usuario   User   `gorm:"foreignKey:UsuarioID" json:"-"`       // Owning user; no cascade on delete
}

func (Pecera) TableName() string { return "peceras" } // Keep the original table name

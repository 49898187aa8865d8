package model

import "time"

// User is the user collection document. Coordinates are stored as strings
// and parsed to decimal degrees when a distance is computed. The lattitude
// field name is part of the stored document layout.
type User struct {
	ID           string     `bson:"_id" json:"id"`
	Name         string     `bson:"name" json:"name"`
	Password     string     `bson:"pwd" json:"-"`
	Email        string     `bson:"email" json:"email"`
	Location     string     `bson:"location" json:"location"`
	Latitude     string     `bson:"lattitude" json:"lattitude"`
	Longitude    string     `bson:"longitude" json:"longitude"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
	LastAccessed *time.Time `bson:"lastAccessed,omitempty" json:"lastAccessed,omitempty"`
	Phone        string     `bson:"phoneno" json:"phoneno"`
	ProfilePic   string     `bson:"profilePic" json:"profilePic"`
}

// UserPatch holds the optional fields of a partial user update. Only non-nil
// fields are written.
type UserPatch struct {
	Name       *string `json:"name,omitempty"`
	Password   *string `json:"pwd,omitempty"`
	Email      *string `json:"email,omitempty"`
	Location   *string `json:"location,omitempty"`
	Latitude   *string `json:"lattitude,omitempty"`
	Longitude  *string `json:"longitude,omitempty"`
	Phone      *string `json:"phoneno,omitempty"`
	ProfilePic *string `json:"profilePic,omitempty"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p *UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Password == nil && p.Email == nil &&
		p.Location == nil && p.Latitude == nil && p.Longitude == nil &&
		p.Phone == nil && p.ProfilePic == nil
}

type CreateUserRequest struct {
	ID         string `json:"id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Password   string `json:"pwd" validate:"required,min=6"`
	Email      string `json:"email" validate:"required,email"`
	Location   string `json:"location" validate:"required"`
	Latitude   string `json:"lattitude" validate:"required"`
	Longitude  string `json:"longitude" validate:"required"`
	Phone      string `json:"phoneno" validate:"required"`
	ProfilePic string `json:"profilePic"`
}

type UpdateUserRequest struct {
	ID string `json:"id" validate:"required"`
	UserPatch
}

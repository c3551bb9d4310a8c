package models

type User struct {
	ID           string   `bson:"_id,omitempty"`
	Email        string   `bson:"email"`
	DisplayName  string   `bson:"displayName"`
	PasswordHash string   `bson:"passwordHash"`
	Role         string   `bson:"role"`
	Bio          string   `bson:"bio,omitempty"`
	Specialties  []string `bson:"specialties"`
	License      string   `bson:"license"`
	TimeModel    `bson:",inline"`
}

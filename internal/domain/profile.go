package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile is the one-per-user aggregate document. Scalar fields are optional and
// stored as empty strings when unset; experience/education are embedded ordered
// lists, newest entry first.
type Profile struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"user_id"       json:"user_id"`
	Company    string             `bson:"company,omitempty"  json:"company,omitempty"`
	Website    string             `bson:"website,omitempty"  json:"website,omitempty"`
	Location   string             `bson:"location,omitempty" json:"location,omitempty"`
	Status     string             `bson:"status,omitempty"   json:"status,omitempty"`
	Bio        string             `bson:"bio,omitempty"      json:"bio,omitempty"`
	Github     string             `bson:"github,omitempty"   json:"github,omitempty"`
	Skills     []string           `bson:"skills"             json:"skills"`
	Social     Social             `bson:"social"             json:"social"`
	Experience []Experience       `bson:"experience"         json:"experience"`
	Education  []Education        `bson:"education"          json:"education"`
	CreatedAt  time.Time          `bson:"created_at"         json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"         json:"updated_at"`
}

type Social struct {
	Youtube   string `bson:"youtube,omitempty"   json:"youtube,omitempty"`
	Twitter   string `bson:"twitter,omitempty"   json:"twitter,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	Linkedin  string `bson:"linkedin,omitempty"  json:"linkedin,omitempty"`
	Facebook  string `bson:"facebook,omitempty"  json:"facebook,omitempty"`
}

type Experience struct {
	ID          primitive.ObjectID `bson:"_id"                   json:"id"`
	Title       string             `bson:"title"                 json:"title"`
	Company     string             `bson:"company"               json:"company"`
	Location    string             `bson:"location,omitempty"    json:"location,omitempty"`
	From        time.Time          `bson:"from"                  json:"from"`
	To          *time.Time         `bson:"to,omitempty"          json:"to,omitempty"`
	Current     bool               `bson:"current"               json:"current"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}

type Education struct {
	ID           primitive.ObjectID `bson:"_id"                   json:"id"`
	School       string             `bson:"school"                json:"school"`
	Degree       string             `bson:"degree"                json:"degree"`
	FieldOfStudy string             `bson:"field_of_study"        json:"field_of_study"`
	From         time.Time          `bson:"from"                  json:"from"`
	To           *time.Time         `bson:"to,omitempty"          json:"to,omitempty"`
	Current      bool               `bson:"current"               json:"current"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
}

// ProfilePatch is a partial update keyed by bson field name. Only keys present in
// the patch are written; absent fields keep their stored values.
type ProfilePatch map[string]any

// Owner holds the display fields joined from the user document on public listings.
type Owner struct {
	ID     primitive.ObjectID `json:"id"`
	Name   string             `json:"name"`
	Avatar string             `json:"avatar"`
}

// ProfileWithOwner is the public listing shape: the profile plus its owner's
// display fields.
type ProfileWithOwner struct {
	Profile
	Owner Owner `json:"owner"`
}

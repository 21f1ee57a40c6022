package models

type User struct {
	BaseEntity `bson:",inline"`       // Flatten BaseEntity fields into the parent document
	Name       string                 `json:"name" validate:"required,min=1,max=100"`
	Email      string                 `json:"email" validate:"required"`
	Photo      string                 `json:"photo"`
	Password   *string                `json:"password,omitempty" bson:"password,omitempty" validate:"omitempty,min=6"`
	Extra      map[string]interface{} `json:"-" bson:",inline"`
}

var userFields = map[string]bool{
	"_id": true, "name": true, "email": true, "photo": true, "password": true,
	"created_at": true, "updated_at": true,
}

// KeepExtra copies every key of body that is not a User field into Extra.
func (u *User) KeepExtra(body map[string]interface{}) {
	for k, v := range body {
		if userFields[k] {
			continue
		}
		if u.Extra == nil {
			u.Extra = map[string]interface{}{}
		}
		u.Extra[k] = v
	}
}

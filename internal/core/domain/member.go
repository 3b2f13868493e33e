package domain

const (
	MemberActive   = "active"
	MemberDisabled = "disabled"
)

// Member is a back-office user. Password is transient input only; it is
// hashed into PasswordHash before the record is persisted and never stored
// or serialized back out.
type Member struct {
	Meta         `bson:",inline"`
	Name         string  `json:"name" bson:"name" validate:"required"`
	Username     string  `json:"username" bson:"username" validate:"required"`
	Email        string  `json:"email" bson:"email" validate:"required,email"`
	Phone        string  `json:"phone,omitempty" bson:"phone,omitempty"`
	Role         string  `json:"role" bson:"role" validate:"required,oneof=admin staff"`
	Status       string  `json:"status" bson:"status" validate:"omitempty,oneof=active disabled"`
	Password     string  `json:"password,omitempty" bson:"-"`
	PasswordHash string  `json:"-" bson:"password_hash"`
	Grants       []Grant `json:"grants" bson:"grants"`
}

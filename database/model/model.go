package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
)

// Role determines the ability set granted when a token is issued.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Ability is a named permission bound to an access token at issuance.
type Ability string

const (
	ViewPosts   Ability = "view-posts"
	CreatePosts Ability = "create-posts"
	UpdatePosts Ability = "update-posts"
	DeletePosts Ability = "delete-posts"
	ViewUsers   Ability = "view-users"
	CreateUsers Ability = "create-users"
	UpdateUsers Ability = "update-users"
	DeleteUsers Ability = "delete-users"
)

// ParseAbility maps a raw string onto the closed ability vocabulary.
func ParseAbility(s string) (Ability, bool) {
	switch Ability(s) {
	case ViewPosts, CreatePosts, UpdatePosts, DeletePosts,
		ViewUsers, CreateUsers, UpdateUsers, DeleteUsers:
		return Ability(s), true
	}
	return "", false
}

// AbilitySet is the set of abilities bound to one access token.
type AbilitySet []Ability

// Contains reports whether the set grants the given ability.
func (s AbilitySet) Contains(a Ability) bool {
	for _, item := range s {
		if item == a {
			return true
		}
	}
	return false
}

// Value serializes the set as a JSON array for storage.
func (s AbilitySet) Value() (driver.Value, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan restores the set from its stored JSON form.
func (s *AbilitySet) Scan(value any) error {
	switch v := value.(type) {
	case string:
		return json.Unmarshal([]byte(v), s)
	case []byte:
		return json.Unmarshal(v, s)
	case nil:
		*s = nil
		return nil
	}
	return fmt.Errorf("cannot scan ability set from %T", value)
}

// AbilitiesForRole derives the default ability set granted at login.
// Admins get the user-management abilities on top of the post set.
func AbilitiesForRole(role Role) AbilitySet {
	abilities := AbilitySet{ViewPosts, CreatePosts, UpdatePosts, DeletePosts}
	if role == RoleAdmin {
		abilities = append(abilities, ViewUsers, CreateUsers, UpdateUsers, DeleteUsers)
	}
	return abilities
}

type User struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	Password  string    `json:"-"`
	Role      Role      `json:"role" gorm:"default:user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type Post struct {
	Id          int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserId      int       `json:"user_id" gorm:"index"`
	User        *User     `json:"user,omitempty" gorm:"foreignKey:UserId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AccessToken is the stored, verifiable form of an issued bearer token.
// Only the sha256 of the secret half is persisted; the plaintext is
// returned once at issuance and never retrievable again.
type AccessToken struct {
	Id        int        `json:"id" gorm:"primaryKey;autoIncrement"`
	UserId    int        `json:"user_id" gorm:"index"`
	Name      string     `json:"name"`
	TokenHash string     `json:"-" gorm:"column:token;uniqueIndex"`
	Abilities AbilitySet `json:"abilities" gorm:"type:text"`
	CreatedAt time.Time  `json:"created_at"`
}

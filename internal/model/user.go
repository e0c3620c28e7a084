package model

import (
	"slices"
	"strings"
	"time"
)

// User is an account record as persisted under the "users" key.
type User struct {
	ID             string   `json:"id"`
	Username       string   `json:"username"`
	Email          string   `json:"email"`
	Password       string   `json:"password"`
	Favorites      []string `json:"favorites"`
	CreatedRecipes []string `json:"createdRecipes"`
}

// PublicUser is the account view handed to clients.
type PublicUser struct {
	ID             string   `json:"id"`
	Username       string   `json:"username"`
	Email          string   `json:"email"`
	Favorites      []string `json:"favorites"`
	CreatedRecipes []string `json:"createdRecipes"`
}

// Public strips the password.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		Favorites:      nonNil(u.Favorites),
		CreatedRecipes: nonNil(u.CreatedRecipes),
	}
}

// HasEmail compares emails case-insensitively.
func (u User) HasEmail(email string) bool {
	return strings.EqualFold(u.Email, email)
}

// IsFavorite reports whether recipeID is in the user's favorites.
func (u User) IsFavorite(recipeID string) bool {
	return slices.Contains(u.Favorites, recipeID)
}

// Session is the persisted pointer to the signed-in account. Only the id is
// authoritative; the account itself is always read from the user list.
type Session struct {
	UserID    string    `json:"id"`
	StartedAt time.Time `json:"startedAt"`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

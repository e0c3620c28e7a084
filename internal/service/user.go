package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/pageza/recipebox/internal/kv"
	"github.com/pageza/recipebox/internal/model"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserService handles accounts, the persisted session and per-account lists.
type UserService struct {
	store  kv.Store
	now    func() time.Time
	newID  func() string
	scheme PasswordScheme
}

// NewUserService creates a new UserService instance
func NewUserService(store kv.Store, opts ...Option) *UserService {
	o := buildOptions(opts)
	return &UserService{
		store:  store,
		now:    o.now,
		newID:  o.newID,
		scheme: o.scheme,
	}
}

// List returns every account in registration order.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if _, err := kv.GetJSON(ctx, s.store, kv.UsersKey, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

// Exists reports whether an account uses email, ignoring case.
func (s *UserService) Exists(ctx context.Context, email string) (bool, error) {
	users, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	return slices.ContainsFunc(users, func(u model.User) bool { return u.HasEmail(email) }), nil
}

// Register creates an account and signs it in.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	users, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	email = strings.TrimSpace(email)
	if slices.ContainsFunc(users, func(u model.User) bool { return u.HasEmail(email) }) {
		return nil, ErrEmailTaken
	}

	hashed, err := s.scheme.hash(password)
	if err != nil {
		return nil, err
	}
	user := model.User{
		ID:             s.newID(),
		Username:       strings.TrimSpace(username),
		Email:          email,
		Password:       hashed,
		Favorites:      []string{},
		CreatedRecipes: []string{},
	}
	if err := s.saveUsers(ctx, append(users, user)); err != nil {
		return nil, err
	}
	if err := s.startSession(ctx, user.ID); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login signs in the account matching email and password.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	users, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	email = strings.TrimSpace(email)
	for i := range users {
		if users[i].HasEmail(email) && checkPassword(users[i].Password, password) {
			if err := s.startSession(ctx, users[i].ID); err != nil {
				return nil, err
			}
			return &users[i], nil
		}
	}
	return nil, ErrInvalidCredentials
}

// Logout clears the session. Logging out as a guest is a no-op.
func (s *UserService) Logout(ctx context.Context) error {
	return s.store.Delete(ctx, kv.CurrentUserKey)
}

// CurrentSession returns the signed-in account, or nil for a guest. The
// account is always read from the user list, so a session pointing at a
// removed account reads as a guest.
func (s *UserService) CurrentSession(ctx context.Context) (*model.User, error) {
	var session model.Session
	found, err := kv.GetJSON(ctx, s.store, kv.CurrentUserKey, &session)
	if err != nil {
		return nil, err
	}
	if !found || session.UserID == "" {
		return nil, nil
	}
	return s.FindByID(ctx, session.UserID)
}

// FindByID returns the account with the given id, or nil when there is none.
func (s *UserService) FindByID(ctx context.Context, id string) (*model.User, error) {
	users, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

// IsFavorite reports whether recipeID is in the account's favorites. Unknown
// accounts have none.
func (s *UserService) IsFavorite(ctx context.Context, userID, recipeID string) (bool, error) {
	user, err := s.FindByID(ctx, userID)
	if err != nil || user == nil {
		return false, err
	}
	return user.IsFavorite(recipeID), nil
}

// FavoriteIDs returns the account's favorites in the order they were added.
func (s *UserService) FavoriteIDs(ctx context.Context, userID string) ([]string, error) {
	user, err := s.FindByID(ctx, userID)
	if err != nil || user == nil {
		return []string{}, err
	}
	return slices.Clone(user.Public().Favorites), nil
}

// ToggleFavorite adds recipeID to the account's favorites or removes it when
// already present. It reports false when the account does not exist.
func (s *UserService) ToggleFavorite(ctx context.Context, userID, recipeID string) (bool, error) {
	return s.modify(ctx, userID, func(u *model.User) bool {
		u.Favorites = toggle(u.Favorites, recipeID)
		return true
	})
}

// LinkCreatedRecipe records recipeID as authored by the account. Linking the
// same recipe twice keeps a single entry.
func (s *UserService) LinkCreatedRecipe(ctx context.Context, userID, recipeID string) (bool, error) {
	return s.modify(ctx, userID, func(u *model.User) bool {
		if slices.Contains(u.CreatedRecipes, recipeID) {
			return false
		}
		u.CreatedRecipes = append(u.CreatedRecipes, recipeID)
		return true
	})
}

// MergeFavorites folds ids into the account's favorites. With replace set the
// account takes ids as its whole list; otherwise the account's own entries
// stay first and new ids follow.
func (s *UserService) MergeFavorites(ctx context.Context, userID string, ids []string, replace bool) (bool, error) {
	return s.modify(ctx, userID, func(u *model.User) bool {
		if replace {
			u.Favorites = union(nil, ids)
		} else {
			u.Favorites = union(u.Favorites, ids)
		}
		return true
	})
}

// ForgetRecipe removes recipeID from every account's lists.
func (s *UserService) ForgetRecipe(ctx context.Context, recipeID string) error {
	users, err := s.List(ctx)
	if err != nil {
		return err
	}
	changed := false
	for i := range users {
		fav := slices.DeleteFunc(slices.Clone(users[i].Favorites), func(id string) bool { return id == recipeID })
		created := slices.DeleteFunc(slices.Clone(users[i].CreatedRecipes), func(id string) bool { return id == recipeID })
		if len(fav) != len(users[i].Favorites) || len(created) != len(users[i].CreatedRecipes) {
			users[i].Favorites = fav
			users[i].CreatedRecipes = created
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.saveUsers(ctx, users)
}

// modify applies fn to the account and persists the list when fn reports a
// change. The result is false only when the account does not exist.
func (s *UserService) modify(ctx context.Context, userID string, fn func(*model.User) bool) (bool, error) {
	users, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	idx := slices.IndexFunc(users, func(u model.User) bool { return u.ID == userID })
	if idx < 0 {
		return false, nil
	}
	if !fn(&users[idx]) {
		return true, nil
	}
	if err := s.saveUsers(ctx, users); err != nil {
		return false, err
	}
	return true, nil
}

func (s *UserService) saveUsers(ctx context.Context, users []model.User) error {
	return kv.SetJSON(ctx, s.store, kv.UsersKey, users)
}

func (s *UserService) startSession(ctx context.Context, userID string) error {
	return kv.SetJSON(ctx, s.store, kv.CurrentUserKey, model.Session{UserID: userID, StartedAt: s.now()})
}

func toggle(ids []string, id string) []string {
	if slices.Contains(ids, id) {
		return slices.DeleteFunc(slices.Clone(ids), func(v string) bool { return v == id })
	}
	return append(slices.Clone(ids), id)
}

// union appends the entries of extra missing from base, dropping duplicates.
func union(base, extra []string) []string {
	seen := make(map[string]struct{}, len(base)+len(extra))
	result := make([]string, 0, len(base)+len(extra))
	for _, list := range [][]string{base, extra} {
		for _, id := range list {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			result = append(result, id)
		}
	}
	return result
}

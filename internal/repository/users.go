package repository

import (
	"context" // Request-scoped store calls
	"errors"  // Error inspection

	"asset_map/internal/domain" // Importing domain models
	"asset_map/internal/utils"  // Password hashing

	"gorm.io/gorm" // GORM ORM library
)

// Lookup fields accepted by UserDirectory.Find
const (
	UserFieldID       = "id"
	UserFieldUsername = "username"
	UserFieldEmail    = "email"
)

// UserDirectory stores user records
type UserDirectory struct {
	db *gorm.DB
}

// NewUserDirectory returns a UserDirectory backed by db
func NewUserDirectory(db *gorm.DB) *UserDirectory {
	return &UserDirectory{db: db}
}

// Find returns the user whose field equals value, or nil when none matches
func (r *UserDirectory) Find(ctx context.Context, field, value string) (*domain.User, error) {
	switch field {
	case UserFieldID:
		id, ok := domain.ParseID(value)
		if !ok {
			return nil, nil // No record can carry a malformed id
		}
		value = id
	case UserFieldUsername, UserFieldEmail:
	default:
		return nil, domain.ErrUnknownField
	}
	var user domain.User
	err := r.db.WithContext(ctx).Where(map[string]any{field: value}).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &user, nil
}

// FindByID looks a user up by identifier
func (r *UserDirectory) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.Find(ctx, UserFieldID, id)
}

// FindByUsername looks a user up by username
func (r *UserDirectory) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.Find(ctx, UserFieldUsername, username)
}

// FindByEmail looks a user up by email
func (r *UserDirectory) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.Find(ctx, UserFieldEmail, email)
}

// List returns every user ordered by username
func (r *UserDirectory) List(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	if err := r.db.WithContext(ctx).Order("username").Find(&users).Error; err != nil {
		return nil, storeErr(err)
	}
	return users, nil
}

// Create registers a new user with a hashed password. Email and username must both be unused.
func (r *UserDirectory) Create(ctx context.Context, in domain.NewUser) (*domain.User, error) {
	if taken, err := r.taken(ctx, UserFieldEmail, in.Email, ""); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.ErrEmailTaken
	}
	if taken, err := r.taken(ctx, UserFieldUsername, in.Username, ""); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.ErrUsernameTaken
	}
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := domain.User{Username: in.Username, Email: in.Email, Password: hash}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, r.writeErr(ctx, err, in.Email, in.Username, "")
	}
	return &user, nil
}

// Update replaces the username and email of an existing user; id and password are left alone
func (r *UserDirectory) Update(ctx context.Context, in domain.User) (*domain.User, error) {
	id, ok := domain.ParseID(in.ID)
	if !ok {
		return nil, domain.ErrInvalidID
	}
	current, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrUserNotFound
	}
	if taken, err := r.taken(ctx, UserFieldEmail, in.Email, id); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.ErrEmailTaken
	}
	if taken, err := r.taken(ctx, UserFieldUsername, in.Username, id); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.ErrUsernameTaken
	}
	res := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).
		Updates(map[string]any{"username": in.Username, "email": in.Email})
	if res.Error != nil {
		return nil, r.writeErr(ctx, res.Error, in.Email, in.Username, id)
	}
	current.Username = in.Username
	current.Email = in.Email
	return current, nil
}

// UpdatePassword stores a fresh hash of plaintext for the user
func (r *UserDirectory) UpdatePassword(ctx context.Context, id, plaintext string) error {
	id, ok := domain.ParseID(id)
	if !ok {
		return domain.ErrInvalidID
	}
	hash, err := utils.HashPassword(plaintext)
	if err != nil {
		return err
	}
	// A fresh bcrypt hash always differs from the stored one, so no affected rows means no user
	res := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Update("password", hash)
	if res.Error != nil {
		return storeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete permanently removes the user and every asset it owns
func (r *UserDirectory) Delete(ctx context.Context, id string) error {
	id, ok := domain.ParseID(id)
	if !ok {
		return domain.ErrInvalidID
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&domain.User{})
		if res.Error != nil {
			return storeErr(res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrUserNotFound
		}
		if err := tx.Where("user_id = ?", id).Delete(&domain.Asset{}).Error; err != nil {
			return storeErr(err)
		}
		return nil
	})
	if err != nil && !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrStore) {
		return storeErr(err) // Begin or commit failed
	}
	return err
}

// taken reports whether another user than exceptID already uses value for field
func (r *UserDirectory) taken(ctx context.Context, field, value, exceptID string) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&domain.User{}).Where(map[string]any{field: value})
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, storeErr(err)
	}
	return n > 0, nil
}

// writeErr maps a failed insert or update. A unique index violation is attributed to
// whichever of email or username is now held by another user.
func (r *UserDirectory) writeErr(ctx context.Context, err error, email, username, exceptID string) error {
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return storeErr(err)
	}
	if taken, _ := r.taken(ctx, UserFieldEmail, email, exceptID); taken {
		return domain.ErrEmailTaken
	}
	if taken, _ := r.taken(ctx, UserFieldUsername, username, exceptID); taken {
		return domain.ErrUsernameTaken
	}
	return domain.ErrConflict // The other writer is gone again
}

package auth

import (
	"context"
	"errors"

	"github.com/DhavalSuthar-24/nfteams-api/internal/models"
	"gorm.io/gorm"
)

// AuthRepository defines the user operations needed for wallet login.
type AuthRepository interface {
	GetUserByWallet(ctx context.Context, wallet string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	GetOrCreateUser(ctx context.Context, wallet string) (*models.User, error)
}

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

// GetUserByWallet returns gorm.ErrRecordNotFound when no user has the wallet.
func (r *authRepository) GetUserByWallet(ctx context.Context, wallet string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("wallet_address = ?", wallet).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *authRepository) CreateUser(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetOrCreateUser is safe against a concurrent first login of the same
// wallet: a losing insert falls back to reading the winner's row.
func (r *authRepository) GetOrCreateUser(ctx context.Context, wallet string) (*models.User, error) {
	user, err := r.GetUserByWallet(ctx, wallet)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = &models.User{WalletAddress: wallet}
	if createErr := r.CreateUser(ctx, user); createErr != nil {
		if existing, err := r.GetUserByWallet(ctx, wallet); err == nil {
			return existing, nil
		}
		return nil, createErr
	}
	return user, nil
}

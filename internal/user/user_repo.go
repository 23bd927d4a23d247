package user

import (
	"context"

	"github.com/DhavalSuthar-24/nfteams-api/internal/models"
	"github.com/DhavalSuthar-24/nfteams-api/pkg/scoring"
	"gorm.io/gorm"
)

type UserRepository interface {
	GetUserByWallet(ctx context.Context, wallet string) (*models.User, error)
	// SetFavoriteTeam replaces the wallet's favorite team and the pointer on
	// its user row atomically. gorm.ErrRecordNotFound means no such user.
	SetFavoriteTeam(ctx context.Context, wallet string, teamID scoring.TeamID, imageURL string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetUserByWallet(ctx context.Context, wallet string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("wallet_address = ?", wallet).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) SetFavoriteTeam(ctx context.Context, wallet string, teamID scoring.TeamID, imageURL string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("wallet_address = ?", wallet).Delete(&models.FavoriteTeam{}).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.FavoriteTeam{WalletAddress: wallet, TeamID: teamID}).Error; err != nil {
			return err
		}

		res := tx.Model(&models.User{}).
			Where("wallet_address = ?", wallet).
			Updates(map[string]interface{}{"team_id": teamID, "team_image_url": imageURL})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

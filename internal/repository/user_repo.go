package repository

import (
	"context"

	"staffhub/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByVerificationToken(ctx context.Context, token string) (*model.User, error)
	FindAll(ctx context.Context, scope func(*gorm.DB) *gorm.DB, role string) ([]*model.User, error)
	Update(ctx context.Context, user *model.User) error
	DeleteCascade(ctx context.Context, id uint) error
	CountByRole(ctx context.Context, role string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindByVerificationToken(ctx context.Context, token string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Where("verification_token = ? AND verification_token <> ''", token).
		First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context, scope func(*gorm.DB) *gorm.DB, role string) ([]*model.User, error) {
	q := r.db.WithContext(ctx).Scopes(scope).Order("created_at desc")
	if role != "" {
		q = q.Where("role = ?", role)
	}

	var users []*model.User
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// DeleteCascade removes the user and everything hanging off them: users they
// created (recursively), owned work items, owned projects, and any summary
// rows referencing them as employee or PM. Leaves they approved keep existing
// with a nulled approver. The whole subtree goes in one transaction.
func (r *userRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteUserTree(tx, id)
	})
}

func deleteUserTree(tx *gorm.DB, id uint) error {
	var children []model.User
	if err := tx.Where("created_by_id = ?", id).Find(&children).Error; err != nil {
		return err
	}
	for _, child := range children {
		if err := deleteUserTree(tx, child.ID); err != nil {
			return err
		}
	}

	if err := tx.Model(&model.Leave{}).
		Where("approved_by_id = ?", id).
		Update("approved_by_id", nil).Error; err != nil {
		return err
	}

	if err := tx.Where("employee_id = ?", id).Delete(&model.Todo{}).Error; err != nil {
		return err
	}
	if err := tx.Where("employee_id = ?", id).Delete(&model.DailyUpdate{}).Error; err != nil {
		return err
	}
	if err := tx.Where("employee_id = ?", id).Delete(&model.Leave{}).Error; err != nil {
		return err
	}
	if err := tx.Where("employee_id = ? OR pm_id = ?", id, id).Delete(&model.WorkingHoursSummary{}).Error; err != nil {
		return err
	}
	if err := tx.Where("created_by_id = ?", id).Delete(&model.Project{}).Error; err != nil {
		return err
	}

	return tx.Delete(&model.User{}, id).Error
}

func (r *userRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("role = ?", role).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

package repository

import (
	"context"
	"errors"

	"github.com/strobelightprojects/Nursery-inventory-management/internal/domain/model"
	domainrepo "github.com/strobelightprojects/Nursery-inventory-management/internal/repository"

	"gorm.io/gorm"
)

type staffGormRepository struct {
	db *gorm.DB
}

// DI
// main.goでこれをnewしてusecaseに注入します。
func NewStaffGormRepository(db *gorm.DB) domainrepo.StaffRepository {
	return &staffGormRepository{db: db}
}

// Create はスタッフを新規作成
func (r *staffGormRepository) Create(ctx context.Context, s *model.Staff) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainrepo.ErrConflict
		}
		return err
	}
	return nil
}

// emailでスタッフを1件取得。見つからないときは (nil, nil)
func (r *staffGormRepository) FindByEmail(ctx context.Context, email string) (*model.Staff, error) {
	var s model.Staff

	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&s).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &s, nil
}

// IDでスタッフを1件取得
func (r *staffGormRepository) FindByID(ctx context.Context, id int64) (*model.Staff, error) {
	var s model.Staff

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&s).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &s, nil
}

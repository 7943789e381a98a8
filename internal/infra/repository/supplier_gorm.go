package repository

import (
	"context"
	"errors"

	"github.com/strobelightprojects/Nursery-inventory-management/internal/domain/model"
	repo "github.com/strobelightprojects/Nursery-inventory-management/internal/repository"

	"gorm.io/gorm"
)

type SupplierGormRepository struct {
	db *gorm.DB
}

// DI
func NewSupplierGormRepository(db *gorm.DB) *SupplierGormRepository {
	return &SupplierGormRepository{db: db}
}

// name昇順で全件
func (r *SupplierGormRepository) List(ctx context.Context) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	err := r.db.WithContext(ctx).
		Order("name asc").Order("id asc").
		Find(&suppliers).Error
	if err != nil {
		return []model.Supplier{}, err
	}
	return suppliers, nil
}

// IDでsupplierを取得
func (r *SupplierGormRepository) FindByID(ctx context.Context, id int64) (model.Supplier, error) {
	var s model.Supplier
	err := r.db.WithContext(ctx).First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Supplier{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Supplier{}, err
	}
	return s, nil
}

// supplierの作成
func (r *SupplierGormRepository) Create(ctx context.Context, s model.Supplier) (model.Supplier, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return model.Supplier{}, repo.ErrConflict
		}
		return model.Supplier{}, err
	}
	return s, nil
}

// supplierの部分更新
func (r *SupplierGormRepository) Update(ctx context.Context, id int64, patch repo.SupplierPatch) error {
	values := map[string]interface{}{}
	if patch.Name != nil {
		values["name"] = *patch.Name
	}
	if patch.ContactPerson != nil {
		values["contact_person"] = *patch.ContactPerson
	}
	if patch.Email != nil {
		values["email"] = *patch.Email
	}
	if patch.Phone != nil {
		values["phone"] = *patch.Phone
	}
	if patch.Address != nil {
		values["address"] = *patch.Address
	}
	if len(values) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).Model(&model.Supplier{}).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return repo.ErrConflict
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// supplier削除。参照チェックはusecase側で行う
func (r *SupplierGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Supplier{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

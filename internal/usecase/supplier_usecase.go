package usecase

import (
	"context"
	"strings"

	"github.com/strobelightprojects/Nursery-inventory-management/internal/domain/model"
	repo "github.com/strobelightprojects/Nursery-inventory-management/internal/repository"
)

type SupplierUsecase struct {
	supplierRepo repo.SupplierRepository
	tx           repo.TransactionManager
}

// DI
func NewSupplierUsecase(supplierRepo repo.SupplierRepository, tx repo.TransactionManager) *SupplierUsecase {
	return &SupplierUsecase{
		supplierRepo: supplierRepo,
		tx:           tx,
	}
}

func (u *SupplierUsecase) ListSuppliers(ctx context.Context) ([]model.Supplier, error) {
	suppliers, err := u.supplierRepo.List(ctx)
	if err != nil {
		return []model.Supplier{}, NewAppError(KindStorage, "db error")
	}
	return suppliers, nil
}

func (u *SupplierUsecase) GetSupplier(ctx context.Context, supplierID int64) (model.Supplier, error) {
	if supplierID <= 0 {
		return model.Supplier{}, NewAppError(KindValidation, "invalid supplier id")
	}

	s, err := u.supplierRepo.FindByID(ctx, supplierID)
	if err == repo.ErrNotFound {
		return model.Supplier{}, NewAppError(KindNotFound, "not found")
	}
	if err != nil {
		return model.Supplier{}, NewAppError(KindStorage, "db error")
	}
	return s, nil
}

type CreateSupplierInput struct {
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
}

func (u *SupplierUsecase) CreateSupplier(ctx context.Context, in CreateSupplierInput) (model.Supplier, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Supplier{}, NewAppError(KindValidation, "name required")
	}

	s, err := u.supplierRepo.Create(ctx, model.Supplier{
		Name:          strings.TrimSpace(in.Name),
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
	})
	if err == repo.ErrConflict {
		return model.Supplier{}, NewAppError(KindConflict, "name already exists")
	}
	if err != nil {
		return model.Supplier{}, NewAppError(KindStorage, "db error")
	}
	return s, nil
}

// 部分更新の入力。nilのフィールドは触らない
type UpdateSupplierInput struct {
	Name          *string
	ContactPerson *string
	Email         *string
	Phone         *string
	Address       *string
}

func (in UpdateSupplierInput) empty() bool {
	return in.Name == nil && in.ContactPerson == nil && in.Email == nil &&
		in.Phone == nil && in.Address == nil
}

func (u *SupplierUsecase) UpdateSupplier(ctx context.Context, supplierID int64, in UpdateSupplierInput) error {
	if supplierID <= 0 {
		return NewAppError(KindValidation, "invalid supplier id")
	}
	if in.empty() {
		return NewAppError(KindValidation, "no fields to update")
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return NewAppError(KindValidation, "name required")
	}

	err := u.supplierRepo.Update(ctx, supplierID, repo.SupplierPatch{
		Name:          trimmed(in.Name),
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
	})
	if err == repo.ErrNotFound {
		return NewAppError(KindNotFound, "not found")
	}
	if err == repo.ErrConflict {
		return NewAppError(KindConflict, "name already exists")
	}
	if err != nil {
		return NewAppError(KindStorage, "db error")
	}
	return nil
}

// 商品から参照されているsupplierは消さない。判定と削除は同一トランザクション
func (u *SupplierUsecase) DeleteSupplier(ctx context.Context, supplierID int64) error {
	if supplierID <= 0 {
		return NewAppError(KindValidation, "invalid supplier id")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Suppliers().FindByID(ctx, supplierID); err != nil {
			if err == repo.ErrNotFound {
				return NewAppError(KindNotFound, "not found")
			}
			return NewAppError(KindStorage, "db error")
		}

		refs, err := r.Products().CountBySupplier(ctx, supplierID)
		if err != nil {
			return NewAppError(KindStorage, "db error")
		}
		if refs > 0 {
			return NewAppError(KindConflict, "supplier has products")
		}

		err = r.Suppliers().Delete(ctx, supplierID)
		if err == repo.ErrNotFound {
			return NewAppError(KindNotFound, "not found")
		}
		if err != nil {
			return NewAppError(KindStorage, "db error")
		}
		return nil
	})
}

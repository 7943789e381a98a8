package repository

import (
	"context"

	"github.com/strobelightprojects/Nursery-inventory-management/internal/domain/model"
)

// スタッフの保存・取得を約束。見つからないときは (nil, nil)。
type StaffRepository interface {
	Create(ctx context.Context, s *model.Staff) error
	FindByEmail(ctx context.Context, email string) (*model.Staff, error)
	FindByID(ctx context.Context, id int64) (*model.Staff, error)
}

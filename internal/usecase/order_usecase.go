package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/strobelightprojects/Nursery-inventory-management/internal/domain/model"
	repo "github.com/strobelightprojects/Nursery-inventory-management/internal/repository"
)

type OrderUsecase struct {
	tx repo.TransactionManager

	allowNegativeStock bool
}

func NewOrderUsecase(tx repo.TransactionManager, allowNegativeStock bool) *OrderUsecase {
	return &OrderUsecase{
		tx:                 tx,
		allowNegativeStock: allowNegativeStock,
	}
}

type OrderLineInput struct {
	ProductID int64
	Quantity  int64
}

type PlaceOrderInput struct {
	CustomerName string
	Notes        string
	Items        []OrderLineInput
}

type OrderItemOutput struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int64   `json:"quantity"`
}

type OrderOutput struct {
	ID           int64             `json:"id"`
	CustomerName string            `json:"customer_name"`
	Notes        string            `json:"notes,omitempty"`
	Total        float64           `json:"total"`
	CreatedAt    time.Time         `json:"created_at"`
	Items        []OrderItemOutput `json:"items"`
}

type OrderListOutput struct {
	Items []OrderOutput `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

func (u *OrderUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (OrderOutput, error) {
	customerName := strings.TrimSpace(in.CustomerName)
	if customerName == "" {
		return OrderOutput{}, NewAppError(KindValidation, "customer_name required")
	}
	if len(in.Items) == 0 {
		return OrderOutput{}, NewAppError(KindValidation, "items required")
	}
	for _, line := range in.Items {
		if line.ProductID <= 0 {
			return OrderOutput{}, NewAppError(KindValidation, "invalid product_id")
		}
		if line.Quantity <= 0 {
			return OrderOutput{}, NewAppError(KindValidation, "quantity must be > 0")
		}
	}

	var out OrderOutput

	//注文処理はトランザクション。一部だけ書けた状態は残さない
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orderItems := make([]model.OrderItem, 0, len(in.Items))
		var total float64 = 0

		for _, line := range in.Items {
			//商品取得（販売時点の名前と価格をスナップショットする）
			p, err := r.Products().FindByID(ctx, line.ProductID)
			if err == repo.ErrNotFound {
				return NewAppError(KindNotFound, "product not found")
			}
			if err != nil {
				return NewAppError(KindStorage, "db error")
			}

			//在庫減算
			if u.allowNegativeStock {
				// マイナス在庫許容時は無条件に引く
				if err := r.Inventory().DecreaseStock(ctx, line.ProductID, line.Quantity); err != nil {
					return NewAppError(KindStorage, "db error")
				}
			} else {
				ok, err := r.Inventory().DecreaseStockIfEnough(ctx, line.ProductID, line.Quantity)
				if err != nil {
					return NewAppError(KindStorage, "db error")
				}
				if !ok {
					return NewAppError(KindInsufficientStock, "insufficient stock")
				}
			}

			now := time.Now()
			orderItems = append(orderItems, model.OrderItem{
				ProductID:           line.ProductID,
				ProductNameSnapshot: p.Name,
				UnitPriceSnapshot:   p.Price,
				Quantity:            line.Quantity,
				CreatedAt:           now,
			})

			total += p.Price * float64(line.Quantity)
		}

		// 注文作成
		now := time.Now()
		orderID, err := r.Orders().Create(ctx, model.Order{
			CustomerName: customerName,
			Notes:        in.Notes,
			Total:        total,
			CreatedAt:    now,
		})
		if err != nil {
			return NewAppError(KindStorage, "db error")
		}

		//注文明細一括作成
		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewAppError(KindStorage, "db error")
		}

		created := model.Order{
			ID:           orderID,
			CustomerName: customerName,
			Notes:        in.Notes,
			Total:        total,
			CreatedAt:    now,
		}
		out = toOrderOutput(created, orderItems)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// 注文取り消し。明細の数量を在庫へ戻してから消す
func (u *OrderUsecase) DeleteOrder(ctx context.Context, orderID int64) error {
	if orderID <= 0 {
		return NewAppError(KindValidation, "invalid id")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Orders().FindByID(ctx, orderID); err != nil {
			if err == repo.ErrNotFound {
				return NewAppError(KindNotFound, "not found")
			}
			return NewAppError(KindStorage, "db error")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewAppError(KindStorage, "db error")
		}

		//在庫戻し
		for _, it := range items {
			if err := r.Inventory().IncreaseStock(ctx, it.ProductID, it.Quantity); err != nil {
				return NewAppError(KindStorage, "db error")
			}
		}

		if err := r.OrderItems().DeleteByOrderID(ctx, orderID); err != nil {
			return NewAppError(KindStorage, "db error")
		}

		err = r.Orders().Delete(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewAppError(KindNotFound, "not found")
		}
		if err != nil {
			return NewAppError(KindStorage, "db error")
		}
		return nil
	})
}

func (u *OrderUsecase) GetOrder(ctx context.Context, orderID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewAppError(KindValidation, "invalid id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewAppError(KindNotFound, "not found")
		}
		if err != nil {
			return NewAppError(KindStorage, "db error")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewAppError(KindStorage, "db error")
		}

		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

type ListOrdersInput struct {
	Page  int
	Limit int
}

func (u *OrderUsecase) ListOrders(ctx context.Context, in ListOrdersInput) (OrderListOutput, error) {
	if in.Page < 1 {
		return OrderListOutput{}, NewAppError(KindValidation, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return OrderListOutput{}, NewAppError(KindValidation, "invalid limit")
	}

	var out OrderListOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, total, err := r.Orders().List(ctx, in.Page, in.Limit)
		if err != nil {
			return NewAppError(KindStorage, "db error")
		}

		outs := make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewAppError(KindStorage, "db error")
			}
			outs = append(outs, toOrderOutput(o, items))
		}

		out = OrderListOutput{
			Items: outs,
			Total: total,
			Page:  in.Page,
			Limit: in.Limit,
		}
		return nil
	})

	if err != nil {
		return OrderListOutput{}, err
	}
	return out, nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ProductID: it.ProductID,
			Name:      it.ProductNameSnapshot,
			Price:     it.UnitPriceSnapshot,
			Quantity:  it.Quantity,
		})
	}

	return OrderOutput{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		Notes:        o.Notes,
		Total:        o.Total,
		CreatedAt:    o.CreatedAt,
		Items:        outItems,
	}
}

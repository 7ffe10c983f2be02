package warehouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"fleetrental/internal/domain"
)

const dateLayout = "2006-01-02"

// Actor identifies who performed a stock mutation, for the audit trail.
type Actor struct {
	ID       int64
	Username string
}

type Service struct {
	items ItemRepository
}

func NewService(items ItemRepository) *Service {
	return &Service{items: items}
}

func (s *Service) ListItems(ctx context.Context) ([]domain.WarehouseItem, error) {
	return s.items.ListItems(ctx)
}

func (s *Service) AddItem(ctx context.Context, req AddItemRequest, actor Actor) (*domain.WarehouseItem, error) {
	stateDate, err := time.Parse(dateLayout, req.DateState)
	if err != nil {
		return nil, ErrValidation
	}

	item := &domain.WarehouseItem{
		Name:      req.Name,
		Quantity:  req.Quantity,
		DateState: stateDate,
		Comment:   req.Comment,
	}
	if err := s.items.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	if err := s.items.AppendLog(ctx, &domain.WarehouseLog{
		ItemID:        item.ID,
		UserID:        actorRef(actor),
		QuantityTaken: req.Quantity,
		Message:       fmt.Sprintf("%s added %d pcs of item '%s'.", actor.Username, req.Quantity, item.Name),
	}); err != nil {
		return nil, err
	}

	return item, nil
}

// UpdateQuantity changes an item's stock level. Only a real change
// produces a log row; the row records the signed delta.
func (s *Service) UpdateQuantity(ctx context.Context, id int64, req UpdateQuantityRequest, actor Actor) (*domain.WarehouseItem, error) {
	if req.Quantity < 0 {
		return nil, ErrValidation
	}

	item, err := s.items.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	oldQuantity := item.Quantity
	item.Quantity = req.Quantity

	if err := s.items.SaveItem(ctx, item); err != nil {
		return nil, err
	}

	if req.Quantity != oldQuantity {
		diff := req.Quantity - oldQuantity
		absDiff := diff
		if absDiff < 0 {
			absDiff = -absDiff
		}

		var message string
		if diff > 0 {
			message = fmt.Sprintf("%s added %d pcs to item '%s'.", actor.Username, absDiff, item.Name)
		} else {
			message = fmt.Sprintf("%s took %d pcs from item '%s'.", actor.Username, absDiff, item.Name)
		}

		if err := s.items.AppendLog(ctx, &domain.WarehouseLog{
			ItemID:        item.ID,
			UserID:        actorRef(actor),
			QuantityTaken: diff,
			Message:       message,
		}); err != nil {
			return nil, err
		}
	}

	return item, nil
}

func (s *Service) DeleteItem(ctx context.Context, id int64) error {
	if err := s.items.DeleteItem(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) DeleteItems(ctx context.Context, ids []int64) error {
	return s.items.DeleteItems(ctx, ids)
}

func (s *Service) ListLogs(ctx context.Context) ([]domain.WarehouseLog, error) {
	return s.items.ListLogs(ctx)
}

func actorRef(actor Actor) *int64 {
	if actor.ID == 0 {
		return nil
	}
	id := actor.ID
	return &id
}

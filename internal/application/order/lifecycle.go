package order

import (
	"context"
	"time"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// DeletedUserName renders in place of an owner whose account is gone.
// Orders hold a weak user reference; deleting a user never cascades here.
const DeletedUserName = "DELETED USER"

// LifecycleUseCase reads orders and drives the paid/delivered transitions.
type LifecycleUseCase struct {
	orders   repository.OrderRepository
	users    repository.UserRepository
	payments CaptureValidator
}

// NewLifecycleUseCase builds the use case.
func NewLifecycleUseCase(orders repository.OrderRepository, users repository.UserRepository, payments CaptureValidator) *LifecycleUseCase {
	return &LifecycleUseCase{orders: orders, users: users, payments: payments}
}

// Get returns one order. Only the owner or an admin may read it.
func (uc *LifecycleUseCase) Get(requesterID string, isAdmin bool, orderID string) (*dto.OrderResponse, error) {
	o, err := uc.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrOrderNotFound
	}
	if o.UserID != requesterID && !isAdmin {
		return nil, domain.ErrForbidden
	}
	return toOrderResponse(o, ""), nil
}

// History lists the requester's own orders, newest first.
func (uc *LifecycleUseCase) History(userID string) (*dto.OrderListResponse, error) {
	list, err := uc.orders.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := &dto.OrderListResponse{Items: make([]dto.OrderResponse, 0, len(list))}
	for _, o := range list {
		out.Items = append(out.Items, *toOrderResponse(o, ""))
	}
	return out, nil
}

// ListAll is the back-office listing. Owners are resolved by id; a missing
// account renders as DeletedUserName.
func (uc *LifecycleUseCase) ListAll(limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.orders.ListAll(limit, offset)
	if err != nil {
		return nil, err
	}
	names := map[string]string{}
	out := &dto.OrderListResponse{Items: make([]dto.OrderResponse, 0, len(list))}
	for _, o := range list {
		name, ok := names[o.UserID]
		if !ok {
			user, err := uc.users.GetByID(o.UserID)
			if err != nil {
				return nil, err
			}
			name = DeletedUserName
			if user != nil {
				name = user.Name
			}
			names[o.UserID] = name
		}
		out.Items = append(out.Items, *toOrderResponse(o, name))
	}
	return out, nil
}

// MarkPaid transitions an order to paid after the payment collaborator
// confirms the capture. Only the owner or an admin may pay; a second
// attempt fails with ErrAlreadyPaid.
func (uc *LifecycleUseCase) MarkPaid(ctx context.Context, requesterID string, isAdmin bool, orderID string, in dto.PayOrderRequest) (*dto.OrderResponse, error) {
	o, err := uc.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrOrderNotFound
	}
	if o.UserID != requesterID && !isAdmin {
		return nil, domain.ErrForbidden
	}

	result := entity.PaymentResult{ID: in.ID, Status: in.Status, EmailAddress: in.EmailAddress}
	if uc.payments != nil {
		if err := uc.payments.ValidateCapture(ctx, result); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	if err := o.MarkPaid(result, now); err != nil {
		return nil, err
	}
	o.UpdatedAt = now
	if err := uc.orders.Update(o); err != nil {
		return nil, err
	}
	return toOrderResponse(o, ""), nil
}

// MarkDelivered transitions a paid order to delivered. Role gating happens
// at the HTTP layer; the paid precondition is enforced here.
func (uc *LifecycleUseCase) MarkDelivered(orderID string) (*dto.OrderResponse, error) {
	o, err := uc.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrOrderNotFound
	}
	now := time.Now()
	if err := o.MarkDelivered(now); err != nil {
		return nil, err
	}
	o.UpdatedAt = now
	if err := uc.orders.Update(o); err != nil {
		return nil, err
	}
	return toOrderResponse(o, ""), nil
}

func toOrderResponse(o *entity.Order, userName string) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		UserName:        userName,
		Items:           o.Items,
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   o.PaymentMethod,
		ItemsPrice:      o.ItemsPrice,
		TaxPrice:        o.TaxPrice,
		ShippingPrice:   o.ShippingPrice,
		TotalPrice:      o.TotalPrice,
		IsPaid:          o.IsPaid,
		PaidAt:          o.PaidAt,
		IsDelivered:     o.IsDelivered,
		DeliveredAt:     o.DeliveredAt,
		CreatedAt:       o.CreatedAt,
	}
}

package service

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"steakhouse/storefront/internal/model"
	"steakhouse/storefront/internal/securestore"
)

type CartService interface {
	Get(ctx context.Context, sessionID string) ([]model.CartLine, error)
	Add(ctx context.Context, sessionID string, itemID int) ([]model.CartLine, error)
	Remove(ctx context.Context, sessionID string, itemID int) ([]model.CartLine, error)
	UpdateQuantity(ctx context.Context, sessionID string, itemID, quantity int) ([]model.CartLine, error)
	Clear(ctx context.Context, sessionID string) error
}

type cartService struct {
	store  *securestore.Store
	menu   MenuService
	logger *zap.Logger
}

func NewCartService(store *securestore.Store, menu MenuService, logger *zap.Logger) CartService {
	return &cartService{store: store, menu: menu, logger: logger}
}

// CartKey is the secure store key holding a session's cart.
func CartKey(sessionID string) string {
	return "session:" + sessionID + ":" + model.CartStorageKey
}

func (s *cartService) Get(ctx context.Context, sessionID string) ([]model.CartLine, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}
	lines, ok := securestore.Load[[]model.CartLine](ctx, s.store, CartKey(sessionID))
	if !ok || lines == nil {
		return []model.CartLine{}, nil
	}
	return lines, nil
}

func (s *cartService) Add(ctx context.Context, sessionID string, itemID int) ([]model.CartLine, error) {
	item, err := s.menu.Get(ctx, itemID)
	if err != nil {
		return nil, err
	}
	lines, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for i := range lines {
		if lines[i].ID != itemID {
			continue
		}
		next := min(lines[i].Quantity+1, model.MaxItemQuantity)
		if next == lines[i].Quantity {
			return lines, ErrMaxQuantityReached
		}
		lines[i].Quantity = next
		s.persist(ctx, sessionID, lines)
		return lines, nil
	}

	if len(lines) >= model.MaxCartItems {
		return lines, ErrCartFull
	}
	lines = append(lines, model.CartLine{MenuItem: *item, Quantity: 1})
	s.persist(ctx, sessionID, lines)
	return lines, nil
}

func (s *cartService) Remove(ctx context.Context, sessionID string, itemID int) ([]model.CartLine, error) {
	lines, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	lines = removeLine(lines, itemID)
	s.persist(ctx, sessionID, lines)
	return lines, nil
}

// UpdateQuantity sets an existing line's quantity, clamped to MaxItemQuantity.
// A quantity of zero or less removes the line.
func (s *cartService) UpdateQuantity(ctx context.Context, sessionID string, itemID, quantity int) ([]model.CartLine, error) {
	lines, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if quantity <= 0 {
		lines = removeLine(lines, itemID)
	} else {
		for i := range lines {
			if lines[i].ID == itemID {
				lines[i].Quantity = min(quantity, model.MaxItemQuantity)
			}
		}
	}
	s.persist(ctx, sessionID, lines)
	return lines, nil
}

func (s *cartService) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrSessionRequired
	}
	s.store.Remove(ctx, CartKey(sessionID))
	return nil
}

// persist writes a non-empty cart and drops the key for an empty one. The store is a
// best-effort cache, so a failed write only gets logged.
func (s *cartService) persist(ctx context.Context, sessionID string, lines []model.CartLine) {
	key := CartKey(sessionID)
	if len(lines) == 0 {
		s.store.Remove(ctx, key)
		return
	}
	if err := s.store.Write(ctx, key, lines); err != nil {
		s.logger.Warn("cart not persisted", zap.String("session_id", sessionID), zap.Error(err))
	}
}

func removeLine(lines []model.CartLine, itemID int) []model.CartLine {
	out := lines[:0]
	for _, l := range lines {
		if l.ID != itemID {
			out = append(out, l)
		}
	}
	return out
}

// CalculateTotals prices lines in exact decimal arithmetic and rounds to cents.
func CalculateTotals(lines []model.CartLine) model.Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	shipping := decimal.NewFromFloat(model.ShippingFee)
	return model.Totals{
		Subtotal:    subtotal.Round(2).InexactFloat64(),
		ShippingFee: shipping.Round(2).InexactFloat64(),
		Total:       subtotal.Add(shipping).Round(2).InexactFloat64(),
	}
}

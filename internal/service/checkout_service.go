package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"steakhouse/storefront/internal/model"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9\s\-()]{7,}$`)

type CheckoutForm struct {
	CustomerName    string              `json:"customerName"`
	CustomerPhone   string              `json:"customerPhone"`
	DeliveryAddress string              `json:"deliveryAddress"`
	PaymentMethod   model.PaymentMethod `json:"paymentMethod"`
	OrderNotes      string              `json:"orderNotes"`
}

// FormErrors holds one message per invalid checkout field.
type FormErrors struct {
	CustomerName    string `json:"customerName,omitempty"`
	CustomerPhone   string `json:"customerPhone,omitempty"`
	DeliveryAddress string `json:"deliveryAddress,omitempty"`
	PaymentMethod   string `json:"paymentMethod,omitempty"`
}

func (e FormErrors) Empty() bool {
	return e == FormErrors{}
}

type ValidationError struct {
	Fields FormErrors
}

func (e *ValidationError) Error() string {
	return "checkout form is invalid"
}

type CheckoutService interface {
	ValidateForm(form CheckoutForm) FormErrors
	PlaceOrder(ctx context.Context, sessionID string, form CheckoutForm) (*model.Confirmation, error)
}

type checkoutService struct {
	cart      CartService
	submitter OrderSubmitter
	logger    *zap.Logger
	now       func() time.Time
}

func NewCheckoutService(cart CartService, submitter OrderSubmitter, logger *zap.Logger) CheckoutService {
	return &checkoutService{
		cart:      cart,
		submitter: submitter,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *checkoutService) ValidateForm(form CheckoutForm) FormErrors {
	var errs FormErrors

	switch {
	case strings.TrimSpace(form.CustomerName) == "":
		errs.CustomerName = "Full name is required."
	case utf8.RuneCountInString(form.CustomerName) < 2:
		errs.CustomerName = "Name must be at least 2 characters long."
	}

	switch {
	case strings.TrimSpace(form.CustomerPhone) == "":
		errs.CustomerPhone = "Phone number is required."
	case !phonePattern.MatchString(form.CustomerPhone):
		errs.CustomerPhone = "Please enter a valid phone number."
	}

	switch {
	case strings.TrimSpace(form.DeliveryAddress) == "":
		errs.DeliveryAddress = "Delivery address is required."
	case utf8.RuneCountInString(form.DeliveryAddress) < 10:
		errs.DeliveryAddress = "Please provide a more detailed address."
	}

	switch form.PaymentMethod {
	case "", model.PaymentCreditCard, model.PaymentCashOnDelivery:
	default:
		errs.PaymentMethod = "Please choose a supported payment method."
	}

	return errs
}

func (s *checkoutService) PlaceOrder(ctx context.Context, sessionID string, form CheckoutForm) (*model.Confirmation, error) {
	if errs := s.ValidateForm(form); !errs.Empty() {
		return nil, &ValidationError{Fields: errs}
	}

	lines, err := s.cart.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	order, err := s.buildOrder(form, lines)
	if err != nil {
		return nil, err
	}

	resp, err := s.submitter.Submit(ctx, sessionID, order)
	if err != nil {
		return nil, err
	}
	if resp.OrderNumber != "" {
		order.OrderNumber = resp.OrderNumber
	}

	if err := s.cart.Clear(ctx, sessionID); err != nil {
		s.logger.Warn("cart not cleared after order", zap.String("session_id", sessionID), zap.Error(err))
	}
	s.logger.Info("order placed",
		zap.String("order_number", order.OrderNumber),
		zap.Float64("total", order.Total),
		zap.Int("lines", len(lines)),
	)

	return &model.Confirmation{Order: *order, Lines: lines, Message: resp.Message}, nil
}

func (s *checkoutService) buildOrder(form CheckoutForm, lines []model.CartLine) (*model.Order, error) {
	items := make([]model.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, model.OrderItem{Name: l.Name, Quantity: l.Quantity, Price: l.Price})
	}
	encoded, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode order items: %w", err)
	}

	payment := form.PaymentMethod
	if payment == "" {
		payment = model.PaymentCreditCard
	}

	now := s.now().UTC()
	totals := CalculateTotals(lines)
	return &model.Order{
		OrderNumber:     "SS-" + strconv.FormatInt(now.UnixMilli(), 10),
		OrderTime:       now.Format("2006-01-02T15:04:05.000Z07:00"),
		CustomerName:    strings.TrimSpace(form.CustomerName),
		CustomerPhone:   strings.TrimSpace(form.CustomerPhone),
		DeliveryAddress: strings.TrimSpace(form.DeliveryAddress),
		PaymentMethod:   payment,
		OrderNotes:      strings.TrimSpace(form.OrderNotes),
		Items:           string(encoded),
		Subtotal:        totals.Subtotal,
		ShippingFee:     totals.ShippingFee,
		Total:           totals.Total,
	}, nil
}

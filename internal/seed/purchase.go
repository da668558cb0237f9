package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Skotchmaster/storefront/internal/db"
	"github.com/Skotchmaster/storefront/internal/events"
	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/models"
)

const Source = "seed-purchase-for-review"

var (
	ErrValidation      = errors.New("validation")
	ErrProductNotFound = errors.New("product not found")
)

type PurchaseRequest struct {
	Email     string
	ProductID uint
	Quantity  int
}

type Seeder struct {
	DB *gorm.DB
	// Events is optional; when set an order_created event follows each commit.
	Events events.Publisher
	Topic  string
	Now    func() time.Time
}

func (s *Seeder) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (r *PurchaseRequest) validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" {
		return fmt.Errorf("%w: email required", ErrValidation)
	}
	if r.ProductID == 0 {
		return fmt.Errorf("%w: product id required", ErrValidation)
	}
	if r.Quantity == 0 {
		r.Quantity = 1
	}
	if r.Quantity < 0 {
		return fmt.Errorf("%w: quantity must be > 0", ErrValidation)
	}
	return nil
}

// SeedPurchase records a completed order of one product for the given email in
// a single transaction. Every call creates a new order.
func (s *Seeder) SeedPurchase(ctx context.Context, req PurchaseRequest) (*models.Order, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	l := logging.FromContext(ctx).With("email", req.Email, "product_id", req.ProductID, "qty", req.Quantity)

	var order models.Order
	err := db.InTx(ctx, s.DB, func(tx *gorm.DB) error {
		var user models.User
		res := tx.Where("email = ?", req.Email).Limit(1).Find(&user)
		if res.Error != nil {
			return fmt.Errorf("lookup user: %w", res.Error)
		}
		var userID *uint
		if res.RowsAffected > 0 {
			userID = &user.ID
		} else {
			l.Info("no user with this email, order will have no owner")
		}

		var product models.Product
		if err := tx.First(&product, req.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: id=%d", ErrProductNotFound, req.ProductID)
			}
			return fmt.Errorf("lookup product: %w", err)
		}

		subtotal := product.Price.Mul(decimal.NewFromInt(int64(req.Quantity)))
		email := req.Email

		order = models.Order{
			UserID:       userID,
			ContactEmail: &email,
			Subtotal:     subtotal,
			Discount:     decimal.Zero,
			DeliveryFee:  decimal.Zero,
			Total:        subtotal,
			Status:       models.OrderStatusCompleted,
			Metadata: map[string]any{
				"source":      Source,
				"seeded_by":   "script",
				"seed_run_id": uuid.NewString(),
			},
			CreatedAt: s.now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		item := models.OrderItem{
			OrderID:     order.ID,
			ProductID:   product.ID,
			ProductName: product.Name,
			UnitPrice:   product.Price,
			Quantity:    req.Quantity,
			TotalPrice:  subtotal,
		}
		if err := tx.Create(&item).Error; err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
		order.Items = []models.OrderItem{item}
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.Info("order seeded", "order_id", order.ID, "total", order.Total.StringFixed(2))
	s.publish(ctx, &order)
	return &order, nil
}

func (s *Seeder) publish(ctx context.Context, order *models.Order) {
	if s.Events == nil {
		return
	}
	topic := s.Topic
	if topic == "" {
		topic = "order_events"
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	event := map[string]any{
		"type":    "order_created",
		"orderID": order.ID,
		"userID":  order.UserID,
		"total":   order.Total.StringFixed(2),
		"source":  Source,
	}
	if err := s.Events.PublishEvent(ctx, topic, fmt.Sprint(order.ID), event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "order_id", order.ID, "error", err)
	}
}

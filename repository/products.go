package repository

import (
	"context"
	"errors"

	"github.com/Kariqs/storefront/models"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

type Products struct {
	db *gorm.DB
}

func NewProducts(db *gorm.DB) *Products {
	return &Products{db: db}
}

// ListProducts returns products in id order. A limit of zero or less returns
// every product.
func (p *Products) ListProducts(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	query := p.db.WithContext(ctx).Order("id")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (p *Products) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (p *Products) CreateProduct(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Create(product).Error
}

func (p *Products) SetProductImage(ctx context.Context, id uint, url string) error {
	result := p.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Update("image", url)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

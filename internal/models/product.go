package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	// Basic Info
	Name        string `json:"name" bson:"name" validate:"required"`
	Description string `json:"description" bson:"description"`
	Category    string `json:"category" bson:"category" validate:"required"`

	// Pricing
	Price    float64 `json:"price" bson:"price" validate:"required,gt=0"`
	Discount float64 `json:"discount" bson:"discount" validate:"gte=0,lte=100"` // percentage

	// Inventory
	Quantity int     `json:"quantity" bson:"quantity" validate:"gte=0"`
	Weight   float64 `json:"weight" bson:"weight" validate:"gte=0"` // kg

	// Media
	Images   []string `json:"image" bson:"image"` // first image is primary
	VideoURL string   `json:"videoUrl,omitempty" bson:"videoUrl,omitempty"`

	Bestseller bool `json:"bestseller" bson:"bestseller"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Field-level update inputs. Each admin save touches exactly one field,
// so re-submitting the same value is a no-op on the stored document.

type UpdateQuantityInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type UpdateDiscountInput struct {
	Discount *float64 `json:"discount" binding:"required"`
}

type UpdatePriceInput struct {
	Price *float64 `json:"price" binding:"required"`
}

type UpdateBestsellerInput struct {
	Bestseller *bool `json:"bestseller" binding:"required"`
}

type DescribeProductInput struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
	Keywords string `json:"keywords"`
}

package handler

import (
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
)

// Response models returned by the handlers. Entities are mapped explicitly
// so persistence-only fields (password hashes, idempotency keys) never leak
// into API payloads.

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	FullName  string    `json:"full_name,omitempty"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
	}
}

type authResponse struct {
	User         userResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

func toAuthResponse(output *usecase.AuthOutput) authResponse {
	return authResponse{
		User:         toUserResponse(output.User),
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	}
}

type productResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discount_price,omitempty"`
	Category      string           `json:"category,omitempty"`
	Tags          []string         `json:"tags,omitempty"`
	Images        []string         `json:"images"`
	Stock         int              `json:"stock"`
	Colors        []string         `json:"colors,omitempty"`
	Sizes         []string         `json:"sizes,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

func toProductResponse(product *entity.Product) productResponse {
	return productResponse{
		ID:            product.ID.String(),
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		DiscountPrice: product.DiscountPrice,
		Category:      product.Category,
		Tags:          product.Tags,
		Images:        product.Images,
		Stock:         product.Stock,
		Colors:        product.Colors,
		Sizes:         product.Sizes,
		CreatedAt:     product.CreatedAt,
	}
}

func toProductResponses(products []*entity.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, product := range products {
		out = append(out, toProductResponse(product))
	}

	return out
}

type cartItemResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

func toCartItemResponse(item *entity.CartItem) cartItemResponse {
	return cartItemResponse{
		ID:        item.ID.String(),
		ProductID: item.ProductID.String(),
		Quantity:  item.Quantity,
		Size:      item.Size,
		Color:     item.Color,
	}
}

type cartEntryResponse struct {
	cartItemResponse
	Product productResponse `json:"product"`
}

func toCartEntryResponses(entries []*entity.CartEntry) []cartEntryResponse {
	out := make([]cartEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, cartEntryResponse{
			cartItemResponse: toCartItemResponse(&entry.CartItem),
			Product:          toProductResponse(&entry.Product),
		})
	}

	return out
}

type wishlistItemResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
}

func toWishlistItemResponse(item *entity.WishlistItem) wishlistItemResponse {
	return wishlistItemResponse{
		ID:        item.ID.String(),
		ProductID: item.ProductID.String(),
	}
}

type wishlistEntryResponse struct {
	wishlistItemResponse
	Product productResponse `json:"product"`
}

func toWishlistEntryResponses(entries []*entity.WishlistEntry) []wishlistEntryResponse {
	out := make([]wishlistEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, wishlistEntryResponse{
			wishlistItemResponse: toWishlistItemResponse(&entry.WishlistItem),
			Product:              toProductResponse(&entry.Product),
		})
	}

	return out
}

type orderItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Size      string          `json:"size,omitempty"`
	Color     string          `json:"color,omitempty"`
}

type orderResponse struct {
	ID        string                 `json:"id"`
	Status    string                 `json:"status"`
	Total     decimal.Decimal        `json:"total"`
	Address   entity.ShippingAddress `json:"address"`
	Items     []orderItemResponse    `json:"items"`
	CreatedAt time.Time              `json:"created_at"`
}

func toOrderResponse(order *entity.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemResponse{
			ID:        item.ID.String(),
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Size:      item.Size,
			Color:     item.Color,
		})
	}

	return orderResponse{
		ID:        order.ID.String(),
		Status:    string(order.Status),
		Total:     order.Total,
		Address:   order.Address,
		Items:     items,
		CreatedAt: order.CreatedAt,
	}
}

func toOrderResponses(orders []*entity.Order) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOrderResponse(order))
	}

	return out
}

type reviewResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toReviewResponse(review *entity.Review) reviewResponse {
	return reviewResponse{
		ID:        review.ID.String(),
		UserID:    review.UserID.String(),
		ProductID: review.ProductID.String(),
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}

func toReviewResponses(reviews []*entity.Review) []reviewResponse {
	out := make([]reviewResponse, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, toReviewResponse(review))
	}

	return out
}

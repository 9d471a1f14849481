// Package listingclient is the Go client for the public listing API plus
// the accumulating window consumers use to drive an infinite-scroll style
// view with client-side filtering.
package listingclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"estate-service/internal/core/domain"

	"github.com/google/uuid"
)

// Page is one decoded window of the listing feed.
type Page struct {
	Items      []domain.Property
	NextCursor *string
	HasMore    bool
}

type propertyDTO struct {
	ID           string                  `json:"id"`
	Name         string                  `json:"name"`
	Slug         string                  `json:"slug"`
	Description  string                  `json:"description"`
	PropertyType string                  `json:"propertyType"`
	Price        float64                 `json:"price"`
	Location     string                  `json:"location"`
	Address      *string                 `json:"address,omitempty"`
	Bedrooms     int                     `json:"bedrooms"`
	Bathrooms    int                     `json:"bathrooms"`
	Area         *float64                `json:"area,omitempty"`
	Features     []string                `json:"features"`
	Status       string                  `json:"status"`
	OwnerID      *string                 `json:"ownerId,omitempty"`
	Thumbnail    *domain.ImageReference  `json:"thumbnail,omitempty"`
	Images       []domain.ImageReference `json:"images"`
	CreatedAt    time.Time               `json:"createdAt"`
}

type pageDTO struct {
	Items      []propertyDTO `json:"items"`
	NextCursor *string       `json:"nextCursor"`
	HasMore    bool          `json:"hasMore"`
}

// Client calls the listing endpoints of an estate-service instance.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) doRequest(ctx context.Context, method, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return c.httpClient.Do(req)
}

// GetPage fetches one listing window. A nil cursor asks for the first
// page; limit 0 lets the server apply its default.
func (c *Client) GetPage(ctx context.Context, cursor *string, limit int) (*Page, error) {
	query := url.Values{}
	if cursor != nil {
		query.Set("cursor", *cursor)
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	endpoint := c.baseURL + "/api/v1/listings"
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	resp, err := c.doRequest(ctx, http.MethodGet, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("listing service returned non-success status code %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var dto pageDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("failed to decode listing page: %w", err)
	}

	return toPage(dto)
}

// GetBySlug fetches one published listing. It returns (nil, nil) when the
// slug resolves to nothing.
func (c *Client) GetBySlug(ctx context.Context, slug string) (*domain.Property, error) {
	endpoint := c.baseURL + "/api/v1/listings/" + url.PathEscape(slug)

	resp, err := c.doRequest(ctx, http.MethodGet, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("listing service returned non-success status code %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var dto propertyDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("failed to decode listing: %w", err)
	}

	property, err := toProperty(dto)
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func toPage(dto pageDTO) (*Page, error) {
	items := make([]domain.Property, 0, len(dto.Items))
	for _, item := range dto.Items {
		property, err := toProperty(item)
		if err != nil {
			return nil, err
		}
		items = append(items, property)
	}
	return &Page{
		Items:      items,
		NextCursor: dto.NextCursor,
		HasMore:    dto.HasMore,
	}, nil
}

func toProperty(dto propertyDTO) (domain.Property, error) {
	id, err := uuid.Parse(dto.ID)
	if err != nil {
		return domain.Property{}, fmt.Errorf("invalid property id %q: %w", dto.ID, err)
	}
	features := dto.Features
	if features == nil {
		features = []string{}
	}
	images := dto.Images
	if images == nil {
		images = []domain.ImageReference{}
	}
	return domain.Property{
		ID:           id,
		Name:         dto.Name,
		Slug:         dto.Slug,
		Description:  dto.Description,
		PropertyType: dto.PropertyType,
		Price:        dto.Price,
		Location:     dto.Location,
		Address:      dto.Address,
		Bedrooms:     dto.Bedrooms,
		Bathrooms:    dto.Bathrooms,
		Area:         dto.Area,
		Features:     features,
		Status:       domain.PropertyStatus(dto.Status),
		OwnerID:      dto.OwnerID,
		Thumbnail:    dto.Thumbnail,
		Images:       images,
		CreatedAt:    dto.CreatedAt,
	}, nil
}

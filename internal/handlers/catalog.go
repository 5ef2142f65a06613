package handlers

import (
	"context"

	"github.com/gdg-garage/venue-booking-api/internal/catalog"
	"github.com/gdg-garage/venue-booking-api/internal/display"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

type MenuItemResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
}

type MenuCategoryResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Label       string             `json:"label"`
	Description string             `json:"description"`
	Items       []MenuItemResponse `json:"items"`
}

type BeveragePackageResponse struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Description         string  `json:"description"`
	Details             string  `json:"details,omitempty"`
	Image               string  `json:"image"`
	TwoHourPrice        float64 `json:"twoHourPrice"`
	ThreeHourPrice      float64 `json:"threeHourPrice"`
	AdditionalHourPrice float64 `json:"additionalHourPrice"`
}

type CatalogResponse struct {
	Locations    []catalog.Location        `json:"locations"`
	EventTypes   []catalog.EventType       `json:"eventTypes"`
	Categories   []MenuCategoryResponse    `json:"categories"`
	Beverages    []BeveragePackageResponse `json:"beverages"`
	OfferedHours []int                     `json:"offeredHours" doc:"Durations every beverage package can be booked for"`
}

type CatalogOutput struct {
	Body CatalogResponse
}

func (h *CatalogHandler) HandleCatalog(ctx context.Context, input *struct{}) (*CatalogOutput, error) {
	c := h.catalog
	res := &CatalogOutput{}
	res.Body.Locations = c.Locations
	res.Body.EventTypes = c.EventTypes
	res.Body.OfferedHours = catalog.OfferedHours

	for _, cat := range c.Categories {
		view := MenuCategoryResponse{
			ID:          cat.ID,
			Name:        cat.Name,
			Label:       cat.Label,
			Description: cat.Description,
			Items:       make([]MenuItemResponse, 0, len(cat.Items)),
		}
		for _, item := range cat.Items {
			view.Items = append(view.Items, MenuItemResponse{
				ID:          item.ID,
				Title:       item.Title,
				Description: item.Description,
				Image:       item.Image,
				Category:    item.Category,
				Price:       item.Price.Float(),
			})
		}
		res.Body.Categories = append(res.Body.Categories, view)
	}

	for _, pkg := range c.Beverages {
		res.Body.Beverages = append(res.Body.Beverages, BeveragePackageResponse{
			ID:                  pkg.ID,
			Name:                pkg.Name,
			Description:         pkg.Description,
			Details:             pkg.Details,
			Image:               pkg.Image,
			TwoHourPrice:        pkg.TwoHourPrice.Float(),
			ThreeHourPrice:      pkg.ThreeHourPrice.Float(),
			AdditionalHourPrice: pkg.AdditionalHourPrice.Float(),
		})
	}

	return res, nil
}

type TimeSlotsOutput struct {
	Body struct {
		Slots []display.TimeSlot `json:"slots"`
	}
}

func (h *CatalogHandler) HandleTimeSlots(ctx context.Context, input *struct{}) (*TimeSlotsOutput, error) {
	res := &TimeSlotsOutput{}
	res.Body.Slots = display.TimeSlots()
	return res, nil
}

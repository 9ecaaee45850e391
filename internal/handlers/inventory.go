// internal/handlers/inventory.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/awaisprogram/smart-inventory/internal/core/domain"
	"github.com/awaisprogram/smart-inventory/internal/core/ports"
)

// InventoryHandler handles inventory-related HTTP requests. It carries no
// domain logic: every endpoint parses the request, delegates to the
// manager, and renders the outcome.
type InventoryHandler struct {
	manager     ports.StockManager
	defaultFile string
	logger      *slog.Logger
}

// NewInventoryHandler creates a new inventory handler. defaultFile is the
// inventory file used when a save/load request does not name one.
func NewInventoryHandler(manager ports.StockManager, defaultFile string, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{
		manager:     manager,
		defaultFile: defaultFile,
		logger:      logger.With(slog.String("handler", "inventory")),
	}
}

// ListItems handles GET /api/v1/items. The name and type query parameters
// narrow the listing to a search.
func (h *InventoryHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	var items []domain.Item
	switch {
	case r.URL.Query().Get("name") != "":
		items = h.manager.SearchByName(r.URL.Query().Get("name"))
	case r.URL.Query().Get("type") != "":
		items = h.manager.SearchByType(domain.ItemKind(r.URL.Query().Get("type")))
	default:
		items = h.manager.ListAll()
	}

	h.respondJSON(w, http.StatusOK, ListItemsResponse{
		Items: itemViews(items, time.Now()),
		Count: len(items),
	})
}

// GetItem handles GET /api/v1/items/{id}
func (h *InventoryHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	item, found := h.manager.Item(id)
	if !found {
		h.respondError(w, http.StatusNotFound, "Item not found")
		return
	}

	h.respondJSON(w, http.StatusOK, newItemView(item, time.Now()))
}

// CreateItem handles POST /api/v1/items
func (h *InventoryHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	item := req.ToDomain()
	if err := h.manager.AddItem(item); err != nil {
		var dup *domain.DuplicateItemError
		if errors.As(err, &dup) {
			h.respondError(w, http.StatusConflict, "Item ID already exists")
			return
		}
		h.logger.ErrorContext(ctx, "failed to add item",
			slog.Int("id", item.ID()),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to add item")
		return
	}

	h.logger.InfoContext(ctx, "item created",
		slog.Int("id", item.ID()),
		slog.String("name", item.Name()),
		slog.String("type", string(item.Kind())))

	h.respondJSON(w, http.StatusCreated, newItemView(item, time.Now()))
}

// DeleteItem handles DELETE /api/v1/items/{id}
func (h *InventoryHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if !h.manager.RemoveItem(id) {
		h.respondError(w, http.StatusNotFound, "Item not found")
		return
	}

	h.logger.InfoContext(r.Context(), "item removed", slog.Int("id", id))
	h.respondJSON(w, http.StatusOK, OutcomeResponse{Success: true, Message: "Item removed"})
}

// SellItem handles POST /api/v1/items/{id}/sell
func (h *InventoryHandler) SellItem(w http.ResponseWriter, r *http.Request) {
	h.mutateStock(w, r, "sell", h.manager.SellItem)
}

// RestockItem handles POST /api/v1/items/{id}/restock
func (h *InventoryHandler) RestockItem(w http.ResponseWriter, r *http.Request) {
	h.mutateStock(w, r, "restock", h.manager.RestockItem)
}

// RemoveExpired handles DELETE /api/v1/items/expired
func (h *InventoryHandler) RemoveExpired(w http.ResponseWriter, r *http.Request) {
	removed := h.manager.RemoveExpired()

	message := "No expired items found"
	if len(removed) > 0 {
		message = fmt.Sprintf("Removed %d expired items", len(removed))
	}

	h.respondJSON(w, http.StatusOK, RemoveExpiredResponse{
		Removed: removed,
		Message: message,
	})
}

// SaveInventory handles POST /api/v1/inventory/save
func (h *InventoryHandler) SaveInventory(w http.ResponseWriter, r *http.Request) {
	h.persist(w, r, h.manager.SaveToFile)
}

// LoadInventory handles POST /api/v1/inventory/load
func (h *InventoryHandler) LoadInventory(w http.ResponseWriter, r *http.Request) {
	h.persist(w, r, h.manager.LoadFromFile)
}

// mutateStock runs a bool+message stock operation and renders its outcome.
func (h *InventoryHandler) mutateStock(w http.ResponseWriter, r *http.Request, op string, mutate func(id, quantity int) (bool, string)) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req QuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	success, message := mutate(id, req.Quantity)
	if !success {
		h.respondJSON(w, http.StatusUnprocessableEntity, OutcomeResponse{Success: false, Message: message})
		return
	}

	h.logger.InfoContext(r.Context(), "stock mutated",
		slog.String("op", op),
		slog.Int("id", id),
		slog.Int("quantity", req.Quantity))

	h.respondJSON(w, http.StatusOK, OutcomeResponse{Success: true, Message: message})
}

func (h *InventoryHandler) persist(w http.ResponseWriter, r *http.Request, op func(path string) (bool, string)) {
	// An empty body means the default file; anything unparseable is
	// still a bad request.
	var req FileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Filename == "" {
		req.Filename = h.defaultFile
	}

	success, message := op(req.Filename)
	status := http.StatusOK
	if !success {
		status = http.StatusUnprocessableEntity
	}
	h.respondJSON(w, status, OutcomeResponse{Success: success, Message: message})
}

func (h *InventoryHandler) parseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid item ID format")
		return 0, false
	}
	return id, true
}

// Helper methods

func (h *InventoryHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	respondJSON(w, h.logger, status, data)
}

func (h *InventoryHandler) respondError(w http.ResponseWriter, status int, message string) {
	respondError(w, h.logger, status, message)
}

// Request/Response DTOs

// AddItemRequest represents the request body for creating an item. The
// type field selects the variant and decides which payload fields apply.
type AddItemRequest struct {
	Type  string          `json:"type"`
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`

	Warranty int    `json:"warranty,omitempty"`
	Brand    string `json:"brand,omitempty"`
	Expiry   string `json:"expiry,omitempty"`
	Size     string `json:"size,omitempty"`
	Fabric   string `json:"fabric,omitempty"`
}

// Validate validates the add item request
func (r *AddItemRequest) Validate() error {
	switch domain.ItemKind(r.Type) {
	case domain.KindGadget, domain.KindApparel:
	case domain.KindFood:
		if _, err := time.Parse(domain.ExpiryLayout, r.Expiry); err != nil {
			return fmt.Errorf("expiry must be a date in YYYY-MM-DD form")
		}
	default:
		return fmt.Errorf("type must be one of Gadget, Food, Apparel")
	}
	if r.Stock < 0 {
		return fmt.Errorf("stock cannot be negative")
	}
	return nil
}

// ToDomain converts the request to a domain item
func (r *AddItemRequest) ToDomain() domain.Item {
	switch domain.ItemKind(r.Type) {
	case domain.KindFood:
		return domain.NewFood(r.ID, r.Name, r.Price, r.Stock, r.Expiry)
	case domain.KindApparel:
		return domain.NewApparel(r.ID, r.Name, r.Price, r.Stock, r.Size, r.Fabric)
	default:
		return domain.NewGadget(r.ID, r.Name, r.Price, r.Stock, r.Warranty, r.Brand)
	}
}

// QuantityRequest carries the quantity for sell/restock operations.
type QuantityRequest struct {
	Quantity int `json:"quantity"`
}

// FileRequest names the inventory file for save/load operations.
type FileRequest struct {
	Filename string `json:"filename"`
}

// OutcomeResponse mirrors the manager's boolean-and-message outcomes.
type OutcomeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RemoveExpiredResponse lists the names removed by an expiry sweep.
type RemoveExpiredResponse struct {
	Removed []string `json:"removed"`
	Message string   `json:"message"`
}

// ItemView is the JSON rendering of an item.
type ItemView struct {
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	Type       domain.ItemKind `json:"type"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
	Details    string          `json:"details"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// ListItemsResponse wraps an item listing.
type ListItemsResponse struct {
	Items []ItemView `json:"items"`
	Count int        `json:"count"`
}

func newItemView(item domain.Item, at time.Time) ItemView {
	return ItemView{
		ID:         item.ID(),
		Name:       item.Name(),
		Type:       item.Kind(),
		Price:      item.Price(),
		Stock:      item.Stock(),
		Details:    item.Details(at),
		TotalValue: item.TotalValue(),
	}
}

func itemViews(items []domain.Item, at time.Time) []ItemView {
	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, newItemView(item, at))
	}
	return views
}

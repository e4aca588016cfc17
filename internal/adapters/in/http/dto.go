package http

import (
	"time"

	"dealerorders/internal/core/application/usecases/queries"
	"dealerorders/internal/core/domain/model/basket"
	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/core/domain/model/order"
)

type CreateCampaignRequest struct {
	Name       string  `json:"name"        validate:"required"`
	ApproverID *string `json:"approver_id" validate:"omitempty,uuid"`
}

type CreateItemRequest struct {
	Name             string `json:"name"               validate:"required"`
	Remarks          string `json:"remarks"`
	Incl             int    `json:"incl"               validate:"gte=0"`
	ThreshAutoApp    int    `json:"thresh_auto_app"    validate:"gte=0"`
	ThreshStockAlert int    `json:"thresh_stock_alert" validate:"gte=0"`
	Stock            int    `json:"stock"              validate:"gte=0"`
}

type CreateDealerRequest struct {
	Name       string `json:"name"        validate:"required"`
	AbbName    string `json:"abb_name"`
	DealerCode string `json:"dealer_code"`
	ZipCode    string `json:"zip_code"`
	Address    string `json:"address"`
	Telephone  string `json:"telephone"`
	Recipient  string `json:"recipient"`
}

type AddToBasketRequest struct {
	ItemID   string `json:"item_id"  validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

type SetBasketItemQuantityRequest struct {
	Nos int `json:"nos" validate:"gte=0"`
}

// PlaceOrderRequest carries the reviewed destination. Omitted or blank
// fields keep the order's current values. The Save* flags copy the matching
// fields back to the dealer profile.
type PlaceOrderRequest struct {
	ZipCode           string `json:"zip_code"`
	Address           string `json:"address"`
	Telephone         string `json:"telephone"`
	Recipient         string `json:"recipient"`
	SaveZipAndAddress bool   `json:"save_zip_and_address"`
	SaveTelephone     bool   `json:"save_telephone"`
	SaveRecipient     bool   `json:"save_recipient"`
}

type DispatchOrderRequest struct {
	TrackingNumber string `json:"tracking_number" validate:"required,max=20"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type CampaignResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	ApproverID *string `json:"approver_id"`
}

type ItemResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Remarks          string `json:"remarks"`
	Incl             int    `json:"incl"`
	ThreshAutoApp    int    `json:"thresh_auto_app"`
	ThreshStockAlert int    `json:"thresh_stock_alert"`
	Stock            int    `json:"stock"`
}

type BasketItemResponse struct {
	ID      string  `json:"id"`
	ItemID  string  `json:"item_id"`
	OrderID *string `json:"order_id"`
	Nos     int     `json:"nos"`
}

type ContactResponse struct {
	DealerName string `json:"dealer_name"`
	ZipCode    string `json:"zip_code"`
	Address    string `json:"address"`
	Telephone  string `json:"telephone"`
	Recipient  string `json:"recipient"`
}

type OrderResponse struct {
	ID             string              `json:"id"`
	UserID         string              `json:"user_id"`
	CampaignID     string              `json:"campaign_id"`
	CampaignName   string              `json:"campaign_name,omitempty"`
	Status         string              `json:"status"`
	Contact        *ContactResponse    `json:"contact,omitempty"`
	DealerName     string              `json:"dealer_name"`
	TrackingNumber string              `json:"tracking_number"`
	PlacedAt       *time.Time          `json:"placed_at"`
	ApprovedAt     *time.Time          `json:"approved_at"`
	DispatchedAt   *time.Time          `json:"dispatched_at"`
	Lines          []OrderLineResponse `json:"lines,omitempty"`
}

type OrderLineResponse struct {
	ID       string `json:"id"`
	ItemID   string `json:"item_id"`
	ItemName string `json:"item_name,omitempty"`
	Nos      int    `json:"nos"`
}

func optionalID(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func contactResponse(c kernel.Contact) *ContactResponse {
	return &ContactResponse{
		DealerName: c.DealerName,
		ZipCode:    c.ZipCode,
		Address:    c.Address,
		Telephone:  c.Telephone,
		Recipient:  c.Recipient,
	}
}

func basketItemResponse(line *basket.BasketItem) BasketItemResponse {
	return BasketItemResponse{
		ID:      line.ID().String(),
		ItemID:  line.ItemID().String(),
		OrderID: optionalID(line.Order()),
		Nos:     line.Nos(),
	}
}

func orderResponse(o *order.Order, lines []*basket.BasketItem) OrderResponse {
	timeline := o.Timeline()
	resp := OrderResponse{
		ID:             o.ID().String(),
		UserID:         o.UserID().String(),
		CampaignID:     o.CampaignID().String(),
		Status:         o.Status().String(),
		Contact:        contactResponse(o.Contact()),
		DealerName:     o.Contact().DealerName,
		TrackingNumber: o.TrackingNumber(),
		PlacedAt:       timeline.PlacedAt,
		ApprovedAt:     timeline.ApprovedAt,
		DispatchedAt:   timeline.DispatchedAt,
	}
	for _, line := range lines {
		resp.Lines = append(resp.Lines, OrderLineResponse{
			ID:     line.ID().String(),
			ItemID: line.ItemID().String(),
			Nos:    line.Nos(),
		})
	}
	return resp
}

func summaryResponse(s queries.OrderSummary) OrderResponse {
	return OrderResponse{
		ID:             s.ID.String(),
		UserID:         s.UserID.String(),
		CampaignID:     s.CampaignID.String(),
		CampaignName:   s.CampaignName,
		Status:         s.Status.String(),
		DealerName:     s.DealerName,
		TrackingNumber: s.TrackingNumber,
		PlacedAt:       s.PlacedAt,
		ApprovedAt:     s.ApprovedAt,
		DispatchedAt:   s.DispatchedAt,
	}
}

func summariesResponse(summaries []queries.OrderSummary) []OrderResponse {
	resp := make([]OrderResponse, len(summaries))
	for i, s := range summaries {
		resp[i] = summaryResponse(s)
	}
	return resp
}

func detailsResponse(d queries.OrderDetails) OrderResponse {
	resp := summaryResponse(d.OrderSummary)
	resp.Contact = contactResponse(d.Contact)
	resp.Lines = make([]OrderLineResponse, len(d.Lines))
	for i, line := range d.Lines {
		resp.Lines[i] = OrderLineResponse{
			ID:       line.BasketItemID.String(),
			ItemID:   line.ItemID.String(),
			ItemName: line.ItemName,
			Nos:      line.Nos,
		}
	}
	return resp
}

package http

import (
	"net/http"

	"dealerorders/internal/core/application/usecases/commands"
	"dealerorders/internal/core/application/usecases/queries"
	"dealerorders/internal/core/domain/model/catalog"
	"dealerorders/internal/core/domain/model/dealer"
	"dealerorders/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetCampaigns handles GET /api/v1/campaigns.
func (s *Server) GetCampaigns(c echo.Context) error {
	campaigns, err := s.h.GetCampaigns.Handle(c.Request().Context(), queries.NewGetCampaignsQuery())
	if err != nil {
		return err
	}

	resp := make([]CampaignResponse, len(campaigns))
	for i, campaign := range campaigns {
		resp[i] = CampaignResponse{
			ID:         campaign.ID.String(),
			Name:       campaign.Name,
			ApproverID: optionalID(campaign.ApproverID),
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateCampaign handles POST /api/v1/campaigns.
func (s *Server) CreateCampaign(c echo.Context) error {
	var req CreateCampaignRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var approverID *kernel.UUID
	if req.ApproverID != nil {
		id, err := kernel.UUIDFromString(*req.ApproverID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid approver_id")
		}
		approverID = &id
	}

	cmd, err := commands.NewCreateCampaignCommand(kernel.NewUUID(), req.Name, approverID)
	if err != nil {
		return err
	}

	if err = s.h.CreateCampaign.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.CampaignID().String()})
}

// GetCampaignItems handles GET /api/v1/campaigns/:id/items.
func (s *Server) GetCampaignItems(c echo.Context) error {
	campaignID, err := pathID(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCampaignItemsQuery(campaignID)
	if err != nil {
		return err
	}

	items, err := s.h.GetCampaignItems.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	resp := make([]ItemResponse, len(items))
	for i, item := range items {
		resp[i] = ItemResponse{
			ID:               item.ID.String(),
			Name:             item.Name,
			Remarks:          item.Remarks,
			Incl:             item.Incl,
			ThreshAutoApp:    item.ThreshAutoApp,
			ThreshStockAlert: item.ThreshStockAlert,
			Stock:            item.Stock,
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateItem handles POST /api/v1/campaigns/:id/items.
func (s *Server) CreateItem(c echo.Context) error {
	campaignID, err := pathID(c)
	if err != nil {
		return err
	}

	var req CreateItemRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateItemCommand(kernel.NewUUID(), campaignID, catalog.Attributes{
		Name:             req.Name,
		Remarks:          req.Remarks,
		Incl:             req.Incl,
		ThreshAutoApp:    req.ThreshAutoApp,
		ThreshStockAlert: req.ThreshStockAlert,
		Stock:            req.Stock,
	})
	if err != nil {
		return err
	}

	if err = s.h.CreateItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.ItemID().String()})
}

// CreateDealer handles POST /api/v1/dealers: the caller's own profile.
func (s *Server) CreateDealer(c echo.Context) error {
	var req CreateDealerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateDealerCommand(kernel.NewUUID(), currentUser(c),
		dealer.Identity{Name: req.Name, AbbName: req.AbbName, DealerCode: req.DealerCode},
		kernel.Contact{
			ZipCode:   req.ZipCode,
			Address:   req.Address,
			Telephone: req.Telephone,
			Recipient: req.Recipient,
		},
	)
	if err != nil {
		return err
	}

	if err = s.h.CreateDealer.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.DealerID().String()})
}

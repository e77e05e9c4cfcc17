package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vkravets/chairshop/internal/server/http/dto"
)

// AddressHandler proxies carrier address lookups.
type AddressHandler struct {
	facade AddressFacade
}

// NewAddressHandler constructs AddressHandler.
func NewAddressHandler(facade AddressFacade) *AddressHandler {
	return &AddressHandler{facade: facade}
}

// Cities handles POST /api/novaposhta/cities. The request needs no body.
func (h *AddressHandler) Cities(c *gin.Context) {
	settlements, err := h.facade.Settlements(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	data := make([]dto.AddressItem, 0, len(settlements))
	for _, s := range settlements {
		data = append(data, dto.AddressItem{Ref: s.Ref, Description: s.Description})
	}

	c.JSON(http.StatusOK, dto.AddressListResponse{Success: true, Data: data})
}

// Warehouses handles POST /api/novaposhta/warehouses.
func (h *AddressHandler) Warehouses(c *gin.Context) {
	var req dto.WarehousesRequest
	// A missing or malformed body is the same caller error as an empty ref.
	_ = c.ShouldBindJSON(&req)

	warehouses, err := h.facade.Warehouses(c.Request.Context(), req.CityRef)
	if err != nil {
		respondError(c, err)
		return
	}

	data := make([]dto.AddressItem, 0, len(warehouses))
	for _, w := range warehouses {
		data = append(data, dto.AddressItem{Ref: w.Ref, Description: w.Description})
	}

	c.JSON(http.StatusOK, dto.AddressListResponse{Success: true, Data: data})
}

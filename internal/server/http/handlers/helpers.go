package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vkravets/chairshop/internal/adapter/novaposhta"
	domainErrors "github.com/vkravets/chairshop/internal/domain/errors"
	"github.com/vkravets/chairshop/internal/server/http/dto"
)

// respondError translates a domain or adapter error into the HTTP envelope.
// Already-classified client and not-found errors keep their status; carrier
// transport failures pass the upstream status through; anything else
// becomes a generic 500 without leaking detail.
func respondError(c *gin.Context, err error) {
	var (
		transportErr novaposhta.TransportError
		apiErr       novaposhta.APIError
	)

	switch {
	case errors.Is(err, domainErrors.ErrMissingField),
		errors.Is(err, domainErrors.ErrInvalidStatus),
		errors.Is(err, domainErrors.ErrCityRefRequired):
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Success: false, Message: err.Error()})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.MessageResponse{Success: false, Message: "order not found"})
	case errors.As(err, &transportErr):
		c.JSON(transportErr.StatusCode, dto.MessageResponse{Success: false, Message: transportErr.Error()})
	case errors.As(err, &apiErr):
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Success: false, Message: apiErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Success: false, Message: "internal server error"})
	}
}

// orderID parses the :id path parameter.
func orderID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Success: false, Message: "invalid order id"})
		return 0, false
	}
	return id, true
}

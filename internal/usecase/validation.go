package usecase

import (
	"fmt"
	"strings"

	domainErrors "github.com/vkravets/chairshop/internal/domain/errors"
	"github.com/vkravets/chairshop/internal/domain/model"
)

// ValidateOrderFields checks that every customer-supplied field is present.
// No format validation happens here; column constraints do the rest.
func ValidateOrderFields(order model.Order) error {
	fields := map[string]string{
		"name":      order.Name,
		"phone":     order.Phone,
		"city":      order.City,
		"warehouse": order.Warehouse,
		"chair":     order.Chair,
		"size":      order.Size,
	}
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s", domainErrors.ErrMissingField, name)
		}
	}
	return nil
}

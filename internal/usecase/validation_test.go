package usecase

import (
	"errors"
	"strings"
	"testing"

	domainErrors "github.com/vkravets/chairshop/internal/domain/errors"
	"github.com/vkravets/chairshop/internal/domain/model"
)

func TestValidateOrderFields(t *testing.T) {
	if err := ValidateOrderFields(validOrder()); err != nil {
		t.Fatalf("unexpected error for complete order: %v", err)
	}

	blank := func(mutate func(*model.Order)) model.Order {
		order := validOrder()
		mutate(&order)
		return order
	}

	cases := map[string]model.Order{
		"name":      blank(func(o *model.Order) { o.Name = "" }),
		"phone":     blank(func(o *model.Order) { o.Phone = " " }),
		"city":      blank(func(o *model.Order) { o.City = "" }),
		"warehouse": blank(func(o *model.Order) { o.Warehouse = "\t" }),
		"chair":     blank(func(o *model.Order) { o.Chair = "" }),
		"size":      blank(func(o *model.Order) { o.Size = "" }),
	}

	for field, order := range cases {
		err := ValidateOrderFields(order)
		if !errors.Is(err, domainErrors.ErrMissingField) {
			t.Errorf("expected missing field error for %s, got %v", field, err)
			continue
		}
		if !strings.Contains(err.Error(), field) {
			t.Errorf("expected error to name %s, got %q", field, err.Error())
		}
	}
}

package usecase

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/vkravets/chairshop/internal/adapter/novaposhta"
	domainErrors "github.com/vkravets/chairshop/internal/domain/errors"
	"github.com/vkravets/chairshop/internal/domain/model"
)

const (
	// settlementsCacheLifetime bounds how long the settlement snapshot is served
	// without asking the carrier again.
	settlementsCacheLifetime = 24 * time.Hour

	settlementsPageLimit = 500
	warehousesPageLimit  = 1000
)

// Settlement types the storefront offers delivery to, as the carrier spells them.
var deliverableSettlementTypes = map[string]struct{}{
	"місто":                 {},
	"селище міського типу": {},
}

// AddressUseCase proxies carrier address lookups and owns the settlement cache.
type AddressUseCase struct {
	carrier novaposhta.Client
	cache   settlementCache
	logger  *slog.Logger
	now     func() time.Time
}

// NewAddressUseCase constructs AddressUseCase.
func NewAddressUseCase(carrier novaposhta.Client, logger *slog.Logger) *AddressUseCase {
	return &AddressUseCase{carrier: carrier, logger: logger, now: time.Now}
}

// Settlements returns the full deliverable city list, sorted
// case-insensitively by description. A fresh cached snapshot is served
// without any carrier call; otherwise every carrier page is fetched,
// filtered, and the cache replaced.
func (u *AddressUseCase) Settlements(ctx context.Context) ([]model.Settlement, error) {
	if items, ok := u.cache.get(u.now(), settlementsCacheLifetime); ok {
		return items, nil
	}

	var raw []novaposhta.Item
	pages := 0
	// The carrier signals the last page with an empty data array. No page
	// ceiling is imposed; upstream holds a few dozen pages at this limit.
	for page := 1; ; page++ {
		resp, err := u.carrier.Call(ctx, "getSettlements", map[string]string{
			"Limit": strconv.Itoa(settlementsPageLimit),
			"Page":  strconv.Itoa(page),
		})
		if err != nil {
			return nil, err
		}
		if len(resp.Data) == 0 {
			break
		}
		raw = append(raw, resp.Data...)
		pages++
	}
	u.logger.Info("settlements refreshed", slog.Int("pages", pages), slog.Int("total", len(raw)))

	settlements := make([]model.Settlement, 0, len(raw))
	for _, item := range raw {
		if _, ok := deliverableSettlementTypes[item.SettlementTypeDescription]; !ok {
			continue
		}
		settlements = append(settlements, model.Settlement{Ref: item.Ref, Description: item.Description})
	}
	sort.Slice(settlements, func(i, j int) bool {
		return strings.ToLower(settlements[i].Description) < strings.ToLower(settlements[j].Description)
	})

	u.cache.set(settlements, u.now())
	return settlements, nil
}

// Warehouses returns carrier branches for one city, never cached.
func (u *AddressUseCase) Warehouses(ctx context.Context, cityRef string) ([]model.Warehouse, error) {
	cityRef = strings.TrimSpace(cityRef)
	if cityRef == "" {
		return nil, domainErrors.ErrCityRefRequired
	}

	resp, err := u.carrier.Call(ctx, "getWarehouses", map[string]string{
		"CityRef": cityRef,
		"Page":    "1",
		"Limit":   strconv.Itoa(warehousesPageLimit),
	})
	if err != nil {
		return nil, err
	}

	warehouses := make([]model.Warehouse, 0, len(resp.Data))
	for _, item := range resp.Data {
		warehouses = append(warehouses, model.Warehouse{Ref: item.Ref, Description: item.Description})
	}
	sort.Slice(warehouses, func(i, j int) bool {
		return strings.ToLower(warehouses[i].Description) < strings.ToLower(warehouses[j].Description)
	})

	return warehouses, nil
}

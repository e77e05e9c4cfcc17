package dto

// WarehousesRequest selects the city whose branches are listed.
type WarehousesRequest struct {
	CityRef string `json:"cityRef"`
}

// AddressItem is one settlement or warehouse entry. Field casing follows
// the carrier API, which the storefront consumes verbatim.
type AddressItem struct {
	Ref         string `json:"Ref"`
	Description string `json:"Description"`
}

// AddressListResponse wraps city/warehouse listings.
type AddressListResponse struct {
	Success bool          `json:"success"`
	Data    []AddressItem `json:"data"`
}

package model

// Settlement is a carrier-recognized place eligible for delivery.
type Settlement struct {
	Ref         string
	Description string
}

// Warehouse is a carrier branch within a settlement.
type Warehouse struct {
	Ref         string
	Description string
}

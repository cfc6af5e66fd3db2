package resource

// Route names of every resource. They double as authorization objects.
const (
	CommitmentStates     = "commitment-states"
	EventStates          = "event-states"
	OfferStates          = "offer-states"
	PaymentStates        = "payment-states"
	TimeTrackingStates   = "time-tracking-states"
	Countries            = "countries"
	Genders              = "genders"
	InventoryConditions  = "inventory-conditions"
	Skills               = "skills"
	Departments          = "departments"
	PriceGroups          = "price-groups"
	ServiceAreas         = "service-areas"
	TimeTrackingChannels = "time-tracking-channels"

	Locations      = "locations"
	Events         = "events"
	Customers      = "customers"
	Employees      = "employees"
	PromoterGroups = "promoter-groups"
	Promoters      = "promoters"
	Commitments    = "commitments"
	TimeTrackings  = "time-trackings"
	Offers         = "offers"
	Invoices       = "invoices"
	Inventories    = "inventories"

	Users            = "users"
	Groups           = "groups"
	GroupUsers       = "group-users"
	GroupPermissions = "group-permissions"
)

// Wildcard matches every resource or action in a permission.
const Wildcard = "*"

// Catalog lists every resource name in route registration order.
var Catalog = []string{
	CommitmentStates, EventStates, OfferStates, PaymentStates, TimeTrackingStates,
	Countries, Genders, InventoryConditions, Skills, Departments, PriceGroups,
	ServiceAreas, TimeTrackingChannels,
	Locations, Events, Customers, Employees, PromoterGroups, Promoters,
	Commitments, TimeTrackings, Offers, Invoices, Inventories,
	Users, Groups, GroupUsers, GroupPermissions,
}

// Known reports whether name is a catalogued resource or the wildcard.
func Known(name string) bool {
	if name == Wildcard {
		return true
	}
	for _, n := range Catalog {
		if n == name {
			return true
		}
	}
	return false
}

// Actions a permission may grant.
const (
	ActionView   = "view"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

var Actions = []string{ActionView, ActionCreate, ActionUpdate, ActionDelete}

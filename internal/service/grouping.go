package service

import "github.com/jasakreatif/storefront-service/internal/model"

// ServiceGroup is one catalog section: every service sharing a service_type,
// in fetch order.
type ServiceGroup struct {
	ServiceType model.ServiceType `json:"service_type"`
	DisplayName string            `json:"display_name"`
	Services    []model.Service   `json:"services"`
}

// GroupServicesByType partitions services into groups keyed by service_type,
// preserving input order both across groups (first occurrence) and within each
// group. Every input service appears in exactly one group; unknown type codes
// form their own group with the raw code as display name.
func GroupServicesByType(items []model.Service) []ServiceGroup {
	var groups []ServiceGroup
	index := make(map[model.ServiceType]int)
	for _, svc := range items {
		i, ok := index[svc.ServiceType]
		if !ok {
			i = len(groups)
			index[svc.ServiceType] = i
			groups = append(groups, ServiceGroup{
				ServiceType: svc.ServiceType,
				DisplayName: svc.ServiceType.DisplayName(),
			})
		}
		groups[i].Services = append(groups[i].Services, svc)
	}
	return groups
}

// GroupOrdersByStatus partitions orders by status. The union of the groups is
// exactly the input: no order is dropped, none appears twice, and an order
// with an unrecognized status code still gets a group.
func GroupOrdersByStatus(items []model.Order) map[model.OrderStatus][]model.Order {
	groups := make(map[model.OrderStatus][]model.Order)
	for _, o := range items {
		groups[o.Status] = append(groups[o.Status], o)
	}
	return groups
}

// CountOrdersByStatus returns per-status totals, with every known status
// present (zero when empty) and unknown codes counted under their raw value.
func CountOrdersByStatus(items []model.Order) map[model.OrderStatus]int {
	counts := make(map[model.OrderStatus]int, len(model.OrderStatuses()))
	for _, st := range model.OrderStatuses() {
		counts[st] = 0
	}
	for _, o := range items {
		counts[o.Status]++
	}
	return counts
}

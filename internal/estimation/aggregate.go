package estimation

import "github.com/propaint/estimate-api/internal/domain"

// RoomTotal sums the total prices of a room's line items. Rooms excluded
// from the bid contribute zero regardless of their items.
func RoomTotal(room *domain.Room) float64 {
	if !room.Included {
		return 0
	}
	var sum float64
	for i := range room.Items {
		sum += room.Items[i].TotalPrice
	}
	return sum
}

// RoomDirectCost sums labor plus material for a room's line items, before
// overhead, profit and tax. Excluded rooms contribute zero.
func RoomDirectCost(room *domain.Room) float64 {
	if !room.Included {
		return 0
	}
	var sum float64
	for i := range room.Items {
		sum += room.Items[i].LaborCost + room.Items[i].MaterialCost
	}
	return sum
}

// ProjectTotals returns a copy of the project with both total fields set to
// the sum of its room totals. TotalCost deliberately mirrors TotalPrice for
// now; the per-item breakdown retains the underlying cost split, and
// ProjectDirectCost exposes the pre-margin figure for reporting.
func ProjectTotals(project domain.Project) domain.Project {
	var total float64
	for i := range project.Rooms {
		total += RoomTotal(&project.Rooms[i])
	}
	out := project
	out.TotalPrice = total
	out.TotalCost = total
	return out
}

// ProjectDirectCost sums the direct cost of every included room.
func ProjectDirectCost(project *domain.Project) float64 {
	var total float64
	for i := range project.Rooms {
		total += RoomDirectCost(&project.Rooms[i])
	}
	return total
}

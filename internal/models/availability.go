package models

// Availability is a snapshot of open rooms per type for one date range.
// It is not persisted; a newer query simply replaces it.
type Availability struct {
	Deluxe   int `json:"Deluxe"`
	Suite    int `json:"Suite"`
	Standard int `json:"Standard"`
}

func (a Availability) Count(rt RoomType) int {
	switch rt {
	case RoomDeluxe:
		return a.Deluxe
	case RoomSuite:
		return a.Suite
	case RoomStandard:
		return a.Standard
	}
	return 0
}

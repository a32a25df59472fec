package store

import "fmt"

// View identifies one screen of the booking flow. The set is closed; the
// linear flow is search -> results -> seats -> booking -> payment ->
// confirmation, with ancillary branches after confirmation and a bookings
// listing reachable at any time.
type View string

const (
	ViewSearch              View = "search"
	ViewResults             View = "results"
	ViewSeats               View = "seats"
	ViewBooking             View = "booking"
	ViewPayment             View = "payment"
	ViewConfirmation        View = "confirmation"
	ViewHotelBooking        View = "hotel-booking"
	ViewCabBooking          View = "cab-booking"
	ViewTravelPackage       View = "travel-package"
	ViewPackageConfirmation View = "package-confirmation"
	ViewBookings            View = "bookings"
	ViewHistory             View = "history"
)

var knownViews = map[View]bool{
	ViewSearch: true, ViewResults: true, ViewSeats: true, ViewBooking: true,
	ViewPayment: true, ViewConfirmation: true, ViewHotelBooking: true,
	ViewCabBooking: true, ViewTravelPackage: true, ViewPackageConfirmation: true,
	ViewBookings: true, ViewHistory: true,
}

// checkViewPrerequisites rejects a transition into a view whose upstream
// state is missing, instead of letting the view render against nothing.
// Returning to an earlier step never discards downstream selections.
func checkViewPrerequisites(state AppState, view View) error {
	if !knownViews[view] {
		return fmt.Errorf("unknown view %q", view)
	}

	switch view {
	case ViewResults:
		if len(state.SearchResults) == 0 {
			return fmt.Errorf("cannot enter %s: no search results", view)
		}
	case ViewSeats:
		if state.SelectedFlight == nil {
			return fmt.Errorf("cannot enter %s: no flight selected", view)
		}
	case ViewBooking:
		if state.SelectedFlight == nil {
			return fmt.Errorf("cannot enter %s: no flight selected", view)
		}
		if len(state.SelectedSeats) == 0 {
			return fmt.Errorf("cannot enter %s: no seats selected", view)
		}
	case ViewPayment:
		if state.CurrentBooking == nil {
			return fmt.Errorf("cannot enter %s: no booking in progress", view)
		}
	case ViewConfirmation, ViewHotelBooking, ViewCabBooking, ViewTravelPackage, ViewPackageConfirmation:
		if state.CurrentBooking == nil {
			return fmt.Errorf("cannot enter %s: no booking in progress", view)
		}
	}
	return nil
}

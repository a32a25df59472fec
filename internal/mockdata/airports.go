// Package mockdata generates the synthetic flight, seat, hotel and cab
// catalogs the service serves. Nothing here is persisted; listings are
// regenerated on every request, so repeated searches for the same inputs
// produce different results.
package mockdata

import "skyways/internal/models"

// Airports is the static reference list: major Indian domestic airports
// plus the international destinations served from India.
var Airports = []models.Airport{
	{Code: "DEL", Name: "Indira Gandhi International Airport", City: "Delhi", Country: "India"},
	{Code: "BOM", Name: "Chhatrapati Shivaji Maharaj International Airport", City: "Mumbai", Country: "India"},
	{Code: "BLR", Name: "Kempegowda International Airport", City: "Bangalore", Country: "India"},
	{Code: "MAA", Name: "Chennai International Airport", City: "Chennai", Country: "India"},
	{Code: "CCU", Name: "Netaji Subhas Chandra Bose International Airport", City: "Kolkata", Country: "India"},
	{Code: "HYD", Name: "Rajiv Gandhi International Airport", City: "Hyderabad", Country: "India"},
	{Code: "AMD", Name: "Sardar Vallabhbhai Patel International Airport", City: "Ahmedabad", Country: "India"},
	{Code: "PNQ", Name: "Pune Airport", City: "Pune", Country: "India"},
	{Code: "GOI", Name: "Goa International Airport", City: "Goa", Country: "India"},
	{Code: "COK", Name: "Cochin International Airport", City: "Kochi", Country: "India"},
	{Code: "JAI", Name: "Jaipur International Airport", City: "Jaipur", Country: "India"},
	{Code: "LKO", Name: "Chaudhary Charan Singh International Airport", City: "Lucknow", Country: "India"},
	{Code: "IXC", Name: "Chandigarh Airport", City: "Chandigarh", Country: "India"},
	{Code: "IXB", Name: "Bagdogra Airport", City: "Bagdogra", Country: "India"},
	{Code: "GAU", Name: "Lokpriya Gopinath Bordoloi International Airport", City: "Guwahati", Country: "India"},

	{Code: "DXB", Name: "Dubai International Airport", City: "Dubai", Country: "UAE"},
	{Code: "SIN", Name: "Singapore Changi Airport", City: "Singapore", Country: "Singapore"},
	{Code: "LHR", Name: "London Heathrow Airport", City: "London", Country: "UK"},
	{Code: "JFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "USA"},
	{Code: "NRT", Name: "Narita International Airport", City: "Tokyo", Country: "Japan"},
	{Code: "CDG", Name: "Charles de Gaulle Airport", City: "Paris", Country: "France"},
	{Code: "FRA", Name: "Frankfurt Airport", City: "Frankfurt", Country: "Germany"},
	{Code: "SYD", Name: "Sydney Kingsford Smith Airport", City: "Sydney", Country: "Australia"},
	{Code: "BKK", Name: "Suvarnabhumi Airport", City: "Bangkok", Country: "Thailand"},
	{Code: "KUL", Name: "Kuala Lumpur International Airport", City: "Kuala Lumpur", Country: "Malaysia"},
	{Code: "ICN", Name: "Incheon International Airport", City: "Seoul", Country: "South Korea"},
	{Code: "HKG", Name: "Hong Kong International Airport", City: "Hong Kong", Country: "Hong Kong"},
}

// FindAirport looks an airport up by IATA code. Returns nil when unknown.
func FindAirport(code string) *models.Airport {
	for i := range Airports {
		if Airports[i].Code == code {
			return &Airports[i]
		}
	}
	return nil
}

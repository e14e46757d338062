package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/farellandr/airport-service/internal/models"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsStaff   bool      `json:"is_staff"`
}

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		IsStaff:   user.IsStaff,
	}
}

type AirplaneResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Rows             int       `json:"rows"`
	SeatsInRow       int       `json:"seats_in_row"`
	Capacity         int       `json:"capacity"`
	AirplaneType     uuid.UUID `json:"airplane_type"`
	AirplaneTypeName string    `json:"airplane_type_name,omitempty"`
}

func toAirplaneResponse(airplane *models.Airplane) AirplaneResponse {
	resp := AirplaneResponse{
		ID:           airplane.ID,
		Name:         airplane.Name,
		Rows:         airplane.Rows,
		SeatsInRow:   airplane.SeatsInRow,
		Capacity:     airplane.Capacity(),
		AirplaneType: airplane.AirplaneTypeID,
	}
	if airplane.AirplaneType != nil {
		resp.AirplaneTypeName = airplane.AirplaneType.Name
	}
	return resp
}

type RouteResponse struct {
	ID          uuid.UUID       `json:"id"`
	Source      *models.Airport `json:"source"`
	Destination *models.Airport `json:"destination"`
	Distance    int             `json:"distance"`
}

func toRouteResponse(route *models.Route) RouteResponse {
	return RouteResponse{
		ID:          route.ID,
		Source:      route.Source,
		Destination: route.Destination,
		Distance:    route.Distance,
	}
}

type CrewResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
}

func toCrewResponse(crew models.Crew) CrewResponse {
	return CrewResponse{
		ID:        crew.ID,
		FirstName: crew.FirstName,
		LastName:  crew.LastName,
		FullName:  crew.FullName(),
	}
}

// FlightResponse is the shape returned by flight writes.
type FlightResponse struct {
	ID            uuid.UUID   `json:"id"`
	Route         uuid.UUID   `json:"route"`
	Airplane      uuid.UUID   `json:"airplane"`
	Crew          []uuid.UUID `json:"crew"`
	DepartureTime time.Time   `json:"departure_time"`
	ArrivalTime   time.Time   `json:"arrival_time"`
}

func toFlightResponse(flight *models.Flight) FlightResponse {
	crew := make([]uuid.UUID, 0, len(flight.Crew))
	for _, member := range flight.Crew {
		crew = append(crew, member.ID)
	}
	return FlightResponse{
		ID:            flight.ID,
		Route:         flight.RouteID,
		Airplane:      flight.AirplaneID,
		Crew:          crew,
		DepartureTime: flight.DepartureTime,
		ArrivalTime:   flight.ArrivalTime,
	}
}

type FlightListItem struct {
	ID               uuid.UUID `json:"id"`
	RouteSource      string    `json:"route_source"`
	RouteDestination string    `json:"route_destination"`
	AirplaneName     string    `json:"airplane_name"`
	AirplaneCapacity int       `json:"airplane_capacity"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
	TicketsAvailable int       `json:"tickets_available"`
}

func toFlightListItem(flight *models.Flight) FlightListItem {
	item := FlightListItem{
		ID:               flight.ID,
		DepartureTime:    flight.DepartureTime,
		ArrivalTime:      flight.ArrivalTime,
		TicketsAvailable: flight.TicketsAvailable,
	}
	if flight.Route != nil {
		if flight.Route.Source != nil {
			item.RouteSource = flight.Route.Source.Name
		}
		if flight.Route.Destination != nil {
			item.RouteDestination = flight.Route.Destination.Name
		}
	}
	if flight.Airplane != nil {
		item.AirplaneName = flight.Airplane.Name
		item.AirplaneCapacity = flight.Airplane.Capacity()
	}
	return item
}

type TakenPlace struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

type FlightDetail struct {
	ID               uuid.UUID        `json:"id"`
	Route            RouteResponse    `json:"route"`
	Airplane         AirplaneResponse `json:"airplane"`
	Crew             []CrewResponse   `json:"crew"`
	DepartureTime    time.Time        `json:"departure_time"`
	ArrivalTime      time.Time        `json:"arrival_time"`
	TicketsAvailable int              `json:"tickets_available"`
	TakenPlaces      []TakenPlace     `json:"taken_places"`
}

func toFlightDetail(flight *models.Flight) FlightDetail {
	detail := FlightDetail{
		ID:               flight.ID,
		Crew:             make([]CrewResponse, 0, len(flight.Crew)),
		DepartureTime:    flight.DepartureTime,
		ArrivalTime:      flight.ArrivalTime,
		TicketsAvailable: flight.TicketsAvailable,
		TakenPlaces:      make([]TakenPlace, 0, len(flight.Tickets)),
	}
	if flight.Route != nil {
		detail.Route = toRouteResponse(flight.Route)
	}
	if flight.Airplane != nil {
		detail.Airplane = toAirplaneResponse(flight.Airplane)
	}
	for _, member := range flight.Crew {
		detail.Crew = append(detail.Crew, toCrewResponse(member))
	}
	for _, ticket := range flight.Tickets {
		detail.TakenPlaces = append(detail.TakenPlaces, TakenPlace{Row: ticket.Row, Seat: ticket.Seat})
	}
	return detail
}

type TicketFlight struct {
	ID               uuid.UUID `json:"id"`
	RouteSource      string    `json:"route_source"`
	RouteDestination string    `json:"route_destination"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
}

type TicketResponse struct {
	ID     uuid.UUID     `json:"id"`
	Row    int           `json:"row"`
	Seat   int           `json:"seat"`
	Flight *TicketFlight `json:"flight,omitempty"`
}

type OrderResponse struct {
	ID        uuid.UUID        `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Tickets   []TicketResponse `json:"tickets"`
}

func toTicketResponse(ticket *models.Ticket) TicketResponse {
	resp := TicketResponse{ID: ticket.ID, Row: ticket.Row, Seat: ticket.Seat}
	if flight := ticket.Flight; flight != nil {
		resp.Flight = &TicketFlight{
			ID:            flight.ID,
			DepartureTime: flight.DepartureTime,
			ArrivalTime:   flight.ArrivalTime,
		}
		if flight.Route != nil && flight.Route.Source != nil && flight.Route.Destination != nil {
			resp.Flight.RouteSource = flight.Route.Source.Name
			resp.Flight.RouteDestination = flight.Route.Destination.Name
		}
	} else {
		resp.Flight = &TicketFlight{ID: ticket.FlightID}
	}
	return resp
}

func toOrderResponse(order *models.Order) OrderResponse {
	resp := OrderResponse{
		ID:        order.ID,
		CreatedAt: order.CreatedAt,
		Tickets:   make([]TicketResponse, 0, len(order.Tickets)),
	}
	for i := range order.Tickets {
		resp.Tickets = append(resp.Tickets, toTicketResponse(&order.Tickets[i]))
	}
	return resp
}

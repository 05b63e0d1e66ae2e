package handlers

// HandlerBundle aggregates the HTTP handlers so route registration can
// receive a single dependency.
type HandlerBundle struct {
	Booking     *BookingHandler
	Room        *RoomHandler
	RoomService *RoomServiceHandler
	Dashboard   *DashboardHandler
	Auth        *AuthHandler
}

package api

// Role identifies a user's capability level on the marketplace.
type Role string

// User roles
const (
	// RoleUser is a regular camper who books and rates spots
	RoleUser Role = "USER"
	// RoleOwner manages listings and sees the revenue dashboard
	RoleOwner Role = "OWNER"
)

// User represents a marketplace account.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	Avatar    string `json:"avatar,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// SpotOwner is the abbreviated owner record embedded in a Spot.
type SpotOwner struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Spot represents a camping spot listing.
type Spot struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Location      string     `json:"location"`
	Price         float64    `json:"price"`
	Latitude      *float64   `json:"latitude,omitempty"`
	Longitude     *float64   `json:"longitude,omitempty"`
	Images        []string   `json:"images,omitempty"`
	AverageRating *float64   `json:"averageRating,omitempty"`
	TotalRatings  int        `json:"totalRatings,omitempty"`
	CreatedAt     string     `json:"createdAt,omitempty"`
	UpdatedAt     string     `json:"updatedAt,omitempty"`
	Owner         *SpotOwner `json:"owner,omitempty"`
}

// Booking represents a reserved date range on a spot.
type Booking struct {
	ID        string `json:"id"`
	SpotID    string `json:"spotId"`
	UserID    string `json:"userId"`
	DateFrom  string `json:"dateFrom"`
	DateTo    string `json:"dateTo"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	Spot      *Spot  `json:"spot,omitempty"`
	User      *User  `json:"user,omitempty"`
}

// Rating represents a user's review of a spot.
type Rating struct {
	ID        string     `json:"id"`
	Rating    int        `json:"rating"`
	Comment   string     `json:"comment,omitempty"`
	CreatedAt string     `json:"createdAt,omitempty"`
	User      *SpotOwner `json:"user,omitempty"`
	Spot      *Spot      `json:"spot,omitempty"`
}

// OwnerDashboard aggregates revenue statistics for an owner's listings.
type OwnerDashboard struct {
	TotalSpots     int       `json:"totalSpots"`
	TotalBookings  int       `json:"totalBookings"`
	TotalRevenue   float64   `json:"totalRevenue"`
	RecentBookings []Booking `json:"recentBookings,omitempty"`
}

// LoginCredentials is the payload for POST /auth/login.
type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterData is the payload for POST /auth/register.
// Role is optional; the backend defaults it to USER.
type RegisterData struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role,omitempty"`
}

// AuthResponse is returned by the login and register endpoints.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// ProfileResponse is returned by GET /auth/profile.
type ProfileResponse struct {
	User User `json:"user"`
}

// CreateSpotRequest is the payload for POST /spots and PUT /spots/{id}.
type CreateSpotRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Price       float64  `json:"price"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// CreateBookingRequest is the payload for POST /bookings.
type CreateBookingRequest struct {
	SpotID   string `json:"spotId"`
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
}

// RateSpotRequest is the payload for POST /ratings. The backend creates a new
// rating or updates the caller's existing one for the same spot.
type RateSpotRequest struct {
	SpotID  string `json:"spotId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

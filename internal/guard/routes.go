package guard

// Well-known redirect targets.
const (
	HomePath  = "/"
	LoginPath = "/login"
)

// The client's screens and their static capability flags. Commands resolve to
// one of these before running.
var (
	Home           = Route{Path: HomePath, Name: "Home"}
	Login          = Route{Path: LoginPath, Name: "Login", RequiresGuest: true}
	Register       = Route{Path: "/register", Name: "Register", RequiresGuest: true}
	OAuthCallback  = Route{Path: "/login/callback", Name: "OAuthCallback"}
	ForgotPassword = Route{Path: "/forgot-password", Name: "ForgotPassword", RequiresGuest: true}
	ResetPassword  = Route{Path: "/reset-password", Name: "ResetPassword", RequiresGuest: true}
	SpotDetails    = Route{Path: "/spots/:id", Name: "SpotDetails"}
	Profile        = Route{Path: "/profile", Name: "Profile", RequiresAuth: true}
	OwnerDashboard = Route{Path: "/owner/dashboard", Name: "OwnerDashboard", RequiresAuth: true, RequiresOwner: true}
)

// Routes lists every screen, in navigation-menu order.
var Routes = []Route{
	Home,
	Login,
	Register,
	OAuthCallback,
	ForgotPassword,
	ResetPassword,
	SpotDetails,
	Profile,
	OwnerDashboard,
}

// Package entity contains the core business objects of the project.
package entity

// LoginStatus mirrors the status values the Facebook login widget reports.
type LoginStatus string

const (
	// LoginStatusConnected means the person is logged into Facebook and has authorized the app.
	LoginStatusConnected LoginStatus = "connected"
	// LoginStatusNotAuthorized means the person is logged into Facebook but has not authorized the app.
	LoginStatusNotAuthorized LoginStatus = "not_authorized"
	// LoginStatusUnknown covers every other widget state, including "no Facebook session at all".
	LoginStatusUnknown LoginStatus = "unknown"
)

// FacebookUser is the minimal profile returned by the Graph /me edge.
type FacebookUser struct {
	ID    string
	Name  string
	Email string
}

// FacebookPage is one entry of the Graph /me/accounts edge: a page the
// user administers, together with the page-scoped access token Facebook
// grants for it. Order is preserved as returned by the API.
type FacebookPage struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	AccessToken string   `json:"access_token"`
	Category    string   `json:"category"`
	Tasks       []string `json:"tasks"`
}

// StatusChange is what the dashboard posts when the login widget invokes
// its onlogin callback. AccessToken is the short-lived user token from
// the widget's auth response and may be empty for the non-connected
// states.
type StatusChange struct {
	Status      LoginStatus
	FacebookUID string
	AccessToken string
}

// Package dto defines data transfer objects for the J-Quants API responses.
package dto

// AuthUserRequest is the body of POST /token/auth_user.
type AuthUserRequest struct {
	MailAddress string `json:"mailaddress"`
	Password    string `json:"password"`
}

// AuthUserResponse represents the response of /token/auth_user.
type AuthUserResponse struct {
	RefreshToken string `json:"refreshToken"`
	Message      string `json:"message,omitempty"`
}

// AuthRefreshResponse represents the response of /token/auth_refresh.
type AuthRefreshResponse struct {
	IDToken string `json:"idToken"`
	Message string `json:"message,omitempty"`
}

// ListedInfoResponse represents the response of /listed/info.
type ListedInfoResponse struct {
	Info    []ListedInfo `json:"info"`
	Message string       `json:"message,omitempty"`
}

type ListedInfo struct {
	Date               string `json:"Date"`
	Code               string `json:"Code"`
	CompanyName        string `json:"CompanyName"`
	CompanyNameEnglish string `json:"CompanyNameEnglish"`
	Sector17Code       string `json:"Sector17Code"`
	Sector17CodeName   string `json:"Sector17CodeName"`
	Sector33Code       string `json:"Sector33Code"`
	Sector33CodeName   string `json:"Sector33CodeName"`
	ScaleCategory      string `json:"ScaleCategory"`
	MarketCode         string `json:"MarketCode"`
	MarketCodeName     string `json:"MarketCodeName"`
}

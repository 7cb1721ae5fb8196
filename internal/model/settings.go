package model

// CenterSettings holds clinic identity produced by the setup wizard.
// Until IsSetupComplete is true only an admin may use the system; other
// roles are held at a blocking setup-pending state.
type CenterSettings struct {
	CenterName      string `json:"center_name"`
	Logo            string `json:"logo"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	IsSetupComplete bool   `json:"is_setup_complete"`
}

// CompleteSetupRequest represents setup wizard submission parameters
type CompleteSetupRequest struct {
	CenterName string `json:"center_name" binding:"required"`
	Logo       string `json:"logo"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}

// UpdateSettingsRequest represents settings update parameters
type UpdateSettingsRequest struct {
	CenterName *string `json:"center_name"`
	Logo       *string `json:"logo"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
}

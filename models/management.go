package models

// ManagementAdmin is a partner-college admin account.
type ManagementAdmin struct {
	CollegeName string `json:"collegeName"`
	AdminName   string `json:"adminName"`
	Username    string `json:"username"`
	Password    string `json:"password"`
}

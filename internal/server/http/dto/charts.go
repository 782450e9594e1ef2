package dto

// OfficeCountResponse is one appointments-by-office chart bucket.
type OfficeCountResponse struct {
	OfficeName string `json:"officeName"`
	Count      int64  `json:"count"`
}

// UsernameCountResponse is one orders-by-username chart bucket.
type UsernameCountResponse struct {
	Username string `json:"username"`
	Count    int64  `json:"count"`
}

package admin

// OverviewResponse keeps the inherited key names; the people count has always
// been published as "users".
type OverviewResponse struct {
	Users          int64 `json:"users"`
	Companies      int64 `json:"companies"`
	Advertisements int64 `json:"advertisements"`
	Applications   int64 `json:"applications"`
}

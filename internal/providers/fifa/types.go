package fifa

import (
	"bytes"
	"strconv"
)

const providerName = "fifa"

type matchResponse struct {
	HomeTeam       teamResponse    `json:"home_team"`
	AwayTeam       teamResponse    `json:"away_team"`
	HomeTeamEvents []eventResponse `json:"home_team_events"`
	AwayTeamEvents []eventResponse `json:"away_team_events"`
	Status         string          `json:"status"`
	Time           string          `json:"time"`
	Winner         string          `json:"winner"`
	Location       string          `json:"location"`
	Venue          string          `json:"venue"`
	Datetime       string          `json:"datetime"`
}

type teamResponse struct {
	Country string  `json:"country"`
	Code    string  `json:"code"`
	Goals   flexInt `json:"goals"`
}

type eventResponse struct {
	ID          int    `json:"id"`
	TypeOfEvent string `json:"type_of_event"`
	Player      string `json:"player"`
	Time        string `json:"time"`
}

// flexInt tolerates the feed's habit of reporting goal counts as null,
// strings or garbage mid-match; anything non-numeric decodes as zero.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexInt(n)
	return nil
}

package espn

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

const providerName = "espn"

type scoreboardResponse struct {
	Events []eventResponse `json:"events"`
}

type eventResponse struct {
	ID           string                `json:"id"`
	Date         string                `json:"date"`
	Name         string                `json:"name"`
	ShortName    string                `json:"shortName"`
	Status       statusResponse        `json:"status"`
	Competitions []competitionResponse `json:"competitions"`
}

type statusResponse struct {
	Clock        float64            `json:"clock"`
	DisplayClock string             `json:"displayClock"`
	Period       int                `json:"period"`
	Type         statusTypeResponse `json:"type"`
}

type statusTypeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	State       string `json:"state"`
	Completed   bool   `json:"completed"`
	Description string `json:"description"`
	Detail      string `json:"detail"`
	ShortDetail string `json:"shortDetail"`
	// Some feeds carry an MLB-style detailedState alongside the usual trio.
	DetailedState string `json:"detailedState"`
}

type competitionResponse struct {
	ID            string               `json:"id"`
	Date          string               `json:"date"`
	Competitors   []competitorResponse `json:"competitors"`
	Situation     *situationResponse   `json:"situation"`
	Broadcasts    []broadcastResponse  `json:"broadcasts"`
	GeoBroadcasts []geoBroadcast       `json:"geoBroadcasts"`
	LastPlay      *lastPlayResponse    `json:"lastPlay"`
}

type competitorResponse struct {
	ID       string           `json:"id"`
	HomeAway string           `json:"homeAway"`
	Score    string           `json:"score"`
	Team     teamResponse     `json:"team"`
	Records  []recordResponse `json:"records"`
}

type teamResponse struct {
	ID               string `json:"id"`
	Location         string `json:"location"`
	Name             string `json:"name"`
	Abbreviation     string `json:"abbreviation"`
	DisplayName      string `json:"displayName"`
	ShortDisplayName string `json:"shortDisplayName"`
}

type recordResponse struct {
	Type    string `json:"type"`
	Summary string `json:"summary"`
}

type broadcastResponse struct {
	Names []string `json:"names"`
	Media struct {
		ShortName string `json:"shortName"`
	} `json:"media"`
}

type geoBroadcast struct {
	Media struct {
		ShortName string `json:"shortName"`
	} `json:"media"`
}

type lastPlayResponse struct {
	Team struct {
		ID string `json:"id"`
	} `json:"team"`
	PossessionTeam string `json:"possessionTeam"`
}

// situationResponse is the live play-state sub-object present only for
// some in-progress events. Field types vary between sports and feed
// versions, so several fields decode leniently and the raw key/value
// map is retained for last-resort scanning.
type situationResponse struct {
	Balls   *int `json:"balls"`
	Strikes *int `json:"strikes"`
	Outs    *int `json:"outs"`

	OnFirst  *bool `json:"onFirst"`
	OnSecond *bool `json:"onSecond"`
	OnThird  *bool `json:"onThird"`

	TopOfInning *bool      `json:"topOfInning"`
	Inning      *int       `json:"inning"`
	InningHalf  flexString `json:"inningHalf"`
	InningState string     `json:"inningState"`

	Possession       possessionRef     `json:"possession"`
	BallOn           flexString        `json:"ballOn"`
	DownDistanceText string            `json:"downDistanceText"`
	LastPlay         *lastPlayResponse `json:"lastPlay"`

	raw map[string]json.RawMessage
}

func (s *situationResponse) UnmarshalJSON(data []byte) error {
	type alias situationResponse
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = situationResponse(a)
	// Keep every key for the generic half-inning scan fallback.
	_ = json.Unmarshal(data, &s.raw)
	return nil
}

// rawValues returns every situation value rendered as a lowercase
// string, for keyword scanning when no typed field resolved.
func (s *situationResponse) rawValues() []string {
	if s == nil || len(s.raw) == 0 {
		return nil
	}
	values := make([]string, 0, len(s.raw))
	for _, msg := range s.raw {
		trimmed := bytes.Trim(bytes.TrimSpace(msg), `"`)
		if len(trimmed) == 0 || bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("[")) {
			continue
		}
		values = append(values, strings.ToLower(string(trimmed)))
	}
	return values
}

// flexString tolerates JSON strings, numbers, and booleans, rendering
// each as its string form.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(string(data))
	return nil
}

func (f flexString) String() string { return string(f) }

// Int parses the value as an integer when possible.
func (f flexString) Int() (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(string(f)))
	if err != nil {
		return 0, false
	}
	return n, true
}

// possessionRef tolerates the three observed encodings of possession:
// a bare ID string, a numeric ID, or an object carrying team/id.
type possessionRef struct {
	ID string
}

func (p *possessionRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		p.ID = s
	case '{':
		var obj struct {
			ID   string `json:"id"`
			Team struct {
				ID string `json:"id"`
			} `json:"team"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if obj.Team.ID != "" {
			p.ID = obj.Team.ID
		} else {
			p.ID = obj.ID
		}
	default:
		p.ID = string(data)
	}
	return nil
}

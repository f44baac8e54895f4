package dataset

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// MasterDocument is the player registry; it defines the player universe.
type MasterDocument struct {
	Players map[string]MasterEntry `json:"players"`
}

type MasterEntry struct {
	Name       string   `json:"name"`
	Team       string   `json:"team"`
	Positions  []string `json:"positions"`
	ADP        *float64 `json:"adp"`
	Bucket     *Label   `json:"bucket"`
	BucketRank *float64 `json:"bucket_rank"`
	Rookie     bool     `json:"rookie"`
	Flags      []string `json:"flags"`
}

// HistoricalDocument holds per-season stats. Its keys are arbitrary; entries
// are matched to the registry by PlayerID.
type HistoricalDocument struct {
	Players map[string]HistoricalEntry `json:"players"`
}

type HistoricalEntry struct {
	PlayerID   string                 `json:"player_id"`
	LatestTeam string                 `json:"latest_team"`
	Positions  []string               `json:"positions"`
	Seasons    map[string]SeasonEntry `json:"seasons"`
}

type SeasonEntry struct {
	Meta     SeasonMetaEntry `json:"meta"`
	Averages map[string]any  `json:"averages"`
	Totals   map[string]any  `json:"totals"`
	ZScores  map[string]any  `json:"zscores"`
	Ranks    RanksEntry      `json:"ranks"`
}

type SeasonMetaEntry struct {
	GamesPlayed *float64 `json:"games_played"`
	Age         *float64 `json:"age"`
}

type RanksEntry struct {
	PerGameRank *float64 `json:"per_game_rank"`
	TotalRank   *float64 `json:"total_rank"`
}

// ADPDocument maps player id to draft-position metadata.
type ADPDocument map[string]ADPEntry

type ADPEntry struct {
	ADPDate *string `json:"adp_date"`
}

// BucketDocument is decoded only to prove it is well formed; the registry
// already embeds each player's bucket.
type BucketDocument = any

// Documents is the set of parsed sources the join consumes.
type Documents struct {
	Master     MasterDocument
	Historical HistoricalDocument
	ADP        ADPDocument
	Buckets    BucketDocument
}

// Label accepts a JSON string or number and keeps its text form.
type Label string

func (l *Label) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*l = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := jsoniter.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = Label(strings.TrimSpace(s))
		return nil
	}
	*l = Label(raw)
	return nil
}

package journeyplanner

import "encoding/json"

// locationResponse mirrors the /location lookup payload.
type locationResponse struct {
	LocationList struct {
		StopLocation []StopLocation `json:"StopLocation"`
	} `json:"LocationList"`
}

// StopLocation is a single stop lookup result.
type StopLocation struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// tripResponse mirrors the /trip payload. TripList is a pointer so that a
// response missing the key entirely can be told apart from an empty list.
type tripResponse struct {
	TripList *struct {
		Trip []Trip `json:"Trip"`
	} `json:"TripList"`
}

// Trip is one journey option between origin and destination.
type Trip struct {
	Legs LegList `json:"Leg"`
}

// LegList normalizes the provider's ambiguous "Leg" field: depending on the
// number of legs it is serialized either as a single object or as an array.
type LegList []Leg

func (l *LegList) UnmarshalJSON(data []byte) error {
	var many []Leg
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many
		return nil
	}
	var one Leg
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*l = LegList{one}
	return nil
}

// Leg is one segment of a trip. MessageList is absent on undisrupted legs.
type Leg struct {
	Name        string       `json:"name"`
	MessageList *MessageList `json:"MessageList"`
}

// MessageList carries the disruption messages attached to a leg.
type MessageList struct {
	Messages []Message `json:"Message"`
}

// Message is a single disruption message.
type Message struct {
	Text TextWrapper `json:"Text"`
}

// TextWrapper unwraps the provider's {"$": "..."} text convention.
type TextWrapper struct {
	Value string `json:"$"`
}

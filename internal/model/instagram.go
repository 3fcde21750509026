package model

import (
	"time"
)

// InstagramWebhookPayload is the body of an Instagram webhook notification
type InstagramWebhookPayload struct {
	Object string `json:"object"`
	Entry  []struct {
		ID      string `json:"id"`
		Changes []struct {
			Field string `json:"field"`
			Value struct {
				ID string `json:"id"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

// MediaID returns entry[0].changes[0].value.id or an empty string
func (p *InstagramWebhookPayload) MediaID() string {
	if len(p.Entry) == 0 || len(p.Entry[0].Changes) == 0 {
		return ""
	}
	return p.Entry[0].Changes[0].Value.ID
}

// ReelImportMessage represents the message sent to RocketMQ for each new reel
type ReelImportMessage struct {
	MediaID    string    `json:"media_id"`
	ReceivedAt time.Time `json:"received_at"`
}

// GraphMedia is the Graph API view of an Instagram media object
type GraphMedia struct {
	ID           string `json:"id"`
	Permalink    string `json:"permalink"`
	ThumbnailURL string `json:"thumbnail_url"`
	MediaURL     string `json:"media_url"`
	Caption      string `json:"caption"`
	MediaType    string `json:"media_type"`
}

// StrategyStat represents per-strategy outcome counters
type StrategyStat struct {
	Strategy string `json:"strategy"`
	Success  int64  `json:"success"`
	Failure  int64  `json:"failure"`
}

// BackfillReport summarises a maintenance run
type BackfillReport struct {
	Scanned int `json:"scanned"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

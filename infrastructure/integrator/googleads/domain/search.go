package googleadsdomain

// SearchRequest é o corpo de googleAds:search
type SearchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
}

// Tipos de campo de asset usados em Performance Max
const (
	FieldTypeHeadline     = "HEADLINE"
	FieldTypeLongHeadline = "LONG_HEADLINE"
	FieldTypeDescription  = "DESCRIPTION"
)

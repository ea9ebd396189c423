package domain

// ABNDetails mirrors the Australian Business Register AbnDetails payload.
// Field names follow the upstream JSON exactly.
type ABNDetails struct {
	Abn                    string   `json:"Abn"`
	AbnStatus              string   `json:"AbnStatus"`
	AbnStatusEffectiveFrom string   `json:"AbnStatusEffectiveFrom"`
	Acn                    string   `json:"Acn"`
	AddressDate            string   `json:"AddressDate"`
	AddressPostcode        string   `json:"AddressPostcode"`
	AddressState           string   `json:"AddressState"`
	BusinessName           []string `json:"BusinessName"`
	EntityName             string   `json:"EntityName"`
	EntityTypeCode         string   `json:"EntityTypeCode"`
	EntityTypeName         string   `json:"EntityTypeName"`
	Gst                    string   `json:"Gst"`
	Message                string   `json:"Message"`
}

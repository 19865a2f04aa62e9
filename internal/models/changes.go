package models

// ChangeResult classifies a freshly extracted offer against its most
// recent historical record.
type ChangeResult struct {
	Remark         string
	IsNew          bool
	PriceChanged   bool
	DetailsChanged bool
}

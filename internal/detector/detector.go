package detector

import (
	"fmt"
	"strings"

	"github.com/abdullahzahoor404/telco-scanner/internal/models"
)

// Remark labels attached to each scanned offer.
const (
	RemarkNew  = "New Offer"
	RemarkSame = "Same"
)

// Compare classifies a freshly extracted offer against the most recent
// historical record for its (operator, name) key. An offer counts as
// unchanged only when both trimmed price and trimmed details are
// equal. The key match is exact: a renamed offer is indistinguishable
// from a new one.
func Compare(offer models.Offer, lookup models.Lookup) models.ChangeResult {
	prev, found := lookup(offer.Operator, offer.Name)
	if !found {
		return models.ChangeResult{Remark: RemarkNew, IsNew: true}
	}

	oldPrice := strings.TrimSpace(prev.Price)
	newPrice := strings.TrimSpace(offer.Price)

	result := models.ChangeResult{
		PriceChanged:   oldPrice != newPrice,
		DetailsChanged: strings.TrimSpace(prev.Details) != strings.TrimSpace(offer.Details),
	}

	if !result.PriceChanged && !result.DetailsChanged {
		result.Remark = RemarkSame
		return result
	}

	var fragments []string
	if result.PriceChanged {
		fragments = append(fragments, fmt.Sprintf("Price: %s->%s", oldPrice, newPrice))
	}
	if result.DetailsChanged {
		fragments = append(fragments, "Details Updated")
	}
	result.Remark = "Changed: " + strings.Join(fragments, ", ")

	return result
}

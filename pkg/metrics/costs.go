package metrics

// ResolveCosts fills in whichever of price-per-litre / total cost is missing.
// A price derived in step one feeds the total in step two. Both absent stays
// both absent. A zero-litre fill with only a total keeps the price absent:
// there is no meaningful unit price to derive.
func ResolveCosts(litres float64, pricePerLitre, totalCost *float64) (*float64, *float64) {
	if pricePerLitre == nil && totalCost != nil && litres > 0 {
		p := *totalCost / litres
		pricePerLitre = &p
	}
	if totalCost == nil && pricePerLitre != nil {
		t := *pricePerLitre * litres
		totalCost = &t
	}
	return pricePerLitre, totalCost
}

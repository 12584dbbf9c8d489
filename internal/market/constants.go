package market

const (
	marketPurchaseDescription = "Bought listing %s"
	marketSaleDescription     = "Sold listing %s"

	defaultListLimit = 50
	maxListLimit     = 100
)

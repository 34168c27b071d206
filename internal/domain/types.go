package domain

type TransactionCategory string

const (
	CategoryReward           TransactionCategory = "reward"
	CategoryBonus            TransactionCategory = "bonus"
	CategoryTransferIn       TransactionCategory = "transfer-in"
	CategoryTransferOut      TransactionCategory = "transfer-out"
	CategoryShopPurchase     TransactionCategory = "shop-purchase"
	CategoryP2PPurchase      TransactionCategory = "p2p-purchase"
	CategoryP2PSale          TransactionCategory = "p2p-sale"
	CategoryExternalPurchase TransactionCategory = "external-purchase"
	CategoryAdminGrant       TransactionCategory = "admin-grant"
	CategoryStartingGrant    TransactionCategory = "starting-grant"
	CategoryAdminReset       TransactionCategory = "admin-reset"
)

// ListingStatus состояние лота. Переход возможен только из ListingStatusActive, остальные состояния конечные.
type ListingStatus string

const (
	ListingStatusActive  ListingStatus = "active"
	ListingStatusSold    ListingStatus = "sold"
	ListingStatusRemoved ListingStatus = "removed"
)

type ClaimKind string

const (
	ClaimDaily ClaimKind = "daily"
	ClaimBonus ClaimKind = "bonus"
)

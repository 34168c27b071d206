package repoargs

type RepositoryName string

const (
	AccountRepoName     RepositoryName = "account"
	TransactionRepoName RepositoryName = "transaction"
	OwnershipRepoName   RepositoryName = "ownership"
	CatalogRepoName     RepositoryName = "catalog"
	ShopRepoName        RepositoryName = "shop"
	ListingRepoName     RepositoryName = "listing"
	PaymentRepoName     RepositoryName = "payment"
)

// BatchExecQueryRow колбэк результата i-го запроса батча.
type BatchExecQueryRow func(i int, err error)

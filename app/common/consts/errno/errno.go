package errno

const (
	StatusOK = 10000
)

const (
	SessionEmpty = 40000 + iota
	SessionInvalid
)

const (
	InternalError = 50000 + iota
	InvalidParam
	ProductNotFound
	CartStoreUnavailable
	CatalogUnavailable
	PromoCodeInvalid
	AssistantUnavailable
)

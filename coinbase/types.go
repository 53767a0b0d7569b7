package coinbase

// Wire-level enumerations. The string values are exactly what the exchange
// serializes, so the types double as request parameters and response fields.

type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

type OrderType string

const (
	OrderTypeLimit  OrderType = "limit"
	OrderTypeMarket OrderType = "market"
	OrderTypeStop   OrderType = "stop"
)

// StopType selects whether a stop order triggers on the way down (loss) or on
// the way up (entry).
type StopType string

const (
	StopLoss  StopType = "loss"
	StopEntry StopType = "entry"
)

type TimeInForce string

const (
	GoodTillCanceled  TimeInForce = "GTC"
	GoodTillTime      TimeInForce = "GTT"
	ImmediateOrCancel TimeInForce = "IOC"
	FillOrKill        TimeInForce = "FOK"
)

// SelfTradePrevention decides what happens when two of your own orders would
// cross.
type SelfTradePrevention string

const (
	DecrementAndCancel SelfTradePrevention = "dc"
	CancelOldest       SelfTradePrevention = "co"
	CancelNewest       SelfTradePrevention = "cn"
	CancelBoth         SelfTradePrevention = "cb"
)

// CancelAfter is the GTT order lifetime.
type CancelAfter string

const (
	CancelAfterMin  CancelAfter = "min"
	CancelAfterHour CancelAfter = "hour"
	CancelAfterDay  CancelAfter = "day"
)

// Granularity is a candle bucket width in seconds. The exchange accepts only
// these six values.
type Granularity int

const (
	Granularity1m  Granularity = 60
	Granularity5m  Granularity = 300
	Granularity15m Granularity = 900
	Granularity1h  Granularity = 3600
	Granularity6h  Granularity = 21600
	Granularity1d  Granularity = 86400
)

type SortedBy string

const (
	SortedByCreatedAt SortedBy = "created_at"
	SortedByPrice     SortedBy = "price"
	SortedBySize      SortedBy = "size"
	SortedByOrderID   SortedBy = "order_id"
	SortedBySide      SortedBy = "side"
	SortedByType      SortedBy = "type"
)

type Sorting string

const (
	SortAscending  Sorting = "asc"
	SortDescending Sorting = "desc"
)

type ReportType string

const (
	ReportFills              ReportType = "fills"
	ReportAccount            ReportType = "account"
	ReportOTCFills           ReportType = "otc_fills"
	ReportTransactionHistory ReportType = "type_1099k_transaction_history"
	ReportTaxInvoice         ReportType = "tax_invoice"
)

type ReportFormat string

const (
	ReportFormatPDF ReportFormat = "pdf"
	ReportFormatCSV ReportFormat = "csv"
)

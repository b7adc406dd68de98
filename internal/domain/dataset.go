package domain

import "github.com/ecomet/investor-dashboard/pkg/money"

// Dataset is the pre-aggregated reporting snapshot. Keys match the exchange
// format consumed by downstream renderers and must not be renamed.
type Dataset struct {
	Meta           Meta           `json:"meta" yaml:"meta"`
	Purchases      Purchases      `json:"purchases" yaml:"purchases"`
	Orders         Orders         `json:"orders" yaml:"orders"`
	Shipments      Shipments      `json:"shipments" yaml:"shipments"`
	Payments       Payments       `json:"payments" yaml:"payments"`
	Storage        Storage        `json:"storage" yaml:"storage"`
	Returns        Returns        `json:"returns" yaml:"returns"`
	Reimbursements Reimbursements `json:"reimbursements" yaml:"reimbursements"`
	Profitability  Profitability  `json:"profitability" yaml:"profitability"`
}

// Meta describes the reporting window.
type Meta struct {
	Period string `json:"period" yaml:"period"`
}

// Purchases summarizes inventory invoices.
type Purchases struct {
	Units        money.Amount `json:"units" yaml:"units"`
	Merch        money.Amount `json:"merch" yaml:"merch"`
	Shipping     money.Amount `json:"shipping" yaml:"shipping"`
	InvoiceTotal money.Amount `json:"invoiceTotal" yaml:"invoiceTotal"`
	AvgCost      money.Amount `json:"avgCost" yaml:"avgCost"`
}

// Orders summarizes ordered units and sales quality.
type Orders struct {
	Units      money.Amount `json:"units" yaml:"units"`
	GrossSales money.Amount `json:"grossSales" yaml:"grossSales"`
	Conversion money.Amount `json:"conversion" yaml:"conversion"` // percent
	BuyBox     money.Amount `json:"buyBox" yaml:"buyBox"`         // percent
}

// Shipments summarizes shipped units with a monthly breakdown.
type Shipments struct {
	TotalUnits   money.Amount      `json:"totalUnits" yaml:"totalUnits"`
	TotalGross   money.Amount      `json:"totalGross" yaml:"totalGross"`
	UniqueOrders money.Amount      `json:"uniqueOrders" yaml:"uniqueOrders"`
	Monthly      []MonthlyShipment `json:"monthly" yaml:"monthly"`
}

// MonthlyShipment is one month of shipments; Month is YYYY-MM.
type MonthlyShipment struct {
	Month  string       `json:"month" yaml:"month"`
	Units  money.Amount `json:"units" yaml:"units"`
	Sales  money.Amount `json:"sales" yaml:"sales"`
	Orders money.Amount `json:"orders" yaml:"orders"`
}

// Payments summarizes marketplace settlements.
type Payments struct {
	ProductSales money.Amount `json:"productSales" yaml:"productSales"`
	SellingFees  money.Amount `json:"sellingFees" yaml:"sellingFees"`
	FBAFees      money.Amount `json:"fbaFees" yaml:"fbaFees"`
	OtherFees    money.Amount `json:"otherFees" yaml:"otherFees"`
	TotalFees    money.Amount `json:"totalFees" yaml:"totalFees"`
	NetPayout    money.Amount `json:"netPayout" yaml:"netPayout"`
}

// Storage holds warehouse storage fees.
type Storage struct {
	ByMonth []MonthlyAmount `json:"byMonth" yaml:"byMonth"`
	Total   money.Amount    `json:"total" yaml:"total"`
}

// MonthlyAmount is a currency amount for a YYYY-MM month.
type MonthlyAmount struct {
	Month  string       `json:"month" yaml:"month"`
	Amount money.Amount `json:"amount" yaml:"amount"`
}

// Returns summarizes customer returns.
type Returns struct {
	TotalUnits  money.Amount    `json:"totalUnits" yaml:"totalUnits"`
	Reasons     []NamedQuantity `json:"reasons" yaml:"reasons"`
	Disposition []NamedQuantity `json:"disposition" yaml:"disposition"`
}

// NamedQuantity is a labelled unit count.
type NamedQuantity struct {
	Name string       `json:"name" yaml:"name"`
	Qty  money.Amount `json:"qty" yaml:"qty"`
}

// Reimbursements summarizes marketplace reimbursements.
type Reimbursements struct {
	Amount        money.Amount  `json:"amount" yaml:"amount"`
	Units         money.Amount  `json:"units" yaml:"units"`
	ReasonsAmount []NamedAmount `json:"reasonsAmount" yaml:"reasonsAmount"`
}

// NamedAmount is a labelled currency amount.
type NamedAmount struct {
	Name   string       `json:"name" yaml:"name"`
	Amount money.Amount `json:"amount" yaml:"amount"`
}

// Profitability holds the six summary figures of the snapshot.
type Profitability struct {
	OrderedGross   money.Amount `json:"orderedGross" yaml:"orderedGross"`
	NetPayout      money.Amount `json:"netPayout" yaml:"netPayout"`
	Purchases      money.Amount `json:"purchases" yaml:"purchases"`
	Reimbursements money.Amount `json:"reimbursements" yaml:"reimbursements"`
	StorageFees    money.Amount `json:"storageFees" yaml:"storageFees"`
	NetPosition    money.Amount `json:"netPosition" yaml:"netPosition"`
}

package dashboard

// Layout is one top-level page composition: a container id and ordered panel rows.
type Layout struct {
	ID   string
	Rows [][]PanelKey
}

type layoutKey struct {
	level  DataLevel
	report ReportType
}

// anyLevel marks a report-wide entry that applies at every level without a dedicated layout.
const anyLevel DataLevel = "*"

var layouts = map[layoutKey]Layout{
	{LevelCompany, ReportSales}: {ID: "company-sales", Rows: [][]PanelKey{
		{PanelCompanySales, PanelRegionSales},
		{PanelSalesTrend},
		{PanelSalesCoverage, PanelChannelSales},
		{PanelTopItems, PanelTopCustomers},
		{PanelSummaryTable},
	}},
	{LevelRegion, ReportSales}: {ID: "region-sales", Rows: [][]PanelKey{
		{PanelRegionSales, PanelAreaSales},
		{PanelSalesTrend},
		{PanelSalesCoverage},
		{PanelTopItems, PanelTopCustomers},
		{PanelSummaryTable},
	}},
	{LevelArea, ReportSales}: {ID: "area-sales", Rows: [][]PanelKey{
		{PanelAreaSales, PanelWarehouseSales},
		{PanelSalesTrend},
		{PanelSalesCoverage},
		{PanelTopItems, PanelBottomItems},
		{PanelSummaryTable},
	}},
	{LevelWarehouse, ReportSales}: {ID: "warehouse-sales", Rows: [][]PanelKey{
		{PanelWarehouseSales},
		{PanelSalesTrend},
		{PanelTopItems, PanelBottomItems},
		{PanelTopCustomers},
		{PanelSummaryTable},
	}},
	{LevelCompany, ReportCustomer}: {ID: "company-customer", Rows: [][]PanelKey{
		{PanelCustomerCompany, PanelCustomerRegion},
		{PanelCustomerTrend},
		{PanelCustomerCoverage, PanelCustomerCategory},
		{PanelTopCustomerOrders},
	}},
	{LevelCompany, ReportItem}: {ID: "company-item", Rows: [][]PanelKey{
		{PanelItemCompany, PanelItemRegion},
		{PanelItemTrend},
		{PanelItemCategory, PanelItemBrand},
		{PanelTopItemsQuantity},
	}},
	{anyLevel, ReportCustomer}: {ID: "customer", Rows: [][]PanelKey{
		{PanelCustomerArea, PanelCustomerWarehouse},
		{PanelCustomerTrend},
		{PanelCustomerCoverage},
		{PanelTopCustomerOrders},
	}},
	{anyLevel, ReportItem}: {ID: "item", Rows: [][]PanelKey{
		{PanelItemRegion, PanelItemBrand},
		{PanelItemTrend},
		{PanelItemCategory},
		{PanelTopItemsQuantity},
	}},
	{anyLevel, ReportPOOrder}: {ID: "po-order", Rows: [][]PanelKey{
		{PanelPOStatus, PanelPOWarehouse},
		{PanelPOTrend},
		{PanelPOSupplier},
	}},
	{anyLevel, ReportComparison}: {ID: "comparison", Rows: [][]PanelKey{
		{PanelComparisonCurrent, PanelComparisonPrior},
		{PanelComparisonTrend},
		{PanelComparisonGrowth},
	}},
	{anyLevel, ReportLoadUnload}: {ID: "load-unload", Rows: [][]PanelKey{
		{PanelLoadSummary, PanelUnloadSummary},
		{PanelLoadUnloadTrend},
		{PanelLoadUnloadVehicle},
	}},
	{anyLevel, ReportVisit}: {ID: "visit", Rows: [][]PanelKey{
		{PanelVisitStatus, PanelVisitCoverage},
		{PanelVisitTrend},
		{PanelVisitSalesman},
	}},
}

var genericOverview = map[DataLevel]PanelKey{
	LevelCompany:   PanelCompanySales,
	LevelRegion:    PanelRegionSales,
	LevelArea:      PanelAreaSales,
	LevelWarehouse: PanelWarehouseSales,
}

// SelectLayout resolves exactly one layout: the exact (level, report) entry, then the
// report-wide entry, then the generic layout for the level.
func SelectLayout(level DataLevel, report ReportType) Layout {
	if l, ok := layouts[layoutKey{level, report}]; ok {
		return l
	}
	if l, ok := layouts[layoutKey{anyLevel, report}]; ok {
		return l
	}
	overview, ok := genericOverview[level]
	if !ok {
		overview = PanelCompanySales
	}
	return Layout{ID: "generic", Rows: [][]PanelKey{
		{overview},
		{PanelSalesTrend},
		{PanelTopItems},
	}}
}

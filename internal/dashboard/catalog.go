package dashboard

import "dashboard-service/internal/shaper"

// PanelKey names a chart panel. Every chartable panel doubles as a maximized-view tag.
type PanelKey string

type trendSpec struct {
	periodKeys []string
	monthly    bool
}

type Panel struct {
	Key       PanelKey
	Title     string
	Kind      Kind
	Sources   []string
	NameKeys  []string
	ValueKeys []string
	Palette   shaper.Palette
	Limit     int
	trend     *trendSpec
}

func (p Panel) IsTrend() bool {
	return p.trend != nil
}

// FullSources lists the unsliced "_full" variants ahead of the regular sources.
func (p Panel) FullSources() []string {
	out := make([]string, 0, len(p.Sources)*2)
	for _, src := range p.Sources {
		out = append(out, src+"_full")
	}
	return append(out, p.Sources...)
}

var (
	trendNames    = []string{"region_name", "area_name", "warehouse_name", "company_name", "category"}
	monthlyTrend  = &trendSpec{periodKeys: []string{"period", "month"}, monthly: true}
	dailyTrend    = &trendSpec{periodKeys: []string{"date", "period"}}
	salesValue    = []string{"total_sales", "sales", "amount"}
	customerValue = []string{"customer_count", "customers", "count"}
	quantityValue = []string{"quantity", "qty"}
)

const (
	PanelCompanySales      PanelKey = "companySales"
	PanelRegionSales       PanelKey = "regionSales"
	PanelAreaSales         PanelKey = "areaSales"
	PanelWarehouseSales    PanelKey = "warehouseSales"
	PanelSalesTrend        PanelKey = "salesTrend"
	PanelSalesCoverage     PanelKey = "salesCoverage"
	PanelChannelSales      PanelKey = "channelSales"
	PanelTopItems          PanelKey = "topItems"
	PanelBottomItems       PanelKey = "bottomItems"
	PanelTopCustomers      PanelKey = "topCustomers"
	PanelCustomerCompany   PanelKey = "customerByCompany"
	PanelCustomerRegion    PanelKey = "customerByRegion"
	PanelCustomerArea      PanelKey = "customerByArea"
	PanelCustomerWarehouse PanelKey = "customerByWarehouse"
	PanelCustomerTrend     PanelKey = "customerTrend"
	PanelCustomerCoverage  PanelKey = "customerCoverage"
	PanelCustomerCategory  PanelKey = "customerCategory"
	PanelTopCustomerOrders PanelKey = "topCustomersByOrders"
	PanelItemCompany       PanelKey = "itemByCompany"
	PanelItemRegion        PanelKey = "itemByRegion"
	PanelItemTrend         PanelKey = "itemTrend"
	PanelItemCategory      PanelKey = "itemCategory"
	PanelItemBrand         PanelKey = "itemBrand"
	PanelTopItemsQuantity  PanelKey = "topItemsByQuantity"
	PanelPOStatus          PanelKey = "poStatus"
	PanelPOSupplier        PanelKey = "poBySupplier"
	PanelPOTrend           PanelKey = "poTrend"
	PanelPOWarehouse       PanelKey = "poByWarehouse"
	PanelComparisonCurrent PanelKey = "comparisonCurrent"
	PanelComparisonPrior   PanelKey = "comparisonPrevious"
	PanelComparisonGrowth  PanelKey = "comparisonGrowth"
	PanelComparisonTrend   PanelKey = "comparisonTrend"
	PanelLoadSummary       PanelKey = "loadSummary"
	PanelUnloadSummary     PanelKey = "unloadSummary"
	PanelLoadUnloadTrend   PanelKey = "loadUnloadTrend"
	PanelLoadUnloadVehicle PanelKey = "loadUnloadByVehicle"
	PanelVisitSalesman     PanelKey = "visitBySalesman"
	PanelVisitStatus       PanelKey = "visitStatus"
	PanelVisitTrend        PanelKey = "visitTrend"
	PanelVisitCoverage     PanelKey = "visitCoverage"

	PanelSummaryTable PanelKey = "summaryTable"
)

var panels = map[PanelKey]Panel{
	PanelCompanySales: {Key: PanelCompanySales, Title: "Company Wise Sales", Kind: KindPie,
		Sources: []string{"charts.company_sales"}, NameKeys: []string{"company_name"}, ValueKeys: salesValue, Palette: shaper.CompanyColors},
	PanelRegionSales: {Key: PanelRegionSales, Title: "Region Wise Sales", Kind: KindPie,
		Sources: []string{"charts.region_sales"}, NameKeys: []string{"region_name"}, ValueKeys: salesValue, Palette: shaper.RegionColors},
	PanelAreaSales: {Key: PanelAreaSales, Title: "Area Wise Sales", Kind: KindColumn3D,
		Sources: []string{"charts.area_sales"}, NameKeys: []string{"area_name"}, ValueKeys: salesValue, Palette: shaper.AreaColors},
	PanelWarehouseSales: {Key: PanelWarehouseSales, Title: "Warehouse Wise Sales", Kind: KindColumn3D,
		Sources: []string{"charts.warehouse_sales"}, NameKeys: []string{"warehouse_name", "warehouse_label"}, ValueKeys: salesValue, Palette: shaper.WarehouseColors},
	PanelSalesTrend: {Key: PanelSalesTrend, Title: "Sales Trend", Kind: KindArea,
		Sources: []string{"charts.sales_trend", "trend", "trend-line"}, NameKeys: trendNames, ValueKeys: salesValue, Palette: shaper.RegionColors, trend: monthlyTrend},
	PanelSalesCoverage: {Key: PanelSalesCoverage, Title: "Sales Coverage", Kind: KindDonut,
		Sources: []string{"charts.sales_coverage"}, NameKeys: []string{"coverage_label"}, Palette: shaper.DefaultColors},
	PanelChannelSales: {Key: PanelChannelSales, Title: "Channel Wise Sales", Kind: KindDonut,
		Sources: []string{"charts.channel_sales"}, NameKeys: []string{"channel_name"}, ValueKeys: salesValue, Palette: shaper.DefaultColors},
	PanelTopItems: {Key: PanelTopItems, Title: "Top 10 Items", Kind: KindBar,
		Sources: []string{"charts.top_items"}, NameKeys: []string{"item_name", "item_code"}, ValueKeys: salesValue, Palette: shaper.ItemColors, Limit: 10},
	PanelBottomItems: {Key: PanelBottomItems, Title: "Bottom 10 Items", Kind: KindBar,
		Sources: []string{"charts.bottom_items"}, NameKeys: []string{"item_name", "item_code"}, ValueKeys: salesValue, Palette: shaper.ItemColors, Limit: 10},
	PanelTopCustomers: {Key: PanelTopCustomers, Title: "Top 10 Customers", Kind: KindBar,
		Sources: []string{"charts.top_customers"}, NameKeys: []string{"customer_name"}, ValueKeys: salesValue, Palette: shaper.CustomerColors, Limit: 10},

	PanelCustomerCompany: {Key: PanelCustomerCompany, Title: "Company Wise Customers", Kind: KindPie,
		Sources: []string{"charts.customer_company"}, NameKeys: []string{"company_name"}, ValueKeys: customerValue, Palette: shaper.CompanyColors},
	PanelCustomerRegion: {Key: PanelCustomerRegion, Title: "Region Wise Customers", Kind: KindPie,
		Sources: []string{"charts.customer_region"}, NameKeys: []string{"region_name"}, ValueKeys: customerValue, Palette: shaper.RegionColors},
	PanelCustomerArea: {Key: PanelCustomerArea, Title: "Area Wise Customers", Kind: KindColumn3D,
		Sources: []string{"charts.customer_area"}, NameKeys: []string{"area_name"}, ValueKeys: customerValue, Palette: shaper.AreaColors},
	PanelCustomerWarehouse: {Key: PanelCustomerWarehouse, Title: "Warehouse Wise Customers", Kind: KindColumn3D,
		Sources: []string{"charts.customer_warehouse"}, NameKeys: []string{"warehouse_name", "warehouse_label"}, ValueKeys: customerValue, Palette: shaper.WarehouseColors},
	PanelCustomerTrend: {Key: PanelCustomerTrend, Title: "Customer Trend", Kind: KindArea,
		Sources: []string{"charts.customer_trend", "trend", "trend-line"}, NameKeys: trendNames, ValueKeys: customerValue, Palette: shaper.CustomerColors, trend: monthlyTrend},
	PanelCustomerCoverage: {Key: PanelCustomerCoverage, Title: "Customer Coverage", Kind: KindDonut,
		Sources: []string{"charts.customer_coverage"}, NameKeys: []string{"coverage_label"}, Palette: shaper.DefaultColors},
	PanelCustomerCategory: {Key: PanelCustomerCategory, Title: "Customer Category", Kind: KindPie,
		Sources: []string{"charts.customer_category"}, NameKeys: []string{"category_name"}, ValueKeys: customerValue, Palette: shaper.CustomerColors},
	PanelTopCustomerOrders: {Key: PanelTopCustomerOrders, Title: "Top Customers By Orders", Kind: KindBar,
		Sources: []string{"charts.top_customers_orders"}, NameKeys: []string{"customer_name"}, ValueKeys: []string{"order_count", "orders"}, Palette: shaper.CustomerColors, Limit: 10},

	PanelItemCompany: {Key: PanelItemCompany, Title: "Company Wise Items", Kind: KindPie,
		Sources: []string{"charts.item_company"}, NameKeys: []string{"company_name"}, ValueKeys: quantityValue, Palette: shaper.CompanyColors},
	PanelItemRegion: {Key: PanelItemRegion, Title: "Region Wise Items", Kind: KindPie,
		Sources: []string{"charts.item_region"}, NameKeys: []string{"region_name"}, ValueKeys: quantityValue, Palette: shaper.RegionColors},
	PanelItemTrend: {Key: PanelItemTrend, Title: "Item Trend", Kind: KindArea,
		Sources: []string{"charts.item_trend", "trend", "trend-line"}, NameKeys: append([]string{"item_name"}, trendNames...), ValueKeys: quantityValue, Palette: shaper.ItemColors, trend: monthlyTrend},
	PanelItemCategory: {Key: PanelItemCategory, Title: "Item Category", Kind: KindDonut,
		Sources: []string{"charts.item_category"}, NameKeys: []string{"category_name"}, ValueKeys: quantityValue, Palette: shaper.ItemColors},
	PanelItemBrand: {Key: PanelItemBrand, Title: "Brand Wise Items", Kind: KindColumn3D,
		Sources: []string{"charts.item_brand"}, NameKeys: []string{"brand_name"}, ValueKeys: quantityValue, Palette: shaper.ItemColors},
	PanelTopItemsQuantity: {Key: PanelTopItemsQuantity, Title: "Top Items By Quantity", Kind: KindBar,
		Sources: []string{"charts.top_items_quantity"}, NameKeys: []string{"item_name", "item_code"}, ValueKeys: quantityValue, Palette: shaper.ItemColors, Limit: 10},

	PanelPOStatus: {Key: PanelPOStatus, Title: "PO Order Status", Kind: KindPie,
		Sources: []string{"charts.po_status"}, NameKeys: []string{"status"}, ValueKeys: []string{"count"}, Palette: shaper.DefaultColors},
	PanelPOSupplier: {Key: PanelPOSupplier, Title: "Supplier Wise PO Orders", Kind: KindBar,
		Sources: []string{"charts.po_supplier"}, NameKeys: []string{"supplier_name"}, ValueKeys: []string{"order_value", "amount"}, Palette: shaper.CompanyColors, Limit: 10},
	PanelPOTrend: {Key: PanelPOTrend, Title: "PO Order Trend", Kind: KindArea,
		Sources: []string{"charts.po_trend", "trend", "trend-line"}, NameKeys: trendNames, ValueKeys: []string{"order_value", "amount"}, Palette: shaper.CompanyColors, trend: monthlyTrend},
	PanelPOWarehouse: {Key: PanelPOWarehouse, Title: "Warehouse Wise PO Orders", Kind: KindColumn3D,
		Sources: []string{"charts.po_warehouse"}, NameKeys: []string{"warehouse_name", "warehouse_label"}, ValueKeys: []string{"order_value", "amount"}, Palette: shaper.WarehouseColors},

	PanelComparisonCurrent: {Key: PanelComparisonCurrent, Title: "Current Period", Kind: KindColumn3D,
		Sources: []string{"charts.comparison_current"}, NameKeys: trendNames, ValueKeys: salesValue, Palette: shaper.RegionColors},
	PanelComparisonPrior: {Key: PanelComparisonPrior, Title: "Previous Period", Kind: KindColumn3D,
		Sources: []string{"charts.comparison_previous"}, NameKeys: trendNames, ValueKeys: salesValue, Palette: shaper.AreaColors},
	PanelComparisonGrowth: {Key: PanelComparisonGrowth, Title: "Growth", Kind: KindBar,
		Sources: []string{"charts.comparison_growth"}, NameKeys: trendNames, ValueKeys: []string{"growth", "growth_pct"}, Palette: shaper.DefaultColors},
	PanelComparisonTrend: {Key: PanelComparisonTrend, Title: "Comparison Trend", Kind: KindArea,
		Sources: []string{"charts.comparison_trend", "trend", "trend-line"}, NameKeys: []string{"series", "year"}, ValueKeys: salesValue, Palette: shaper.DefaultColors, trend: monthlyTrend},

	PanelLoadSummary: {Key: PanelLoadSummary, Title: "Load Summary", Kind: KindPie,
		Sources: []string{"charts.load_summary"}, NameKeys: []string{"warehouse_name", "status"}, ValueKeys: quantityValue, Palette: shaper.WarehouseColors},
	PanelUnloadSummary: {Key: PanelUnloadSummary, Title: "Unload Summary", Kind: KindPie,
		Sources: []string{"charts.unload_summary"}, NameKeys: []string{"warehouse_name", "status"}, ValueKeys: quantityValue, Palette: shaper.WarehouseColors},
	PanelLoadUnloadTrend: {Key: PanelLoadUnloadTrend, Title: "Load / Unload Trend", Kind: KindArea,
		Sources: []string{"charts.loadunload_trend", "trend", "trend-line"}, NameKeys: []string{"movement", "type"}, ValueKeys: quantityValue, Palette: shaper.DefaultColors, trend: dailyTrend},
	PanelLoadUnloadVehicle: {Key: PanelLoadUnloadVehicle, Title: "Vehicle Wise Load / Unload", Kind: KindBar,
		Sources: []string{"charts.loadunload_vehicle"}, NameKeys: []string{"vehicle_no", "vehicle_name"}, ValueKeys: quantityValue, Palette: shaper.DefaultColors, Limit: 10},

	PanelVisitSalesman: {Key: PanelVisitSalesman, Title: "Salesman Wise Visits", Kind: KindBar,
		Sources: []string{"charts.visit_salesman"}, NameKeys: []string{"salesman_name"}, ValueKeys: []string{"visit_count", "visits"}, Palette: shaper.CustomerColors, Limit: 10},
	PanelVisitStatus: {Key: PanelVisitStatus, Title: "Visit Status", Kind: KindDonut,
		Sources: []string{"charts.visit_status"}, NameKeys: []string{"status"}, ValueKeys: []string{"visit_count", "visits"}, Palette: shaper.DefaultColors},
	PanelVisitTrend: {Key: PanelVisitTrend, Title: "Visit Trend", Kind: KindArea,
		Sources: []string{"charts.visit_trend", "trend", "trend-line"}, NameKeys: trendNames, ValueKeys: []string{"visit_count", "visits"}, Palette: shaper.CustomerColors, trend: dailyTrend},
	PanelVisitCoverage: {Key: PanelVisitCoverage, Title: "Visit Coverage", Kind: KindDonut,
		Sources: []string{"charts.visit_coverage"}, NameKeys: []string{"coverage_label"}, Palette: shaper.DefaultColors},

	PanelSummaryTable: {Key: PanelSummaryTable, Title: "Summary", Kind: KindTable,
		Sources: []string{"tables.summary", "tables.region_summary", "tables.area_summary", "tables.warehouse_summary"}},
}

func PanelFor(key PanelKey) (Panel, bool) {
	p, ok := panels[key]
	return p, ok
}

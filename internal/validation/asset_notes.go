package validation

import (
	"context"
	"strings"

	"github.com/epeers/company-accounts/internal/models"
)

// Fields of one fixed asset category
const (
	costAtPeriodStart = iota
	costAdditions
	costDisposals
	costRevaluations
	costTransfers
	costAtPeriodEnd
	writeDownAtPeriodStart
	writeDownChargeForYear
	writeDownOnDisposals
	writeDownOtherAdjustments
	writeDownAtPeriodEnd
	nbvCurrentPeriod
	nbvPreviousPeriod
	assetFieldCount
)

// assetFieldPaths are relative to the category. {section} stands for the
// write-down section name (depreciation or amortisation).
var assetFieldPaths = [assetFieldCount]string{
	"cost.at_period_start",
	"cost.additions",
	"cost.disposals",
	"cost.revaluations",
	"cost.transfers",
	"cost.at_period_end",
	"{section}.at_period_start",
	"{section}.charge_for_year",
	"{section}.on_disposals",
	"{section}.other_adjustments",
	"{section}.at_period_end",
	"net_book_value_at_end_of_current_period",
	"net_book_value_at_end_of_previous_period",
}

type assetCategory struct {
	path   string
	values [assetFieldCount]*int64
}

// newAssetCategory returns nil when the category carries no figures, so an
// empty object is treated the same as an absent one
func newAssetCategory(path string, cost *models.AssetCost, writeDown *models.AssetWriteDown, nbvCurrent, nbvPrevious *int64) *assetCategory {
	a := &assetCategory{path: path}
	if cost != nil {
		a.values[costAtPeriodStart] = cost.AtPeriodStart
		a.values[costAdditions] = cost.Additions
		a.values[costDisposals] = cost.Disposals
		a.values[costRevaluations] = cost.Revaluations
		a.values[costTransfers] = cost.Transfers
		a.values[costAtPeriodEnd] = cost.AtPeriodEnd
	}
	if writeDown != nil {
		a.values[writeDownAtPeriodStart] = writeDown.AtPeriodStart
		a.values[writeDownChargeForYear] = writeDown.ChargeForYear
		a.values[writeDownOnDisposals] = writeDown.OnDisposals
		a.values[writeDownOtherAdjustments] = writeDown.OtherAdjustments
		a.values[writeDownAtPeriodEnd] = writeDown.AtPeriodEnd
	}
	a.values[nbvCurrentPeriod] = nbvCurrent
	a.values[nbvPreviousPeriod] = nbvPrevious
	for _, v := range a.values {
		if v != nil {
			return a
		}
	}
	return nil
}

// assetNote describes a fixed asset note in its flattened form
type assetNote struct {
	key                   models.AccountingNoteType
	writeDown             string
	categories            []*assetCategory
	total                 *assetCategory
	additionalInformation string
	figure                func(*models.FixedAssets) *int64
}

func (n *assetNote) fieldPath(a *assetCategory, field int) string {
	return a.path + "." + strings.Replace(assetFieldPaths[field], "{section}", n.writeDown, 1)
}

// balanceSheetCheck pairs a total category field with the balance sheet
// period it must agree with
type balanceSheetCheck struct {
	period models.PeriodType
	field  int
}

func validateAssetNote(ctx context.Context, v *Validator, n *assetNote, tx *models.Transaction, companyAccountsID, requestID string) (*models.Errors, error) {
	multi, err := v.isMultipleYearFiler(ctx, tx, requestID)
	if err != nil {
		return nil, err
	}

	c := newCollector()
	if len(n.categories) == 0 && n.total == nil && n.additionalInformation == "" {
		c.add(ErrKeyEmptyResource, n.key.JSONPath())
		return c.errs, nil
	}

	all := n.categories
	if n.total != nil {
		all = append(all[:len(all):len(all)], n.total)
	}
	for _, a := range all {
		n.checkPeriods(c, a, multi)
		n.checkMovements(c, a, multi)
	}

	if n.total == nil {
		return c.errs, nil
	}
	n.checkCategoryTotals(c, multi)

	sheets := v.newSheetCache(companyAccountsID, requestID)
	periods := []balanceSheetCheck{{models.PeriodCurrent, nbvCurrentPeriod}}
	if multi {
		periods = append(periods, balanceSheetCheck{models.PeriodPrevious, nbvPreviousPeriod})
	}
	for _, p := range periods {
		location := n.fieldPath(n.total, p.field)
		if c.hasFailed(location) {
			continue
		}
		bs, err := sheets.get(ctx, p.period)
		if err != nil {
			return nil, err
		}
		if bs == nil {
			continue
		}
		var figure *int64
		if bs.FixedAssets != nil {
			figure = n.figure(bs.FixedAssets)
		}
		c.checkEqual(balanceSheetMismatchKey(p.period), location, n.total.values[p.field], figure)
	}

	return c.errs, nil
}

// checkPeriods flags opening balances a single year filer must not send and
// a multiple year filer must send
func (n *assetNote) checkPeriods(c *collector, a *assetCategory, multi bool) {
	if multi {
		if a.values[costAtPeriodStart] == nil {
			c.add(ErrKeyValueRequired, n.fieldPath(a, costAtPeriodStart))
		}
		return
	}
	for _, field := range []int{costAtPeriodStart, writeDownAtPeriodStart, nbvPreviousPeriod} {
		if a.values[field] != nil {
			c.add(ErrKeyUnexpectedData, n.fieldPath(a, field))
		}
	}
}

func (n *assetNote) checkMovements(c *collector, a *assetCategory, multi bool) {
	val := a.values
	c.checkTotal(n.fieldPath(a, costAtPeriodEnd), val[costAtPeriodEnd],
		plus(val[costAtPeriodStart]), plus(val[costAdditions]), minus(val[costDisposals]),
		plus(val[costRevaluations]), plus(val[costTransfers]))
	c.checkTotal(n.fieldPath(a, writeDownAtPeriodEnd), val[writeDownAtPeriodEnd],
		plus(val[writeDownAtPeriodStart]), plus(val[writeDownChargeForYear]),
		minus(val[writeDownOnDisposals]), plus(val[writeDownOtherAdjustments]))
	c.checkTotal(n.fieldPath(a, nbvCurrentPeriod), val[nbvCurrentPeriod],
		plus(val[costAtPeriodEnd]), minus(val[writeDownAtPeriodEnd]))
	if multi {
		c.checkTotal(n.fieldPath(a, nbvPreviousPeriod), val[nbvPreviousPeriod],
			plus(val[costAtPeriodStart]), minus(val[writeDownAtPeriodStart]))
	}
}

// checkCategoryTotals requires every field of the total category to equal
// the sum of that field across categories
func (n *assetNote) checkCategoryTotals(c *collector, multi bool) {
	for field := 0; field < assetFieldCount; field++ {
		if !multi && (field == costAtPeriodStart || field == writeDownAtPeriodStart || field == nbvPreviousPeriod) {
			continue
		}
		terms := make([]term, 0, len(n.categories))
		for _, a := range n.categories {
			terms = append(terms, plus(a.values[field]))
		}
		c.checkTotal(n.fieldPath(n.total, field), n.total.values[field], terms...)
	}
}

// ValidateTangibleAssets checks the tangible assets note
func (v *Validator) ValidateTangibleAssets(ctx context.Context, note *models.TangibleAssets, tx *models.Transaction, companyAccountsID, requestID string) (*models.Errors, error) {
	root := models.SmallFullTangibleAssets.JSONPath()
	category := func(name string, r *models.TangibleAssetsResource) *assetCategory {
		if r == nil {
			return nil
		}
		return newAssetCategory(root+"."+name, r.Cost, r.Depreciation,
			r.NetBookValueAtEndOfCurrentPeriod, r.NetBookValueAtEndOfPreviousPeriod)
	}

	n := &assetNote{
		key:                   models.SmallFullTangibleAssets,
		writeDown:             "depreciation",
		total:                 category("total", note.Total),
		additionalInformation: note.AdditionalInformation,
		figure:                func(fa *models.FixedAssets) *int64 { return fa.Tangible },
	}
	for _, a := range []*assetCategory{
		category("land_and_buildings", note.LandAndBuildings),
		category("plant_and_machinery", note.PlantAndMachinery),
		category("fixtures_and_fittings", note.FixturesAndFittings),
		category("office_equipment", note.OfficeEquipment),
		category("motor_vehicles", note.MotorVehicles),
	} {
		if a != nil {
			n.categories = append(n.categories, a)
		}
	}

	return validateAssetNote(ctx, v, n, tx, companyAccountsID, requestID)
}

// ValidateIntangibleAssets checks the intangible assets note
func (v *Validator) ValidateIntangibleAssets(ctx context.Context, note *models.IntangibleAssets, tx *models.Transaction, companyAccountsID, requestID string) (*models.Errors, error) {
	root := models.SmallFullIntangibleAssets.JSONPath()
	category := func(name string, r *models.IntangibleAssetsResource) *assetCategory {
		if r == nil {
			return nil
		}
		return newAssetCategory(root+"."+name, r.Cost, r.Amortisation,
			r.NetBookValueAtEndOfCurrentPeriod, r.NetBookValueAtEndOfPreviousPeriod)
	}

	n := &assetNote{
		key:                   models.SmallFullIntangibleAssets,
		writeDown:             "amortisation",
		total:                 category("total", note.Total),
		additionalInformation: note.AdditionalInformation,
		figure:                func(fa *models.FixedAssets) *int64 { return fa.Intangible },
	}
	for _, a := range []*assetCategory{
		category("goodwill", note.Goodwill),
		category("other_intangible_assets", note.OtherIntangibleAssets),
	} {
		if a != nil {
			n.categories = append(n.categories, a)
		}
	}

	return validateAssetNote(ctx, v, n, tx, companyAccountsID, requestID)
}

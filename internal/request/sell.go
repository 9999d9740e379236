package request

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/guttosm/kol-client/internal/domain/model"
	"github.com/guttosm/kol-client/internal/game"
	"github.com/guttosm/kol-client/internal/metrics"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	pageManageStore  = "managestore.php"
	pageSellDetailed = "sellstuff_ugly.php"
	pageSellCompact  = "sellstuff.php"

	// defaultMallPrice is sent when no prices were given at all.
	defaultMallPrice = "999999999"

	statusAutoselling = "Autoselling items..."
	statusListing     = "Placing items in the mall..."
	statusSold        = "Items sold."
)

var (
	// ErrNoItems is returned when a request is built without items.
	ErrNoItems = errors.New("no items to sell")
	// ErrTermsMismatch is returned when listing terms do not line up with the items.
	ErrTermsMismatch = errors.New("listing terms do not match items")
	// ErrUnknownSaleMode is returned for a SaleMode outside the known set.
	ErrUnknownSaleMode = errors.New("unknown sale mode")
	// ErrRejected is returned when the server answers with a non-success status.
	ErrRejected = errors.New("request rejected by server")
	// ErrMissingDeps is returned when a required collaborator is nil.
	ErrMissingDeps = errors.New("transport, session and inventory are required")
)

var meatPattern = regexp.MustCompile(`for ([\d,]+) [Mm]eat`)

// SellRequest autosells items or lists them in the mall. Items that do not fit
// in one form submission are sold by follow-up requests over the remainder.
type SellRequest struct {
	deps  Deps
	items []model.ItemStack
	mode  model.SaleMode
	terms model.ListingTerms
	page  string
}

// NewSellRequest validates the input and picks the target page. For
// DirectSell the page depends on the character's autosell mode at this moment.
func NewSellRequest(deps Deps, items []model.ItemStack, mode model.SaleMode, terms model.ListingTerms) (*SellRequest, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if !terms.Valid(len(items)) {
		return nil, errors.Wrapf(ErrTermsMismatch, "%d items, %d prices, %d limits", len(items), len(terms.Prices), len(terms.Limits))
	}

	r := &SellRequest{
		deps:  deps,
		items: append([]model.ItemStack(nil), items...),
		mode:  mode,
	}

	switch mode {
	case model.MarketListing:
		r.page = pageManageStore
		r.terms = model.ListingTerms{
			Prices: append([]int(nil), terms.Prices...),
			Limits: append([]int(nil), terms.Limits...),
		}
	case model.DirectSell:
		r.page = pageSellCompact
		if deps.autosellMode() == model.AutosellDetailed {
			r.page = pageSellDetailed
		}
	default:
		return nil, errors.Wrapf(ErrUnknownSaleMode, "mode %d", int(mode))
	}
	return r, nil
}

// NewAutosell sells a single item stack to the NPC buyer.
func NewAutosell(deps Deps, item model.ItemStack) (*SellRequest, error) {
	return NewSellRequest(deps, []model.ItemStack{item}, model.DirectSell, model.ListingTerms{})
}

// NewMallListing lists a single item stack at price with a per-buyer limit.
func NewMallListing(deps Deps, item model.ItemStack, price, limit int) (*SellRequest, error) {
	return NewSellRequest(deps, []model.ItemStack{item}, model.MarketListing, model.ListingTerms{
		Prices: []int{price},
		Limits: []int{limit},
	})
}

// Page returns the form page this request posts to.
func (r *SellRequest) Page() string {
	return r.page
}

// Items returns a copy of the items this request covers.
func (r *SellRequest) Items() []model.ItemStack {
	return append([]model.ItemStack(nil), r.items...)
}

// Plan computes the capacity of the next batch against current inventory.
func (r *SellRequest) Plan() Plan {
	if r.mode == model.MarketListing {
		return Plan{Capacity: mallCapacity}
	}

	counts := make([]itemCount, len(r.items))
	for i, it := range r.items {
		counts[i] = itemCount{held: it.Count, inventory: r.deps.Inventory.Count(it)}
	}
	return planDirectSell(counts, r.page == pageSellDetailed)
}

// Capacity returns how many items the next submission may carry.
func (r *SellRequest) Capacity() int {
	return r.Plan().Capacity
}

// build creates the form for the first batch and returns the batch.
func (r *SellRequest) build(plan Plan) (game.FormRequest, []model.ItemStack) {
	n := len(r.items)
	if plan.Capacity < n {
		n = plan.Capacity
	}
	batch := r.items[:n]

	form := r.deps.Transport.NewRequest(r.page)
	form.AddField("pwd", r.deps.Session.PasswordHash())

	if r.mode == model.MarketListing {
		form.AddField("action", "additem")
	} else {
		form.AddField("action", "sell")
		if m := plan.State.ModeField(); m != "" {
			form.AddField("mode", m)
		}
	}

	for i, it := range batch {
		r.attachItem(form, plan, it, i+1)
	}
	return form, batch
}

// attachItem adds the fields for one item; index is 1-based within the batch.
func (r *SellRequest) attachItem(form game.FormRequest, plan Plan, item model.ItemStack, index int) {
	idx := strconv.Itoa(index)

	if r.mode == model.MarketListing {
		form.AddField("item"+idx, item.IDString())
		form.AddField("qty"+idx, strconv.Itoa(item.Count))

		if r.terms.Empty() {
			form.AddField("price"+idx, defaultMallPrice)
			form.AddField("limit"+idx, "0")
			return
		}

		// Terms are aligned with the full item list; a listing batch always
		// starts at the head of it.
		price, limit := r.terms.At(index - 1)
		form.AddField("price"+idx, encodeTerm(price))
		form.AddField("limit"+idx, encodeTerm(limit))
		return
	}

	single := plan.Capacity == 1
	if r.page == pageSellDetailed {
		if single {
			form.AddField("quantity", strconv.Itoa(item.Count))
		}
	} else {
		if single {
			form.AddField("type", "quant")
			form.AddField("howmany", strconv.Itoa(item.Count))
		} else {
			form.AddField("type", "all")
			form.AddField("howmany", "1")
		}
	}

	// Multi-select field, keyed by item id rather than position.
	form.AddField("item"+item.IDString(), item.IDString())
}

// encodeTerm renders a price or limit, with 0 meaning "leave blank".
func encodeTerm(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}

// Run submits the first batch, interprets the response and then sells the
// remainder with follow-up requests, one at a time.
func (r *SellRequest) Run(ctx context.Context) error {
	plan := r.Plan()
	form, batch := r.build(plan)

	status := statusAutoselling
	if r.mode == model.MarketListing {
		status = statusListing
	}
	r.deps.display(model.DisableState, status)

	err := r.submit(ctx, form, plan, batch)
	r.deps.display(model.NormalState, statusSold)
	if err != nil {
		return err
	}

	if rest := r.items[len(batch):]; len(rest) > 0 {
		return r.Repeat(ctx, rest)
	}
	return nil
}

func (r *SellRequest) submit(ctx context.Context, form game.FormRequest, plan Plan, batch []model.ItemStack) error {
	logger := log.With().
		Str("page", r.page).
		Str("sale_mode", r.mode.String()).
		Str("sell_state", plan.State.String()).
		Int("batch_size", len(batch)).
		Logger()

	if err := form.Submit(ctx); err != nil {
		logger.Error().Err(err).Msg("Sell request failed")
		return errors.Wrapf(err, "%s batch of %d", r.mode, len(batch))
	}
	if form.ResponseStatus() != http.StatusOK {
		logger.Warn().Int("status_code", form.ResponseStatus()).Msg("Sell request rejected")
		return fmt.Errorf("%w: status %d", ErrRejected, form.ResponseStatus())
	}

	kind := plan.State.String()
	if r.mode == model.MarketListing {
		kind = "listing"
	}
	metrics.RecordSellBatch(r.mode.String(), kind, len(batch))

	body := form.ResponseBody()
	if r.mode == model.DirectSell {
		r.creditMeat(body)
	} else if r.deps.Listings != nil {
		if err := r.deps.Listings.Update(ctx, body); err != nil {
			r.deps.report(err, "Failed to update store listings")
		}
	}

	r.deps.Inventory.RemoveItems(batch)
	logger.Info().Msg("Sell batch accepted")
	return nil
}

// creditMeat parses "for N meat" out of an autosell response. A malformed
// amount is reported and otherwise ignored.
func (r *SellRequest) creditMeat(body string) {
	match := meatPattern.FindStringSubmatch(body)
	if match == nil {
		return
	}

	amount, err := parseMeat(match[1])
	if err != nil {
		r.deps.report(err, "Failed to parse meat from autosell response")
		return
	}

	if r.deps.Meat != nil {
		r.deps.Meat.AddMeat(amount)
	}
	metrics.RecordMeatCredited(amount)
}

func parseMeat(s string) (int, error) {
	amount, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return 0, errors.Wrapf(err, "parse meat amount %q", s)
	}
	return amount, nil
}

// Repeat sells items with a fresh request in the same sale mode. Listing terms
// are carried over from matching items of this request; items that were not
// part of it get price 0 and limit 0. When this request had no terms, neither
// does the new one. An empty list has nothing left to sell and sends nothing.
func (r *SellRequest) Repeat(ctx context.Context, items []model.ItemStack) error {
	if len(items) == 0 {
		return nil
	}

	var terms model.ListingTerms
	if !r.terms.Empty() {
		terms.Prices = make([]int, len(items))
		terms.Limits = make([]int, len(items))
		for i, it := range items {
			if j := model.IndexOf(r.items, it); j >= 0 {
				terms.Prices[i], terms.Limits[i] = r.terms.At(j)
			}
		}
	}

	next, err := NewSellRequest(r.deps, items, r.mode, terms)
	if err != nil {
		return err
	}
	return next.Run(ctx)
}

package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/NishaManivannan/Bakery-chatbot/internal/catalog"
	"github.com/NishaManivannan/Bakery-chatbot/internal/match"
	"github.com/NishaManivannan/Bakery-chatbot/pkg/domain"
)

// One handler per stage variant. Handlers mutate the state and return the
// response; store side effects happen only in handleCancelPhone (lookup and
// delete) and handleConfirm (insert).

func (e *Engine) handleWelcome(st *domain.ConversationState) domain.Result {
	st.Stage = domain.StageGetAction
	return domain.Result{Text: promptWelcome}
}

func (e *Engine) handleGetAction(st *domain.ConversationState, msg string) domain.Result {
	choice, ok := e.matcher.MatchOption(msg, []string{"Query", "Place", "Cancel"})
	if !ok {
		return domain.Result{Text: promptChooseAct}
	}
	switch choice {
	case "Query":
		// Render the catalog and remain, so "place" can follow directly.
		return domain.Result{Text: e.catalog.Listing()}
	case "Place":
		st.Stage = domain.StageGetName
		return domain.Result{Text: promptGetName}
	default: // Cancel
		st.Stage = domain.StageCancelName
		return domain.Result{Text: promptCancelName}
	}
}

func (e *Engine) handleCancelName(st *domain.ConversationState, msg string) domain.Result {
	st.CancelName = e.matcher.ExtractName(msg)
	st.Stage = domain.StageCancelPhone
	return domain.Result{Text: promptCancelPhone}
}

func (e *Engine) handleCancelPhone(ctx context.Context, st *domain.ConversationState, msg string) domain.Result {
	phone := e.matcher.NormalizePhone(msg)
	if !match.ValidPhone(phone) {
		return domain.Result{Text: promptBadCancel}
	}

	name := st.CancelName
	exists, err := e.orders.ExistsByNamePhone(ctx, name, phone)
	if err != nil {
		e.log.Error("order lookup failed", "error", err)
		return domain.Result{Text: promptLookupFail}
	}
	if !exists {
		st.Reset(e.now())
		return domain.Result{Text: promptNotFound}
	}

	if err := e.orders.DeleteByNamePhone(ctx, name, phone); err != nil {
		e.log.Error("order delete failed", "error", err)
		return domain.Result{Text: promptLookupFail}
	}
	st.Reset(e.now())
	return domain.Result{
		Text: promptDeleted,
		Effect: domain.SideEffect{
			Kind:        domain.EffectCancelOrder,
			CancelName:  name,
			CancelPhone: phone,
			Deleted:     true,
		},
	}
}

func (e *Engine) handleGetName(st *domain.ConversationState, msg string) domain.Result {
	st.Name = e.matcher.ExtractName(msg)
	st.Stage = domain.StageGetPhone
	return domain.Result{Text: fmt.Sprintf("Thanks, %s. Could you share your 10-digit phone number?", st.Name)}
}

func (e *Engine) handleGetPhone(st *domain.ConversationState, msg string) domain.Result {
	phone := e.matcher.NormalizePhone(msg)
	if !match.ValidPhone(phone) {
		return domain.Result{Text: promptBadPhone}
	}
	st.Phone = phone
	st.Stage = domain.StageCategory
	return domain.Result{Text: e.promptCategory()}
}

func (e *Engine) handleCategory(st *domain.ConversationState, msg string) domain.Result {
	choice, ok := e.matcher.MatchOption(msg, e.catalog.Categories())
	if !ok {
		return domain.Result{Text: e.repromptCategory()}
	}
	st.Category = choice
	st.Stage = domain.StageFlavor
	switch choice {
	case catalog.CategoryCake:
		return domain.Result{Text: e.promptCakeFlavor()}
	case catalog.CategoryCookies:
		return domain.Result{Text: e.promptCookieType()}
	default: // Pizza
		return domain.Result{Text: e.promptPizzaSize()}
	}
}

// handleFlavor branches strictly on the category already stored, never on the
// current message.
func (e *Engine) handleFlavor(st *domain.ConversationState, msg string) domain.Result {
	switch st.Category {
	case catalog.CategoryCake:
		choice, ok := e.matcher.MatchOption(msg, e.catalog.CakeFlavors)
		if !ok {
			return domain.Result{Text: fmt.Sprintf("Choose from: %s.", orList(e.catalog.CakeFlavors))}
		}
		st.Flavor = choice
		st.Stage = domain.StageTopping
		return domain.Result{Text: fmt.Sprintf("Nice choice. What topping for your %s cake? %s?", choice, orList(e.catalog.CakeToppings))}

	case catalog.CategoryCookies:
		choice, ok := e.matcher.MatchOption(msg, e.catalog.CookieTypes)
		if !ok {
			return domain.Result{Text: fmt.Sprintf("Please choose from %s.", orList(e.catalog.CookieTypes))}
		}
		// Cookies have no topping or customization detour.
		st.Flavor = choice
		st.Stage = domain.StageConfirm
		return domain.Result{Text: fmt.Sprintf("You chose %s cookies. Ready to confirm? Type yes to confirm or no to cancel.", choice)}

	case catalog.CategoryPizza:
		choice, ok := e.matcher.MatchOption(msg, e.catalog.PizzaSizes)
		if !ok {
			return domain.Result{Text: fmt.Sprintf("Please choose a size: %s.", orList(e.catalog.PizzaSizes))}
		}
		st.Size = choice
		st.Stage = domain.StageTopping
		return domain.Result{Text: fmt.Sprintf("%s pizza selected. Now pick a flavor: %s.", choice, orList(e.catalog.PizzaFlavors))}

	default:
		e.log.Error("flavor stage reached without category")
		return domain.Result{Text: promptFallback}
	}
}

func (e *Engine) handleTopping(st *domain.ConversationState, msg string) domain.Result {
	switch st.Category {
	case catalog.CategoryCake:
		choice, ok := e.matcher.MatchOption(msg, e.catalog.CakeToppings)
		if !ok {
			return domain.Result{Text: fmt.Sprintf("Pick a topping: %s.", orList(e.catalog.CakeToppings))}
		}
		st.Topping = choice
		st.Stage = domain.StageCustomize
		return domain.Result{Text: fmt.Sprintf("%s topping added. Want a custom message on your cake? Type it, or say 'no'.", choice)}

	case catalog.CategoryPizza:
		choice, ok := e.matcher.MatchOption(msg, e.catalog.PizzaFlavors)
		if !ok {
			return domain.Result{Text: fmt.Sprintf("Choose between %s.", strings.Join(e.catalog.PizzaFlavors, " and "))}
		}
		st.Flavor = choice
		st.Stage = domain.StageCustomize
		return domain.Result{Text: fmt.Sprintf("%s pizza selected. Any special instructions or extra toppings? Type it, or 'no' to skip.", choice)}

	default:
		e.log.Error("topping stage reached with unexpected category", "category", st.Category)
		return domain.Result{Text: promptFallback}
	}
}

func (e *Engine) handleCustomize(st *domain.ConversationState, msg string) domain.Result {
	if strings.EqualFold(msg, "no") {
		st.Customization = nil
	} else {
		st.Customization = &msg
	}
	st.Stage = domain.StageConfirm
	return domain.Result{Text: promptConfirm}
}

func (e *Engine) handleConfirm(ctx context.Context, st *domain.ConversationState, msg string) domain.Result {
	if _, ok := e.matcher.MatchOption(msg, affirmatives); !ok {
		// Anything unrecognized cancels, the same as an explicit no.
		name, phone := st.Name, st.Phone
		st.Reset(e.now())
		return domain.Result{
			Text: promptCancelled,
			Effect: domain.SideEffect{
				Kind:        domain.EffectCancelOrder,
				CancelName:  name,
				CancelPhone: phone,
			},
		}
	}

	if st.Name == "" || st.Phone == "" || st.Category == "" {
		// Stage-gated population should make this unreachable.
		e.log.Error("confirm stage reached with missing required fields",
			"has_name", st.Name != "", "has_phone", st.Phone != "", "has_category", st.Category != "")
		st.Reset(e.now())
		return domain.Result{Text: promptFallback}
	}

	base := e.catalog.BasePrice(st.Category, catalog.Selection{
		Flavor:  st.Flavor,
		Topping: st.Topping,
		Size:    st.Size,
	})
	order := domain.Order{
		Name:          st.Name,
		Phone:         st.Phone,
		Category:      st.Category,
		Flavor:        st.Flavor,
		Topping:       st.Topping,
		Size:          st.Size,
		Customization: st.Customization,
		Cost:          e.catalog.FinalPrice(base, st.Customization),
	}

	if err := e.orders.Insert(ctx, order); err != nil {
		// Keep the collected state so the user can retry the confirmation.
		e.log.Error("order insert failed", "error", err)
		return domain.Result{Text: promptSaveFailed}
	}

	text := e.summary(order)
	st.Reset(e.now())
	return domain.Result{
		Text:   text,
		Effect: domain.SideEffect{Kind: domain.EffectPersistOrder, Order: &order},
	}
}

func (e *Engine) summary(o domain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Thank you %s. Your order for ", o.Name)
	switch o.Category {
	case catalog.CategoryCake:
		fmt.Fprintf(&b, "a %s cake with %s", o.Flavor, o.Topping)
	case catalog.CategoryCookies:
		fmt.Fprintf(&b, "%s cookies", o.Flavor)
	case catalog.CategoryPizza:
		fmt.Fprintf(&b, "a %s %s pizza", o.Size, o.Flavor)
	}
	if o.Customization != nil {
		fmt.Fprintf(&b, " and customization '%s'", *o.Customization)
	}
	fmt.Fprintf(&b, " has been placed successfully.\nTotal cost: ₹%d.\nType home to start a new order.", o.Cost)
	return b.String()
}

package engine

import (
	"fmt"
	"strings"
)

// Response texts. Dynamic option enumerations are built from the catalog so a
// custom price list keeps the prompts honest.
const (
	promptWelcome     = "Welcome to Bake Talks.\nWould you like to query, place, or cancel an order?"
	promptWelcomeBack = "Starting fresh. Welcome back to Bake Talks.\nWould you like to query, place, or cancel an order?"
	promptChooseAct   = "Please type query, place, or cancel to continue."
	promptGetName     = "Let's get started.\nWhat is your name?"
	promptCancelName  = "To cancel your order, please enter your name."
	promptCancelPhone = "Please enter your 10-digit phone number for cancellation."
	promptBadPhone    = "That doesn't look right. Please enter a valid 10-digit phone number."
	promptBadCancel   = "Invalid phone number. Please enter a valid 10-digit phone number."
	promptConfirm     = "Almost done. Ready to place the order?\nType yes to confirm or no to cancel."
	promptCancelled   = "Order cancelled. You can start again anytime by typing hi."
	promptDeleted     = "Your order has been cancelled successfully."
	promptNotFound    = "No matching order found with the provided name and phone."
	promptFallback    = "I didn't quite get that. Please try again or type home to restart."
	promptSaveFailed  = "Sorry, your order could not be saved just now. Type yes to try again, or home to start over."
	promptLookupFail  = "Sorry, I couldn't look up your order just now. Please enter your 10-digit phone number once more."
)

// affirmatives is the keyword set accepted at the Confirm stage.
var affirmatives = []string{"yes", "y", "confirm", "ok", "okay", "sure", "yes proceed", "go ahead", "yeah"}

// orList renders "A, B, or C" for prompt texts.
func orList(options []string) string {
	switch len(options) {
	case 0:
		return ""
	case 1:
		return options[0]
	case 2:
		return options[0] + " or " + options[1]
	default:
		return strings.Join(options[:len(options)-1], ", ") + ", or " + options[len(options)-1]
	}
}

func (e *Engine) promptCategory() string {
	return fmt.Sprintf("Great. Please choose a category: %s.", orList(e.catalog.Categories()))
}

func (e *Engine) repromptCategory() string {
	return fmt.Sprintf("Please choose from %s.", orList(e.catalog.Categories()))
}

func (e *Engine) promptCakeFlavor() string {
	return fmt.Sprintf("Choose a cake flavor: %s.", orList(e.catalog.CakeFlavors))
}

func (e *Engine) promptCookieType() string {
	return fmt.Sprintf("Choose a cookie type: %s.", orList(e.catalog.CookieTypes))
}

func (e *Engine) promptPizzaSize() string {
	return fmt.Sprintf("What size would you like? %s.", orList(e.catalog.PizzaSizes))
}
